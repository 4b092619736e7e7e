package services

import (
	"os"

	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/core/shortpath"
)

// DisplayService produces the compact names shown in prompts and notifications
type DisplayService struct {
	repoNamer ports.RepoNamer
	home      string
	getwd     func() (string, error)
}

// NewDisplayService creates a display service. home is substituted by "~"
// in shortened paths; pass "" to disable the substitution.
func NewDisplayService(repoNamer ports.RepoNamer, home string) *DisplayService {
	return &DisplayService{
		repoNamer: repoNamer,
		home:      home,
		getwd:     os.Getwd,
	}
}

// ShortCwd returns the working directory shortened to maxLength characters
func (s *DisplayService) ShortCwd(maxLength int) string {
	wd, err := s.getwd()
	if err != nil {
		wd = "."
	}
	return shortpath.Shorten(wd, maxLength, s.home)
}

// NotificationName returns the repository or directory name for notifications
func (s *DisplayService) NotificationName() string {
	return s.repoNamer.Resolve()
}
