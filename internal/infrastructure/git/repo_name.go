// Package git derives display names from the surrounding git repository.
package git

import (
	"os"
	"path/filepath"

	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/core/fallback"
)

// RepoNameResolver names the current project for notifications: the git
// top-level directory's name, else the working directory's name.
type RepoNameResolver struct {
	runner ports.CommandRunner
	logger ports.LoggingGateway
	getwd  func() (string, error)
}

// NewRepoNameResolver creates a resolver. logger may be nil.
func NewRepoNameResolver(runner ports.CommandRunner, logger ports.LoggingGateway) *RepoNameResolver {
	return &RepoNameResolver{
		runner: runner,
		logger: logger,
		getwd:  os.Getwd,
	}
}

// Resolve returns the display name. Every failure is suppressed; the result
// is empty only if the working directory itself is unavailable.
func (r *RepoNameResolver) Resolve() string {
	name, _ := fallback.First(r.fromGit, r.fromWorkingDir)
	return name
}

func (r *RepoNameResolver) fromGit() (string, bool) {
	if r.runner == nil {
		return "", false
	}
	top, err := r.runner.Run("git", "rev-parse", "--show-toplevel")
	if err != nil {
		if r.logger != nil {
			r.logger.Log(ports.LogLevelDebug, "git top-level lookup failed, using working directory", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return "", false
	}
	if top == "" {
		return "", false
	}
	return filepath.Base(top), true
}

func (r *RepoNameResolver) fromWorkingDir() (string, bool) {
	wd, err := r.getwd()
	if err != nil || wd == "" {
		return "", false
	}
	return filepath.Base(wd), true
}
