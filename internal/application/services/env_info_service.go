package services

import (
	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/core/envinfo"
)

// EnvInfoService resolves the provenance of the effective configuration.
// Every call re-reads the file system and environment.
type EnvInfoService struct {
	locator    ports.ConfigFileLocator
	rawLoader  ports.RawConfigLoader
	configRepo ports.ConfigurationRepository
	env        envinfo.Environment
	logger     ports.LoggingGateway
}

// NewEnvInfoService creates a new env info service
func NewEnvInfoService(
	locator ports.ConfigFileLocator,
	rawLoader ports.RawConfigLoader,
	configRepo ports.ConfigurationRepository,
	env envinfo.Environment,
	logger ports.LoggingGateway,
) *EnvInfoService {
	return &EnvInfoService{
		locator:    locator,
		rawLoader:  rawLoader,
		configRepo: configRepo,
		env:        env,
		logger:     logger,
	}
}

// Resolve builds the provenance snapshot. Load failures fall back to the
// defaults, all reported as default-tier, and never abort the display.
func (s *EnvInfoService) Resolve() envinfo.ResolvedConfigInfo {
	path := s.locator.Locate()
	s.logger.Log(ports.LogLevelDebug, "config file located", map[string]interface{}{
		"path": path,
	})

	cfg, err := s.configRepo.Load()
	if err != nil {
		s.logger.Log(ports.LogLevelWarn, "Failed to load configuration, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		// None of the file's values made it into cfg, so none may be
		// attributed to the file.
		return envinfo.Resolve(s.configRepo.LoadDefault(), envinfo.RawConfig{}, s.env, path)
	}

	raw := s.rawLoader.LoadRaw(path)
	return envinfo.Resolve(cfg, raw, s.env, path)
}

// Lines renders the resolved snapshot as plain terminal lines
func (s *EnvInfoService) Lines() []string {
	return envinfo.Lines(s.Resolve())
}
