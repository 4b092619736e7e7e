package di

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/application/services"
	"codex.dev/cli/internal/core/envinfo"
	"codex.dev/cli/internal/infrastructure/config"
	"codex.dev/cli/internal/infrastructure/environment"
	"codex.dev/cli/internal/infrastructure/git"
	"codex.dev/cli/internal/infrastructure/logging"
	"codex.dev/cli/internal/infrastructure/process"
	"codex.dev/cli/internal/interfaces/cli"
)

// Options customizes container construction. Zero values select a snapshot
// of the process environment, ~/.codex, stderr and the OS command runner.
type Options struct {
	ConfigDir string
	Env       envinfo.Environment
	Home      string
	LogOutput io.Writer
	Runner    ports.CommandRunner

	// WorkDir is where the OS command runner starts external commands.
	// Empty means the current directory.
	WorkDir string
}

// Container holds all application dependencies
type Container struct {
	// Configuration
	Locator    *config.Locator
	RawLoader  *config.RawLoader
	ConfigRepo *config.Repository

	// Services
	EnvInfoService *services.EnvInfoService
	DisplayService *services.DisplayService

	// Infrastructure
	Env          envinfo.Environment
	Runner       ports.CommandRunner
	RepoResolver *git.RepoNameResolver

	// CLI
	CLIContainer *cli.CLIContainer

	// Logger
	Logger ports.LoggingGateway
}

// NewContainer creates and configures the dependency injection container
func NewContainer() (*Container, error) {
	return NewContainerWithOptions(Options{})
}

// NewContainerWithOptions creates a container with explicit dependencies
func NewContainerWithOptions(opts Options) (*Container, error) {
	container := &Container{
		Env:    opts.Env,
		Runner: opts.Runner,
	}
	if container.Env == nil {
		container.Env = environment.Snapshot()
	}
	if container.Runner == nil {
		container.Runner = process.NewExecutorWithOptions(opts.WorkDir, nil)
	}

	container.Logger = logging.NewGateway(logging.NewLogger(debugFromEnv(container.Env), opts.LogOutput))

	home := opts.Home
	if home == "" {
		home, _ = container.Env.Lookup("HOME")
	}

	if err := container.initializeComponents(opts.ConfigDir, home); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	container.Logger.Log(ports.LogLevelDebug, "container initialized", map[string]interface{}{
		"config_dir": container.Locator.Dir(),
	})

	return container, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents(configDir, home string) error {
	// 1. Configuration sources
	c.Locator = config.NewLocator(configDir)
	c.RawLoader = config.NewRawLoader(c.Logger)
	c.ConfigRepo = config.NewRepository(c.Locator)

	// 2. Infrastructure
	c.RepoResolver = git.NewRepoNameResolver(c.Runner, c.Logger)

	// 3. Application services
	c.EnvInfoService = services.NewEnvInfoService(c.Locator, c.RawLoader, c.ConfigRepo, c.Env, c.Logger)
	c.DisplayService = services.NewDisplayService(c.RepoResolver, home)

	// 4. CLI container
	if c.CLIContainer == nil {
		c.CLIContainer = &cli.CLIContainer{MainContainer: c}
	}
	c.CLIContainer.EnvInfoService = c.EnvInfoService
	c.CLIContainer.DisplayService = c.DisplayService
	c.CLIContainer.Logger = c.Logger

	return nil
}

// GetCLIContainer returns the CLI container
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

// ApplyConfigDirOverride points the configuration sources at dir
func (c *Container) ApplyConfigDirOverride(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return fmt.Errorf("config directory cannot be empty")
	}

	c.Locator = config.NewLocator(dir)
	c.ConfigRepo = config.NewRepository(c.Locator)
	c.EnvInfoService = services.NewEnvInfoService(c.Locator, c.RawLoader, c.ConfigRepo, c.Env, c.Logger)
	c.CLIContainer.EnvInfoService = c.EnvInfoService

	c.Logger.Log(ports.LogLevelDebug, "config directory overridden", map[string]interface{}{
		"config_dir": c.Locator.Dir(),
	})
	return nil
}

func debugFromEnv(env envinfo.Environment) bool {
	v, ok := env.Lookup(envinfo.EnvDebug)
	if !ok {
		return false
	}
	on, err := strconv.ParseBool(v)
	return err == nil && on
}

