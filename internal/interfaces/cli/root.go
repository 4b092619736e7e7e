package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/application/services"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	EnvInfoService *services.EnvInfoService
	DisplayService *services.DisplayService
	Logger         ports.LoggingGateway
	MainContainer  interface{} // Will be set to *di.Container, avoiding circular import
}

// NewRootCommand RootCommand represents the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "codex",
		Short: "Codex CLI - inspect the effective configuration",
		Long: `Codex CLI shows the configuration it is actually running with and
where each value came from: the config file in ~/.codex, the environment,
or the built-in defaults.

It also prints the compact working directory and project names used in
prompts and notifications.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Global setup that runs before any command

			if err := applyConfigurationOverrides(cmd, container); err != nil {
				return fmt.Errorf("failed to apply configuration overrides: %w", err)
			}

			return nil
		},
	}

	// Set custom version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	// Add persistent flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config-dir", "", "Config directory (default is $HOME/.codex)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable styled output")

	// Add subcommands
	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewEnvCommand(container))
	rootCmd.AddCommand(NewCwdCommand(container))
	rootCmd.AddCommand(NewRepoNameCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// applyConfigurationOverrides applies configuration overrides from command line flags
func applyConfigurationOverrides(cmd *cobra.Command, container *CLIContainer) error {
	if debugOn, _ := cmd.Flags().GetBool("debug"); debugOn && container.Logger != nil {
		container.Logger.SetLogLevel(ports.LogLevelDebug)
	}

	// Type assert the MainContainer to access override methods
	mainContainer, ok := container.MainContainer.(interface {
		ApplyConfigDirOverride(string) error
	})
	if !ok {
		// Silently continue if container doesn't support overrides
		return nil
	}

	// Only apply override if the flag was explicitly set
	if cmd.Flags().Changed("config-dir") {
		dir, _ := cmd.Flags().GetString("config-dir")
		if err := mainContainer.ApplyConfigDirOverride(dir); err != nil {
			return fmt.Errorf("failed to override config directory: %w", err)
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
