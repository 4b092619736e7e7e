package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"codex.dev/cli/internal/core/envinfo"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect the configuration settings of the Codex CLI.

"config show" lists every setting with its source, "config path" prints the
config file in use.`,
	}

	// Add subcommands
	configCmd.AddCommand(NewConfigShowCommand(container))
	configCmd.AddCommand(NewConfigPathCommand(container))

	return configCmd
}

// NewConfigShowCommand creates the show subcommand
func NewConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration and where each value came from",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := container.EnvInfoService.Resolve()
			return printEnvInfo(cmd.OutOrStdout(), info, useStyles(cmd))
		},
	}
}

// NewConfigPathCommand creates the path subcommand
func NewConfigPathCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := container.EnvInfoService.Resolve()
			return printConfigPath(cmd.OutOrStdout(), info)
		},
	}
}

func printConfigPath(w io.Writer, info envinfo.ResolvedConfigInfo) error {
	if _, err := fmt.Fprintf(w, "Configuration file path: %s\n", info.UsedConfigPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(w, "API key: %s (%s)\n", info.RedactedKey, info.KeySource); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
