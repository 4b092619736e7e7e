package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codex.dev/cli/internal/core/envinfo"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// EnvFlags holds command-line flags for the env command
type EnvFlags struct {
	Interactive bool
}

// NewEnvCommand creates the env command
func NewEnvCommand(container *CLIContainer) *cobra.Command {
	flags := &EnvFlags{}

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the effective configuration grouped by source",
		Long: `Show every configuration setting grouped by the source that provided it:
the config file, the environment, or the built-in defaults.

Examples:
  codex env                  # Print grouped settings
  codex env --interactive    # Browse them in a scrollable view
  codex env --plain          # Disable styling`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := container.EnvInfoService.Resolve()

			if flags.Interactive {
				return runEnvViewer(info)
			}
			return printEnvInfo(cmd.OutOrStdout(), info, useStyles(cmd))
		},
	}

	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the settings in a scrollable terminal view")

	return cmd
}

// printEnvInfo writes the grouped settings, styling headers when styled is set
func printEnvInfo(w io.Writer, info envinfo.ResolvedConfigInfo, styled bool) error {
	for _, line := range renderEnvInfo(info, styled) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func renderEnvInfo(info envinfo.ResolvedConfigInfo, styled bool) []string {
	if !styled {
		return envinfo.Lines(info)
	}

	var lines []string
	for _, s := range envinfo.Group(info) {
		lines = append(lines, sectionStyle.Render(envinfo.HeaderLine(s)))
		for _, f := range s.Fields {
			lines = append(lines, fmt.Sprintf("  %s %s", keyStyle.Render(f.Key+":"), f.Value))
		}
	}
	return append(lines, footerStyle.Render(envinfo.FooterLine(info)))
}

// useStyles reports whether output goes to a terminal and --plain is off
func useStyles(cmd *cobra.Command) bool {
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return false
	}
	return isTerminal(cmd.OutOrStdout())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runEnvViewer starts the scrollable env info view
func runEnvViewer(info envinfo.ResolvedConfigInfo) error {
	program := tea.NewProgram(newEnvViewerModel(renderEnvInfo(info, true)), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("env viewer failed: %w", err)
	}

	return nil
}
