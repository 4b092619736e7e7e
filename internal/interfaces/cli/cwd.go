package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codex.dev/cli/internal/core/shortpath"
)

// NewCwdCommand creates the cwd command
func NewCwdCommand(container *CLIContainer) *cobra.Command {
	var maxLength int

	cmd := &cobra.Command{
		Use:   "cwd",
		Short: "Print the working directory shortened for prompts",
		Long: `Print the current working directory in the compact form used in prompts.

The home directory is shown as "~" and leading directories are elided as
"~/.../" until the path fits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			width := maxLength
			if !cmd.Flags().Changed("max-length") {
				width = defaultWidth(cmd)
			}
			if width <= 0 {
				return fmt.Errorf("max-length must be greater than 0, got %d", width)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), container.DisplayService.ShortCwd(width))
			return err
		},
	}

	cmd.Flags().IntVarP(&maxLength, "max-length", "n", shortpath.DefaultMaxLength, "Maximum display width")

	return cmd
}

// NewRepoNameCommand creates the repo-name command
func NewRepoNameCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "repo-name",
		Short: "Print the project name used in notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), container.DisplayService.NotificationName())
			return err
		},
	}
}

// defaultWidth is the default display width, narrowed to the terminal when
// stdout is a smaller terminal.
func defaultWidth(cmd *cobra.Command) int {
	width := shortpath.DefaultMaxLength
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return width
	}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && cols < width {
		return cols
	}
	return width
}
