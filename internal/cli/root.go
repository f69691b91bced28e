package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/pagedots/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd is the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pagedots",
	Short: "Animated page indicator dots for the terminal",
	Long: `pagedots draws a row of page indicator dots. The current page grows
into a pill and fills up over a configurable duration, then (optionally)
moves on to the next page.

Settings come from .pagedots.yaml, searched upward from the current
directory, with flags overriding individual values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pagedots.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute adds all child commands to the root command and runs it.
// Errors are printed to stderr and exit with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

var failStyle = lipgloss.NewStyle().Foreground(ui.ColorError).Bold(true)

// formatError renders cobra's unknown-command errors with a hint, and
// everything else as-is.
func formatError(err error) string {
	if !isUnknownCommandError(err) {
		return err.Error()
	}

	fail := failStyle.Render(ui.SymbolFail)
	if name := extractUnknownCommand(err); name != "" {
		return fmt.Sprintf("%s Unknown command '%s'\n\nRun 'pagedots --help' to see the available commands.", fail, name)
	}
	return fmt.Sprintf("%s %s\n\nRun 'pagedots --help' for usage.", fail, err.Error())
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of
// `unknown command "foo" for "pagedots"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
