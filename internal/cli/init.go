package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/pagedots/internal/config"
	"github.com/rileyhilliard/pagedots/internal/errors"
	"github.com/rileyhilliard/pagedots/internal/ui"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string    // Where to write the config (default ./.pagedots.yaml)
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Skip prompts, use defaults and env overrides
	Out            io.Writer // Progress output (default os.Stdout)
}

// initDefaults holds pre-filled answers, read from the environment.
type initDefaults struct {
	Pages          int
	Durations      string
	NonInteractive bool
}

var (
	initForce          bool
	initNonInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .pagedots.yaml config",
	Long: `Create a .pagedots.yaml in the current directory.

Prompts for the number of pages, fill durations, autoplay and colors. With
--non-interactive (or when CI is set) the defaults are written, overridden
by PAGEDOTS_PAGES and PAGEDOTS_FILL_DURATIONS when present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
			Out:            cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and use defaults")
}

// getInitDefaults reads PAGEDOTS_PAGES, PAGEDOTS_FILL_DURATIONS,
// PAGEDOTS_NON_INTERACTIVE and CI.
func getInitDefaults() initDefaults {
	d := initDefaults{
		Durations: os.Getenv("PAGEDOTS_FILL_DURATIONS"),
	}
	if n, err := strconv.Atoi(os.Getenv("PAGEDOTS_PAGES")); err == nil {
		d.Pages = n
	}
	if v, err := strconv.ParseBool(os.Getenv("PAGEDOTS_NON_INTERACTIVE")); err == nil && v {
		d.NonInteractive = true
	}
	if os.Getenv("CI") != "" {
		d.NonInteractive = true
	}
	return d
}

// Init creates a new .pagedots.yaml configuration file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	configPath := opts.Path
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
	}

	defaults := getInitDefaults()
	nonInteractive := opts.NonInteractive || defaults.NonInteractive

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if nonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := applyInitDefaults(cfg, defaults); err != nil {
		return err
	}

	if !nonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(configPath, cfg, true); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  pagedots play    - Run the indicator")
	fmt.Fprintln(out, "  pagedots config  - Show the resolved settings")

	return nil
}

func applyInitDefaults(cfg *config.Config, d initDefaults) error {
	if d.Pages != 0 {
		cfg.Pages = d.Pages
	}
	if d.Durations != "" {
		durations, err := ParseDurations(d.Durations)
		if err != nil {
			return err
		}
		cfg.FillDurations = durations
	}
	return nil
}

// colorChoices are the tints offered by the interactive prompt.
var colorChoices = []huh.Option[string]{
	huh.NewOption("Gray", "8"),
	huh.NewOption("Green", "2"),
	huh.NewOption("Blue", "4"),
	huh.NewOption("Cyan", "6"),
	huh.NewOption("Magenta", "5"),
	huh.NewOption("Yellow", "3"),
	huh.NewOption("White", "7"),
}

// promptConfig asks for the main settings with huh, starting from cfg.
func promptConfig(cfg *config.Config) error {
	pages := strconv.Itoa(cfg.Pages)
	durations := formatDurations(cfg.FillDurations)
	autoPlay := cfg.AutoPlay
	pageColor := cfg.Colors.Page
	currentColor := cfg.Colors.Current

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Number of pages").
				Description("One dot per page").
				Value(&pages).
				Validate(validatePages),
			huh.NewInput().
				Title("Fill durations").
				Description("Comma-separated, one per page; the last one repeats").
				Placeholder("2.5s").
				Value(&durations).
				Validate(func(s string) error {
					_, err := ParseDurations(s)
					return err
				}),
			huh.NewConfirm().
				Title("Advance automatically?").
				Value(&autoPlay),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Dot color").
				Options(colorChoices...).
				Value(&pageColor),
			huh.NewSelect[string]().
				Title("Current page color").
				Options(colorChoices...).
				Value(&currentColor),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	cfg.Pages, _ = strconv.Atoi(strings.TrimSpace(pages))
	cfg.FillDurations, _ = ParseDurations(durations)
	cfg.AutoPlay = autoPlay
	cfg.Colors.Page = pageColor
	cfg.Colors.Current = currentColor
	return nil
}

func validatePages(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 1 {
		return fmt.Errorf("need at least one page")
	}
	return nil
}

func formatDurations(ds []time.Duration) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}
