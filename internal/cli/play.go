package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/pagedots/internal/config"
	"github.com/rileyhilliard/pagedots/internal/errors"
	"github.com/rileyhilliard/pagedots/internal/logger"
	"github.com/rileyhilliard/pagedots/internal/player"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PlayOptions holds flag overrides for the play command. Changed reports
// whether a flag was set on the command line; unset flags keep the config value.
type PlayOptions struct {
	Pages     int
	AutoPlay  bool
	Durations string
	Collapse  string
	Spacing   int
	Changed   func(name string) bool
}

var playOpts PlayOptions

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the page indicator full-screen",
	Long: `Run the page indicator in the alternate screen.

Click a dot or use the arrow keys to jump between pages. Space restarts the
current page, 'a' toggles autoplay, 'r' rewinds and 'q' quits.

Examples:
  pagedots play
  pagedots play --pages 8 --autoplay
  pagedots play --durations 0.5s,1s,2s --collapse 400ms`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		playOpts.Changed = cmd.Flags().Changed
		return playCommand(playOpts)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playOpts.Pages, "pages", 0, "number of pages")
	playCmd.Flags().BoolVar(&playOpts.AutoPlay, "autoplay", false, "advance to the next page when a fill completes")
	playCmd.Flags().StringVar(&playOpts.Durations, "durations", "", "comma-separated fill durations per page (e.g., 0.5s,1s)")
	playCmd.Flags().StringVar(&playOpts.Collapse, "collapse", "", "collapse animation duration (e.g., 250ms)")
	playCmd.Flags().IntVar(&playOpts.Spacing, "spacing", 0, "gap between dots in cells")
}

func playCommand(opts PlayOptions) error {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	if err := applyPlayOptions(cfg, opts); err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	return Play(cfg)
}

// applyPlayOptions copies every changed flag onto cfg.
func applyPlayOptions(cfg *config.Config, opts PlayOptions) error {
	changed := opts.Changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("pages") {
		cfg.Pages = opts.Pages
	}
	if changed("autoplay") {
		cfg.AutoPlay = opts.AutoPlay
	}
	if changed("spacing") {
		cfg.Spacing = opts.Spacing
	}

	if changed("durations") {
		durations, err := ParseDurations(opts.Durations)
		if err != nil {
			return err
		}
		cfg.FillDurations = durations
	}

	if changed("collapse") {
		d, err := parseDuration("--collapse", opts.Collapse)
		if err != nil {
			return err
		}
		cfg.CollapseDuration = d
	}

	return nil
}

// ParseDurations parses a comma-separated list like "0.5s, 1s".
func ParseDurations(s string) ([]time.Duration, error) {
	var out []time.Duration
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := parseDuration("--durations", part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	if len(out) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"--durations needs at least one duration",
			"Try something like --durations 0.5s,1s,2s")
	}
	return out, nil
}

func parseDuration(flag, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid duration for %s", s, flag),
			"Try something like 250ms, 1s or 1.5s.")
	}
	return d, nil
}

// Play runs the player full-screen until the user quits.
func Play(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"pagedots play needs an interactive terminal",
			"Run it directly in a terminal, not through a pipe or redirect")
	}

	restore, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	logger.Default().Info("playing %d pages (autoplay %t, fill %v)", cfg.Pages, cfg.AutoPlay, cfg.FillDurations)

	m := player.New(cfg.ControlOptions()...)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The player stopped unexpectedly",
			"Set log_file in .pagedots.yaml and PAGEDOTS_DEBUG=1 to capture details")
	}
	return nil
}

// redirectLog sends the standard logger to path while the player owns the
// screen, or discards it when path is empty. The returned func restores it.
func redirectLog(path string) (func(), error) {
	prevOut, prevPrefix, prevFlags := log.Writer(), log.Prefix(), log.Flags()
	restore := func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		log.SetFlags(prevFlags)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(path, "pagedots")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrIO,
			"Can't open log file: "+path,
			"Check that the directory exists and is writable, or unset log_file")
	}
	return func() {
		f.Close()
		restore()
	}, nil
}
