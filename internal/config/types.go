package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/pagedots/internal/pagecontrol"
	"github.com/rileyhilliard/pagedots/internal/ui"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .pagedots.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Pages is the number of indicators.
	Pages int `yaml:"pages" mapstructure:"pages"`

	// Spacing is the gap between indicators, in cells.
	Spacing int `yaml:"spacing" mapstructure:"spacing"`

	// Height is the indicator height in rows. Collapsed dots are twice as wide.
	Height int `yaml:"height" mapstructure:"height"`

	CollapseDuration time.Duration `yaml:"collapse_duration" mapstructure:"collapse_duration"`
	ExpandDuration   time.Duration `yaml:"expand_duration" mapstructure:"expand_duration"`

	// FillDurations holds one duration per page. Pages past the end reuse
	// the last entry.
	FillDurations []time.Duration `yaml:"fill_durations" mapstructure:"fill_durations"`

	// AutoPlay advances to the next page when a fill completes.
	AutoPlay bool `yaml:"autoplay" mapstructure:"autoplay"`

	Colors ColorsConfig `yaml:"colors" mapstructure:"colors"`

	// LogFile receives log output while the player owns the terminal.
	// Supports ~ and ${HOME}/${USER}. Empty discards logs.
	LogFile string `yaml:"log_file,omitempty" mapstructure:"log_file"`
}

// ColorsConfig holds indicator tints as ANSI codes ("0"-"255") or hex ("#rgb",
// "#rrggbb").
type ColorsConfig struct {
	Page    string `yaml:"page" mapstructure:"page"`
	Current string `yaml:"current" mapstructure:"current"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:          CurrentConfigVersion,
		Pages:            5,
		Spacing:          pagecontrol.DefaultSpacing,
		Height:           pagecontrol.DefaultHeight,
		CollapseDuration: pagecontrol.DefaultCollapseDuration,
		ExpandDuration:   pagecontrol.DefaultExpandDuration,
		FillDurations:    []time.Duration{pagecontrol.DefaultFillDuration},
		AutoPlay:         true,
		Colors: ColorsConfig{
			Page:    string(ui.ColorPageTint),
			Current: string(ui.ColorCurrentPageTint),
		},
	}
}

// ControlOptions translates the config into page control options.
func (c *Config) ControlOptions() []pagecontrol.Option {
	return []pagecontrol.Option{
		pagecontrol.WithPages(c.Pages),
		pagecontrol.WithHeight(c.Height),
		pagecontrol.WithSpacing(c.Spacing),
		pagecontrol.WithAutoPlay(c.AutoPlay),
		pagecontrol.WithCollapseDuration(c.CollapseDuration),
		pagecontrol.WithExpandDuration(c.ExpandDuration),
		pagecontrol.WithFillDurations(c.FillDurations...),
		pagecontrol.WithTints(lipgloss.Color(c.Colors.Page), lipgloss.Color(c.Colors.Current)),
	}
}
