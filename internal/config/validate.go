package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/pagedots/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but pagedots only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade pagedots, or lower 'version' in .pagedots.yaml.")
	}

	if err := validateLayout(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check pages, spacing and height in your .pagedots.yaml.")
	}

	if err := validateDurations(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Durations look like 250ms, 1.5s or 2s.")
	}

	if err := validateColors(cfg.Colors); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Use an ANSI color (0-255) or hex (#rgb, #rrggbb) in the 'colors' section.")
	}

	return nil
}

func validateLayout(cfg *Config) error {
	if cfg.Pages < 0 {
		return fmt.Errorf("pages can't be negative (got %d)", cfg.Pages)
	}
	if cfg.Spacing < 0 {
		return fmt.Errorf("spacing can't be negative (got %d)", cfg.Spacing)
	}
	if cfg.Height < 1 {
		return fmt.Errorf("height must be at least 1 row (got %d)", cfg.Height)
	}
	return nil
}

func validateDurations(cfg *Config) error {
	if cfg.CollapseDuration < 0 {
		return fmt.Errorf("collapse_duration can't be negative (got %s)", cfg.CollapseDuration)
	}
	if cfg.ExpandDuration < 0 {
		return fmt.Errorf("expand_duration can't be negative (got %s)", cfg.ExpandDuration)
	}
	if len(cfg.FillDurations) == 0 {
		return fmt.Errorf("fill_durations needs at least one duration")
	}
	for i, d := range cfg.FillDurations {
		if d <= 0 {
			return fmt.Errorf("fill_durations[%d] must be positive (got %s)", i, d)
		}
	}
	return nil
}

func validateColors(c ColorsConfig) error {
	if !ValidColor(c.Page) {
		return fmt.Errorf("colors.page '%s' isn't a color", c.Page)
	}
	if !ValidColor(c.Current) {
		return fmt.Errorf("colors.current '%s' isn't a color", c.Current)
	}
	return nil
}

// ValidColor reports whether s is an ANSI color code (0-255) or a hex color
// (#rgb or #rrggbb).
func ValidColor(s string) bool {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}

	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
