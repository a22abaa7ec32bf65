// Package config loads and validates the runtime settings shared by the
// aztec commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid indicates a setting failed validation.
	ErrInvalid = errors.New("config: invalid setting")
	// ErrUnknownKey indicates an override names a setting that does not exist.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config controls growth, pacing and presentation.
type Config struct {
	// MaxOrder caps the diamond order. Zero derives it from WindowPx.
	MaxOrder int `yaml:"max_order"`
	// WindowPx is the square window edge used by the desktop viewer.
	WindowPx int `yaml:"window_px"`
	// CellPx is the drawn size of one unit square.
	CellPx int `yaml:"cell_px"`
	// Seed feeds the coin flips. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// IntervalMS is the delay between automatic steps.
	IntervalMS int `yaml:"interval_ms"`
	// HalfStepMode makes automatic ticks advance by half-steps.
	HalfStepMode bool `yaml:"half_step_mode"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		WindowPx:   1024,
		CellPx:     8,
		IntervalMS: 300,
		LogLevel:   "info",
	}
}

// Interval returns IntervalMS as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// EffectiveMaxOrder returns MaxOrder, or the largest order that fits the
// window when MaxOrder is unset.
func (c Config) EffectiveMaxOrder() int {
	if c.MaxOrder > 0 {
		return c.MaxOrder
	}
	if c.CellPx <= 0 {
		return 0
	}
	return c.WindowPx / (2 * c.CellPx)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.MaxOrder != 0 && c.MaxOrder < 2 {
		return fmt.Errorf("%w: max_order %d must be at least 2", ErrInvalid, c.MaxOrder)
	}
	if c.CellPx < 2 {
		return fmt.Errorf("%w: cell_px %d must be at least 2", ErrInvalid, c.CellPx)
	}
	if c.WindowPx <= 0 {
		return fmt.Errorf("%w: window_px %d must be positive", ErrInvalid, c.WindowPx)
	}
	if c.EffectiveMaxOrder() < 2 {
		return fmt.Errorf("%w: window_px %d too small for cell_px %d", ErrInvalid, c.WindowPx, c.CellPx)
	}
	if c.IntervalMS <= 0 {
		return fmt.Errorf("%w: interval_ms %d must be positive", ErrInvalid, c.IntervalMS)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Load reads configuration.
// Search order: customPath -> ~/.aztec/config.yaml -> defaults.
// Settings missing from the file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			parsed := DefaultConfig()
			if err := yaml.Unmarshal(data, &parsed); err == nil {
				return parsed, nil
			}
		}
	}
	return cfg, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aztec", "config.yaml")
}

// FromMap applies flag-style key/value overrides on top of c.
func FromMap(c Config, kv map[string]string) (Config, error) {
	for key, v := range kv {
		var err error
		switch key {
		case "max_order":
			c.MaxOrder, err = strconv.Atoi(v)
		case "window_px":
			c.WindowPx, err = strconv.Atoi(v)
		case "cell_px":
			c.CellPx, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "interval_ms":
			c.IntervalMS, err = strconv.Atoi(v)
		case "half_step_mode":
			c.HalfStepMode, err = strconv.ParseBool(v)
		case "log_level":
			c.LogLevel = v
		default:
			return c, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
		}
	}
	return c, nil
}

// ParseOverrides splits key=value pairs into a map.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("%w: override %q is not key=value", ErrInvalid, kv)
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out, nil
}
