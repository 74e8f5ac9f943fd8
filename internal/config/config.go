// Package config loads todol settings.
//
// Configuration is layered in priority order:
//  1. Built-in defaults
//  2. User config file ($XDG_CONFIG_HOME/todol/config.toml or ~/.config/todol/config.toml)
//  3. Project config file (.todol.toml in the working directory)
//  4. Environment variables (TODOL_*)
//  5. CLI flags, applied by the caller
//
// Each level overrides the previous one.
package config

import (
	"fmt"
	"time"
)

// Default values.
const (
	DefaultColor       = ColorAuto
	DefaultLock        = true
	DefaultLockTimeout = 5 * time.Second
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats. An empty format means auto-detect from the terminal.
const (
	FormatToon   = "toon"
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Format      string   `toml:"format"`
	Color       string   `toml:"color"`
	Archive     bool     `toml:"archive"`
	ArchivePath string   `toml:"archive_path"`
	Lock        bool     `toml:"lock"`
	LockTimeout Duration `toml:"lock_timeout"`
	Verbose     bool     `toml:"verbose"`
}

// Duration is a time.Duration written as a Go duration string ("5s", "250ms").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns a Config with every built-in default applied.
func Defaults() *Config {
	return &Config{
		Color:       DefaultColor,
		Lock:        DefaultLock,
		LockTimeout: Duration{DefaultLockTimeout},
	}
}

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatToon, FormatPretty, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: must be toon, pretty, or json", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: must be auto, always, or never", c.Color)
	}
	if c.LockTimeout.Duration <= 0 {
		return fmt.Errorf("lock_timeout must be positive, got %s", c.LockTimeout.Duration)
	}
	return nil
}
