package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ProjectFileName is the project-level config file looked up in the working directory.
const ProjectFileName = ".todol.toml"

// Sources names the inputs Load reads. Zero fields fall back to the real
// environment and config locations.
type Sources struct {
	// UserFile overrides the user config file location.
	UserFile string
	// WorkDir is searched for the project config file.
	WorkDir string
	// LookupEnv reads environment variables; defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// Load resolves configuration from defaults, config files and environment.
// Missing config files are skipped; unreadable or malformed ones are errors.
func Load(src Sources) (*Config, error) {
	if src.LookupEnv == nil {
		src.LookupEnv = os.LookupEnv
	}
	if src.UserFile == "" {
		src.UserFile = userConfigFile(src.LookupEnv)
	}

	cfg := Defaults()

	if err := loadConfigFile(cfg, src.UserFile); err != nil {
		return nil, fmt.Errorf("loading user config file %s: %w", src.UserFile, err)
	}

	if src.WorkDir != "" {
		projectFile := filepath.Join(src.WorkDir, ProjectFileName)
		if err := loadConfigFile(cfg, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	if err := loadFromEnv(cfg, src.LookupEnv); err != nil {
		return nil, err
	}

	cfg.ArchivePath = expandPath(cfg.ArchivePath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile decodes the TOML file at path over cfg. A missing file is
// not an error; keys todol does not know are.
func loadConfigFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadFromEnv overrides config from TODOL_* environment variables.
func loadFromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("TODOL_FORMAT"); ok && v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v, ok := lookup("TODOL_COLOR"); ok && v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v, ok := lookup("TODOL_ARCHIVE_PATH"); ok && v != "" {
		cfg.ArchivePath = v
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"TODOL_ARCHIVE", &cfg.Archive},
		{"TODOL_LOCK", &cfg.Lock},
		{"TODOL_VERBOSE", &cfg.Verbose},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: must be true or false", b.key, v)
		}
		*b.dst = parsed
	}

	if v, ok := lookup("TODOL_LOCK_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TODOL_LOCK_TIMEOUT value %q: %w", v, err)
		}
		cfg.LockTimeout = Duration{d}
	}
	return nil
}

// userConfigFile returns the user-level config path, honouring XDG_CONFIG_HOME.
func userConfigFile(lookup func(string) (string, bool)) string {
	if xdg, ok := lookup("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, "todol", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "todol", "config.toml")
}

// expandPath expands a leading ~ and environment variables in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
