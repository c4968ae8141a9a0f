package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pkgstats/pkgstats/pkg/mirror"
)

// envMirror is the environment variable overriding the mirror base URL.
const envMirror = "DEBIAN_MIRROR"

// fileConfig holds the optional settings read from config.toml.
// Zero values mean "not set" and fall through to the defaults.
type fileConfig struct {
	Mirror    string `toml:"mirror"`
	Suite     string `toml:"suite"`
	Component string `toml:"component"`
	Top       int    `toml:"top"`
}

// configPath returns the config file location using the XDG standard
// (~/.config/pkgstats/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file if it exists. A missing file is not
// an error; a file that exists but does not parse is.
func loadConfig() (fileConfig, error) {
	var cfg fileConfig

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSource merges the source coordinates from, in order of
// precedence: flags, the DEBIAN_MIRROR environment variable (mirror
// only), the config file, and the built-in defaults. Empty flag values
// mean the flag was not given.
func resolveSource(cfg fileConfig, flagMirror, flagSuite, flagComponent string) mirror.Source {
	src := mirror.DefaultSource()

	if cfg.Mirror != "" {
		src.Base = cfg.Mirror
	}
	if cfg.Suite != "" {
		src.Suite = cfg.Suite
	}
	if cfg.Component != "" {
		src.Component = cfg.Component
	}

	if env := os.Getenv(envMirror); env != "" {
		src.Base = env
	}

	if flagMirror != "" {
		src.Base = flagMirror
	}
	if flagSuite != "" {
		src.Suite = flagSuite
	}
	if flagComponent != "" {
		src.Component = flagComponent
	}

	return src
}

// resolveTop picks the ranking size: the flag when given, else the
// config file, else the default of 10.
func resolveTop(cfg fileConfig, flagTop int, flagSet bool) int {
	if flagSet {
		return flagTop
	}
	if cfg.Top != 0 {
		return cfg.Top
	}
	return 10
}
