// Package config loads runtime settings for find from a YAML file and the
// environment.
package config

import (
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig names an explicit config file.
	EnvConfig = "FIND_CONFIG"
	// EnvLogLevel overrides logLevel.
	EnvLogLevel = "FIND_LOG_LEVEL"
	// EnvOnError overrides onError.
	EnvOnError = "FIND_ON_ERROR"

	relPath = "gofind/config.yaml"
)

// OnError values.
const (
	OnErrorHalt     = "halt"
	OnErrorContinue = "continue"
)

// Config holds runtime settings.
type Config struct {
	LogLevel string `yaml:"logLevel"`
	OnError  string `yaml:"onError"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: log.WarnLevel.String(),
		OnError:  OnErrorHalt,
	}
}

// Load reads the file named by $FIND_CONFIG, or else gofind/config.yaml from
// the XDG config directories, then applies environment overrides. A missing
// file is not an error.
func Load() (Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		found, err := xdg.SearchConfigFile(relPath)
		if err == nil {
			path = found
		}
	}

	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFile(path)
		if err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvOnError); v != "" {
		cfg.OnError = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads settings from path on top of the defaults. A file that does
// not exist yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(err, "failed to read config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate checks that every value is recognized.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.OnError {
	case OnErrorHalt, OnErrorContinue:
		return nil
	default:
		return errors.Newf("invalid onError %q: want %q or %q", c.OnError, OnErrorHalt, OnErrorContinue)
	}
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.Wrapf(err, "invalid logLevel %q", c.LogLevel)
	}
	return lvl, nil
}

// ContinueOnError reports whether traversal errors should be reported and
// skipped rather than ending the run.
func (c Config) ContinueOnError() bool {
	return c.OnError == OnErrorContinue
}
