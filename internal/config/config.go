package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vedicvision/vvadmin/internal/errors"
)

// DefaultAPIURL is used when no backend origin is configured.
const DefaultAPIURL = "http://localhost:5000/api"

// EnvAPIURL overrides the configured backend origin when set.
const EnvAPIURL = "VVADMIN_API_URL"

// Config holds the global vvadmin configuration stored at ~/.vvadmin/config.yaml
type Config struct {
	// APIURL is the backend origin, e.g. https://api.vedicvision.example/api
	APIURL string `yaml:"api_url"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`

	// Output is the default list output format (table, json)
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		LogLevel:  "warn",
		LogFormat: "text",
		Output:    "table",
	}
}

// Dir returns the vvadmin configuration directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigNotFound, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".vvadmin"), nil
}

// Path returns the configuration file path
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration file, falling back to defaults when absent.
// The VVADMIN_API_URL environment variable overrides the configured origin.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("cannot read %s", path), err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.NewFileUnmarshalError(path, "YAML", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the configuration file, creating the directory when needed
func (c Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "cannot marshal config", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}

// Get returns the value of a configuration key
func (c Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "log_level":
		return c.LogLevel, nil
	case "log_format":
		return c.LogFormat, nil
	case "output":
		return c.Output, nil
	default:
		return "", errors.NewConfigKeyUnknownError(key)
	}
}

// Set updates the value of a configuration key
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		c.APIURL = value
	case "log_level":
		c.LogLevel = value
	case "log_format":
		c.LogFormat = value
	case "output":
		if value != "table" && value != "json" {
			return errors.New(errors.ErrCodeConfigInvalid, "output must be 'table' or 'json'")
		}
		c.Output = value
	default:
		return errors.NewConfigKeyUnknownError(key)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}
}
