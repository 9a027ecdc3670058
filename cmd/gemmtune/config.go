package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the gemmtune configuration file
// (~/.config/gemmtune/config.yaml). All fields are pointers so we can
// distinguish "not set" from zero values.
type Config struct {
	// Device
	DeviceProfile *string `yaml:"device_profile"`
	Target        *string `yaml:"target"`
	Strict        *bool   `yaml:"strict"`
	Backend       *string `yaml:"backend"`

	// Output
	LogLevel  *string `yaml:"log_level"`
	LogFormat *string `yaml:"log_format"`
	Output    *string `yaml:"output"`

	// Server
	ServerAddress *string  `yaml:"server_address"`
	RateLimit     *float64 `yaml:"rate_limit"`
}

func configPath() string {
	if configFile != "" {
		return configFile
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gemmtune", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file yields a zero
// Config; a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyLoggingConfig applies config file defaults to the logging flags
// when the corresponding CLI flag was not explicitly set.
func applyLoggingConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != nil && !c.IsSet("log-level") {
		logLevel = *cfg.LogLevel
	}
	if cfg.LogFormat != nil && !c.IsSet("log-format") {
		logFormat = *cfg.LogFormat
	}
}

func applyDeviceConfig(c *cli.Command, cfg Config, o *deviceOptions) {
	// An explicit --profile also overrides a configured target and vice versa.
	explicit := c.IsSet("target") || c.IsSet("profile")
	if cfg.DeviceProfile != nil && !explicit {
		o.profile = *cfg.DeviceProfile
	}
	if cfg.Target != nil && !explicit {
		o.target = *cfg.Target
	}
	if cfg.Strict != nil && !c.IsSet("strict") {
		o.strict = *cfg.Strict
	}
}

func applyOutputConfig(c *cli.Command, cfg Config, output *string) {
	if cfg.Output != nil && !c.IsSet("output") {
		*output = *cfg.Output
	}
}

func applyBackendConfig(c *cli.Command, cfg Config, backendName *string) {
	if cfg.Backend != nil && !c.IsSet("backend") {
		*backendName = *cfg.Backend
	}
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, cfg Config, addr *string, rateLimit *float64) {
	if cfg.ServerAddress != nil && !c.IsSet("addr") {
		*addr = *cfg.ServerAddress
	}
	if cfg.RateLimit != nil && !c.IsSet("rate-limit") {
		*rateLimit = *cfg.RateLimit
	}
}
