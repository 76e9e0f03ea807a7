// Package config loads the optional YAML configuration of the khmerfmt tool.
package config

import (
	"fmt"
	"os"
	"time"

	"khmer-format/internal/domain"

	"github.com/goccy/go-yaml"
)

// Config holds the defaults applied when a command does not set a value.
type Config struct {
	// Timezone used by "now" when no zone is given. Empty means the host zone.
	Timezone string `yaml:"timezone"`

	// Mode is the default render mode for times.
	Mode string `yaml:"mode"`

	HTTP HTTPConfig `yaml:"http"`
	Log  LogConfig  `yaml:"log"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Timezone: "Asia/Phnom_Penh",
		Mode:     string(domain.ModeDigits),
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the mode and timezone names.
func (c Config) Validate() error {
	if _, err := domain.ParseRenderMode(c.Mode); err != nil {
		return err
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("%w: %q: %v", domain.ErrInvalidTimezone, c.Timezone, err)
		}
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr must not be empty")
	}
	return nil
}
