// Package config provides configuration loading and management functionality.
package config

import (
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/douhashi/greet/pkg/errors"
)

type Config struct {
	Prompt PromptConfig `yaml:"prompt"`
	Input  InputConfig  `yaml:"input"`
	Log    LogConfig    `yaml:"log"`
}

type PromptConfig struct {
	Console  string `yaml:"console"`
	Buffered string `yaml:"buffered"`
}

type InputConfig struct {
	// Capacity is the buffer size handed to the bounded reader,
	// terminator included.
	Capacity int `yaml:"capacity"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "text"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config when file doesn't exist
			cfg := &Config{}
			cfg.setDefaults()
			return cfg, nil
		}
		if os.IsPermission(err) {
			return nil, NewConfigLoadError(path, "permission denied")
		}
		return nil, errors.WrapExternal(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigLoadError(path, "invalid YAML format")
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Prompt.Console == "" {
		c.Prompt.Console = DefaultConsolePrompt
	}
	if c.Prompt.Buffered == "" {
		c.Prompt.Buffered = DefaultBufferedPrompt
	}
	if c.Input.Capacity == 0 {
		c.Input.Capacity = DefaultCapacity
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks settings that would break a reader at call time.
func (c *Config) Validate() error {
	if c.Input.Capacity < 1 {
		err := errors.NewValidationError("input.capacity must be at least 1")
		return errors.WithContext(err, "capacity", c.Input.Capacity)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		err := errors.NewValidationError("log.format must be \"text\" or \"json\"")
		return errors.WithContext(err, "format", c.Log.Format)
	}

	return nil
}
