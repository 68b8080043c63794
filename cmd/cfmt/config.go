package main

import (
	"fmt"
	"os"

	"github.com/bjaus/cfmt"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk CLI configuration. Command-line flags override it.
type Config struct {
	BufferSize int    `yaml:"buffer_size"`
	Unknown    string `yaml:"unknown"` // verb, directive
	Output     string `yaml:"output"`
	Border     string `yaml:"border"`
	Escapes    bool   `yaml:"escapes"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		BufferSize: cfmt.DefaultBufferSize,
		Unknown:    cfmt.EchoVerb.String(),
		Output:     cfmt.OutputTable.String(),
		Border:     "rounded",
		Escapes:    true,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path yields the
// defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// settings is a validated Config.
type settings struct {
	bufferSize int
	unknown    cfmt.UnknownPolicy
	output     cfmt.Output
	border     cfmt.BorderStyle
	escapes    bool
}

func (c *Config) settings() (settings, error) {
	if c.BufferSize < 0 {
		return settings{}, fmt.Errorf("buffer_size must not be negative, got %d", c.BufferSize)
	}
	unknown, err := cfmt.ParseUnknownPolicy(c.Unknown)
	if err != nil {
		return settings{}, err
	}
	output, err := cfmt.ParseOutput(c.Output)
	if err != nil {
		return settings{}, err
	}
	border, err := cfmt.ParseBorder(c.Border)
	if err != nil {
		return settings{}, err
	}
	return settings{
		bufferSize: c.BufferSize,
		unknown:    unknown,
		output:     output,
		border:     border,
		escapes:    c.Escapes,
	}, nil
}
