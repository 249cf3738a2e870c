package config

import (
	"fmt"
)

// Config represents the complete tool configuration
type Config struct {
	Logging  LoggingConfig      `mapstructure:"logging"`
	Profiles map[string]Profile `mapstructure:"profiles"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// Profile is an ordered list of field classes a codec applies in sequence.
// A profile is the out-of-band contract between a structural encoder and
// its matching decoder: both sides must use byte-identical parameters in
// identical order, the bit stream itself is not self-describing.
type Profile struct {
	Fields []FieldClass `mapstructure:"fields"`
}

// FieldClass fixes the encoding parameters for one class of values
type FieldClass struct {
	Name   string `mapstructure:"name"`
	Width  uint   `mapstructure:"width"` // total payload width: 8, 16, 32 or 64
	Signed bool   `mapstructure:"signed"`
	// ChunkLength is the chunk size of the variable-width encoding
	ChunkLength uint `mapstructure:"chunk_length"`
	// ZigZagExponent is the block exponent of the zigzag transform,
	// meaningful for signed fields only
	ZigZagExponent uint `mapstructure:"zigzag_exponent"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profiles: map[string]Profile{
			"default": {
				Fields: []FieldClass{
					{Name: "u64", Width: 64, ChunkLength: 6},
					{Name: "s64", Width: 64, Signed: true, ChunkLength: 6, ZigZagExponent: 1},
				},
			},
		},
	}
}

// Validate checks the configuration for invalid encoding parameters
func (c *Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no encoding profiles configured")
	}
	for name, profile := range c.Profiles {
		if len(profile.Fields) == 0 {
			return fmt.Errorf("profile %q has no fields", name)
		}
		for _, f := range profile.Fields {
			switch f.Width {
			case 8, 16, 32, 64:
			default:
				return fmt.Errorf("profile %q field %q: width must be 8, 16, 32 or 64, got %d", name, f.Name, f.Width)
			}
			if f.ChunkLength < 1 || f.ChunkLength > f.Width {
				return fmt.Errorf("profile %q field %q: chunk length must be in [1, %d], got %d", name, f.Name, f.Width, f.ChunkLength)
			}
			if f.ZigZagExponent >= 64 {
				return fmt.Errorf("profile %q field %q: zigzag exponent must be below 64, got %d", name, f.Name, f.ZigZagExponent)
			}
			if !f.Signed && f.ZigZagExponent != 0 {
				return fmt.Errorf("profile %q field %q: zigzag exponent set on an unsigned field", name, f.Name)
			}
		}
	}
	return nil
}

// Profile returns the named profile
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}
