package usc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/usc/asset"
)

// Config is the YAML configuration file of the uscc tool:
//
//	platform: d3d11
//	engine: 2021.3.1f1
//	parallelism: 8
//	log_level: debug
//	opcodes:
//	  directx:
//	    exp: exp
type Config struct {
	Platform    asset.Platform `yaml:"platform"`
	Engine      asset.Version  `yaml:"engine"`
	Parallelism int            `yaml:"parallelism"`
	LogLevel    slog.Level     `yaml:"log_level"`

	// Opcodes are per-backend name→name overrides of the opcode tables.
	Opcodes map[string]map[string]string `yaml:"opcodes"`
}

// DefaultConfig returns the configuration used when no file is given. Its
// platform is asset.PlatformUnknown, so requests must name one.
func DefaultConfig() *Config {
	return &Config{Platform: asset.PlatformUnknown}
}

// LoadConfig reads a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a configuration document over DefaultConfig. Unknown
// keys are errors.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := decodeStrict(data, c); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if c.Parallelism < 0 {
		return nil, fmt.Errorf("parse config yaml: parallelism %d is negative", c.Parallelism)
	}
	return c, nil
}

// LoadOpcodeOverlay reads a YAML file of per-backend opcode overrides,
// shaped like Config.Opcodes.
func LoadOpcodeOverlay(path string) (map[string]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read opcode overlay: %w", err)
	}
	var overlay map[string]map[string]string
	if err := decodeStrict(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse opcode overlay yaml: %w", err)
	}
	return overlay, nil
}

// Options resolves the configuration on top of DefaultOptions.
func (c *Config) Options() (Options, error) {
	opts := DefaultOptions()
	if c.Parallelism > 0 {
		opts.Parallelism = c.Parallelism
	}
	if len(c.Opcodes) > 0 {
		tables, err := opts.Tables.Overlay(c.Opcodes)
		if err != nil {
			return Options{}, err
		}
		opts.Tables = tables
	}
	return opts, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
