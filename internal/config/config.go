// Package config loads preset answers and session flags from a YAML file.
package config

import (
	"fmt"
	"os"
	"reflect"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of one hanoi invocation.
// The puzzle fields (Discs, From, Disc, To, ShowMoves) are read only by the
// solve and graph commands; run always asks for them. A zero Disc selects
// the whole stack.
type Config struct {
	Discs     int        `mapstructure:"discs"`
	From      domain.Rod `mapstructure:"from"`
	Disc      int        `mapstructure:"disc"`
	To        domain.Rod `mapstructure:"to"`
	ShowMoves bool       `mapstructure:"show_moves"`

	JSON    bool `mapstructure:"json"`
	Plain   bool `mapstructure:"plain"`
	Debug   bool `mapstructure:"debug"`
	Metrics bool `mapstructure:"metrics"`

	MaxDiscs     int `mapstructure:"max_discs"`
	MaxInputSize int `mapstructure:"max_input_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		From:         domain.RodA,
		To:           domain.RodC,
		MaxDiscs:     runner.DefaultMaxDiscs,
		MaxInputSize: runner.DefaultMaxInputSize,
	}
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode merges raw values into cfg. Numbers given as strings are accepted,
// rods are parsed case-insensitively and unknown keys are rejected.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       rodHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks the values that can be checked without a puzzle.
func (c Config) Validate() error {
	if c.Discs < 0 {
		return fmt.Errorf("discs: %w", domain.ErrInvalidDiscCount)
	}
	if c.MaxDiscs < 1 {
		return fmt.Errorf("max_discs must be positive, got %d", c.MaxDiscs)
	}
	if c.Discs > c.MaxDiscs {
		return fmt.Errorf("discs %d exceeds max_discs %d: %w", c.Discs, c.MaxDiscs, domain.ErrInvalidDiscCount)
	}
	if c.Disc < 0 || (c.Discs > 0 && c.Disc > c.Discs) {
		return fmt.Errorf("disc %d: %w", c.Disc, domain.ErrInvalidDisc)
	}
	return nil
}

var rodType = reflect.TypeOf(domain.Rod(""))

func rodHook(from, to reflect.Type, data any) (any, error) {
	if to != rodType || from.Kind() != reflect.String {
		return data, nil
	}
	return domain.ParseRod(reflect.ValueOf(data).String())
}
