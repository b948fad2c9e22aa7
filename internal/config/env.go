// Package config loads diesir command configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/zephyrtronium/diesir"
)

// Config holds settings for the diesir command. Command-line flags override
// each field.
type Config struct {
	// Prec is the precision of exponentiation in bits.
	Prec uint `env:"DIESIR_PREC" envDefault:"64"`
	// Seed makes rolls reproducible when nonzero.
	Seed uint64 `env:"DIESIR_SEED" envDefault:"0"`
	// MaxDice limits the dice in a single term. Zero is unlimited.
	MaxDice int64 `env:"DIESIR_MAX_DICE" envDefault:"10000"`
	// UppercaseDie accepts D as a die marker.
	UppercaseDie bool `env:"DIESIR_UPPERCASE_DIE" envDefault:"false"`
	// Echo prints each parse tree before its result.
	Echo bool `env:"DIESIR_ECHO" envDefault:"false"`
	// JSON prints results as JSON objects.
	JSON bool `env:"DIESIR_JSON" envDefault:"false"`
}

// Load reads a Config from the environment, applying defaults for unset
// variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration to Roller options.
func (c Config) Options() []diesir.Option {
	opts := []diesir.Option{
		diesir.Prec(c.Prec),
		diesir.MaxDice(c.MaxDice),
	}
	if c.Seed != 0 {
		opts = append(opts, diesir.Seed(c.Seed))
	}
	if c.UppercaseDie {
		opts = append(opts, diesir.UppercaseDie())
	}
	return opts
}
