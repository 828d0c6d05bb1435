// Package config holds the recognized run-time limits of the clustering engine
// and loads them from YAML.
//
// The defaults mirror the fixed bounds the engine was sized for: at most 1024
// points, the 1000 nearest pairs for the bounded ranking, and the three largest
// groups in the reported product.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/junction/pairwise"
)

const (
	// DefaultMaxPoints is the capacity ceiling for every per-point array.
	DefaultMaxPoints = 1024

	// DefaultPairLimit is K, the number of nearest pairs kept by the bounded ranking.
	DefaultPairLimit = 1000

	// DefaultTopGroups is how many of the largest group sizes are multiplied together.
	DefaultTopGroups = 3

	// MaxTopGroups caps TopGroups; it matches the lte bound on the struct tag.
	MaxTopGroups = 64
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config carries the engine limits.
type Config struct {
	// MaxPoints bounds the number of input points.
	MaxPoints int `yaml:"max_points" validate:"gte=1"`

	// PairLimit is K for the bounded top-K ranking.
	PairLimit int `yaml:"pair_limit" validate:"gte=1"`

	// TopGroups is the number of largest groups whose sizes form the product.
	TopGroups int `yaml:"top_groups" validate:"gte=1,lte=64"`
}

var validate = validator.New()

// Default returns the built-in limits.
func Default() Config {
	return Config{
		MaxPoints: DefaultMaxPoints,
		PairLimit: DefaultPairLimit,
		TopGroups: DefaultTopGroups,
	}
}

// Validate checks field ranges. It does not relate PairLimit to MaxPoints,
// because only the bounded ranking reads PairLimit; see ValidatePairLimit.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// ValidatePairLimit checks that K fits within the number of pairs MaxPoints
// points can form. Callers run it before a bounded top-K ranking.
func (c Config) ValidatePairLimit() error {
	if ceiling := pairwise.Count(c.MaxPoints); c.PairLimit > ceiling {
		return fmt.Errorf("%w: pair_limit %d exceeds %d pairs available for max_points %d",
			ErrInvalid, c.PairLimit, ceiling, c.MaxPoints)
	}

	return nil
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected and
// an empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
