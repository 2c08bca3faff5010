package main

import (
	"fmt"

	"github.com/ajroetker/go-radixsort/internal/dists"
)

// Config drives the bench subcommand. It is read from YAML; the field tags
// are JSON because the YAML layer converts through JSON.
type Config struct {
	// Seed is the base RNG seed. Each case derives its own stream from it,
	// so reordering cases does not change any case's input data.
	Seed  uint64       `json:"seed"`
	Cases []CaseConfig `json:"cases"`
}

// CaseConfig is one benchmark case: a key distribution sorted at several
// sizes under several engine modes.
type CaseConfig struct {
	Name string `json:"name"`
	// Dist names a key distribution from internal/dists.
	Dist  string `json:"dist"`
	Sizes []int  `json:"sizes"`
	// Modes are engine selections: auto, lsd, msd, or inplace.
	Modes []string `json:"modes"`
	// Record is the element shape: key32 (bare 4-byte keys), pair8
	// (key + index), or rec16 (key + 12-byte payload).
	Record string `json:"record"`
	// Runs is the number of timed repetitions per size and mode; Warmup
	// runs precede them unrecorded.
	Runs   int `json:"runs"`
	Warmup int `json:"warmup"`
}

var validModes = map[string]bool{
	"auto":    true,
	"lsd":     true,
	"msd":     true,
	"inplace": true,
}

var validRecords = map[string]bool{
	"key32": true,
	"pair8": true,
	"rec16": true,
}

// Validate checks the config for mistakes that would otherwise surface as
// confusing mid-run failures.
func (c *Config) Validate() error {
	if len(c.Cases) == 0 {
		return fmt.Errorf("config has no cases")
	}
	seen := make(map[string]bool, len(c.Cases))
	for i := range c.Cases {
		cc := &c.Cases[i]
		if cc.Name == "" {
			return fmt.Errorf("case %d: missing name", i)
		}
		if seen[cc.Name] {
			return fmt.Errorf("case %q: duplicate name", cc.Name)
		}
		seen[cc.Name] = true
		if _, err := dists.ByName(cc.Dist); err != nil {
			return fmt.Errorf("case %q: %w", cc.Name, err)
		}
		if len(cc.Sizes) == 0 {
			return fmt.Errorf("case %q: no sizes", cc.Name)
		}
		for _, n := range cc.Sizes {
			if n <= 0 {
				return fmt.Errorf("case %q: size %d is not positive", cc.Name, n)
			}
		}
		if len(cc.Modes) == 0 {
			return fmt.Errorf("case %q: no modes", cc.Name)
		}
		for _, m := range cc.Modes {
			if !validModes[m] {
				return fmt.Errorf("case %q: unknown mode %q", cc.Name, m)
			}
		}
		if cc.Record == "" {
			cc.Record = "key32"
		}
		if !validRecords[cc.Record] {
			return fmt.Errorf("case %q: unknown record shape %q", cc.Name, cc.Record)
		}
		if cc.Runs <= 0 {
			return fmt.Errorf("case %q: runs must be positive", cc.Name)
		}
		if cc.Warmup < 0 {
			return fmt.Errorf("case %q: warmup must not be negative", cc.Name)
		}
	}
	return nil
}

// DefaultConfig is what the bench subcommand runs when no config file is
// given.
func DefaultConfig() Config {
	return Config{
		Seed: 1,
		Cases: []CaseConfig{
			{
				Name:   "uniform-keys",
				Dist:   "uniform",
				Sizes:  []int{1000, 100000, 3000000},
				Modes:  []string{"auto", "lsd", "msd", "inplace"},
				Record: "key32",
				Runs:   10,
				Warmup: 2,
			},
			{
				Name:   "clustered-records",
				Dist:   "clustered",
				Sizes:  []int{100000},
				Modes:  []string{"auto", "inplace"},
				Record: "rec16",
				Runs:   10,
				Warmup: 2,
			},
		},
	}
}
