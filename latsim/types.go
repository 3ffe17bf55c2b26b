// Package latsim defines the simulator's configuration and sentinel errors.
package latsim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by the simulator.
var (
	// ErrEmptyMatrix indicates the matrix input contained no rows.
	ErrEmptyMatrix = errors.New("latsim: latency matrix is empty")

	// ErrRaggedMatrix indicates rows of unequal length.
	ErrRaggedMatrix = errors.New("latsim: latency matrix rows have unequal lengths")

	// ErrNotSquare indicates the row count does not match the column count.
	ErrNotSquare = errors.New("latsim: latency matrix is not square")

	// ErrBadLatency indicates a negative or unparsable matrix entry.
	ErrBadLatency = errors.New("latsim: latency entries must be non-negative numbers")

	// ErrBadDimension indicates an unsupported coordinate dimension in the config.
	ErrBadDimension = errors.New("latsim: dimension must be 2 or 3")

	// ErrBadRounds indicates a non-positive round count.
	ErrBadRounds = errors.New("latsim: rounds must be positive")

	// ErrBadCheckpoint indicates a non-positive checkpoint interval.
	ErrBadCheckpoint = errors.New("latsim: checkpoint interval must be positive")

	// ErrNoMatrixPath indicates the config names no matrix file.
	ErrNoMatrixPath = errors.New("latsim: matrix path is required")

	// ErrTooFewNodes indicates a matrix with fewer than two nodes,
	// which leaves nothing to measure.
	ErrTooFewNodes = errors.New("latsim: latency matrix needs at least two nodes")
)

// Config describes one simulation run. It is the YAML schema consumed by
// cmd/latsim.
//
// MatrixPath – path to a whitespace-separated square RTT matrix (ms).
// Dimension  – coordinate dimension, 2 or 3.
// Rounds     – number of full pairwise update rounds.
// Checkpoint – collect Stats every this many rounds.
// Seed       – RNG seed; identical seeds reproduce identical runs.
type Config struct {
	MatrixPath string `yaml:"matrix_path"`
	Dimension  int    `yaml:"dimension"`
	Rounds     int    `yaml:"rounds"`
	Checkpoint int    `yaml:"checkpoint"`
	Seed       int64  `yaml:"seed"`
}

// DefaultConfig returns the Config used when a field is left unset.
//
// Defaults:
//   - Dimension:  3 (the sweet spot in the Vivaldi paper's evaluation)
//   - Rounds:     200
//   - Checkpoint: 20
//   - Seed:       1
func DefaultConfig() Config {
	return Config{
		Dimension:  3,
		Rounds:     200,
		Checkpoint: 20,
		Seed:       1,
	}
}

// Validate checks the config against the sentinel errors above.
func (c Config) Validate() error {
	if c.MatrixPath == "" {
		return ErrNoMatrixPath
	}
	if c.Dimension != 2 && c.Dimension != 3 {
		return ErrBadDimension
	}
	if c.Rounds <= 0 {
		return ErrBadRounds
	}
	if c.Checkpoint <= 0 {
		return ErrBadCheckpoint
	}

	return nil
}

// LoadConfig reads a YAML config file, fills unset fields from
// DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("latsim: reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("latsim: parsing config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
