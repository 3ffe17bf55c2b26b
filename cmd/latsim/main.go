// Command latsim replays a latency matrix through the Vivaldi coordinate
// engine and logs how quickly the coordinates learn to predict it.
//
// Usage:
//
//	latsim -config sim.yaml
//	latsim -matrix PlanetLabData_1 -dimension 3 -rounds 200 -seed 42
//
// Flags override values from the YAML config. The matrix file is
// whitespace-separated milliseconds, one row per node (the PlanetLab
// dataset format).
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/latspace/netcoord/latsim"
	"github.com/latspace/netcoord/vec"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML simulation config")
		matrixPath = flag.String("matrix", "", "path to the latency matrix (overrides config)")
		dimension  = flag.Int("dimension", 0, "coordinate dimension, 2 or 3 (overrides config)")
		rounds     = flag.Int("rounds", 0, "number of pairwise update rounds (overrides config)")
		checkpoint = flag.Int("checkpoint", 0, "rounds between stat checkpoints (overrides config)")
		seed       = flag.Int64("seed", 0, "RNG seed (overrides config)")
	)
	flag.Parse()

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := resolveConfig(*configPath, *matrixPath, *dimension, *rounds, *checkpoint, *seed)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	if err = run(cfg, logger); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger builds a production JSON logger writing to stderr.
func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableCaller = true

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

// resolveConfig layers flag overrides on top of the YAML config (or the
// defaults when no config file is given) and validates the result.
func resolveConfig(configPath, matrixPath string, dimension, rounds, checkpoint int, seed int64) (latsim.Config, error) {
	cfg := latsim.DefaultConfig()
	if configPath != "" {
		loaded, err := latsim.LoadConfig(configPath)
		if err != nil {
			return latsim.Config{}, err
		}
		cfg = loaded
	}

	if matrixPath != "" {
		cfg.MatrixPath = matrixPath
	}
	if dimension != 0 {
		cfg.Dimension = dimension
	}
	if rounds != 0 {
		cfg.Rounds = rounds
	}
	if checkpoint != 0 {
		cfg.Checkpoint = checkpoint
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}

// run loads the matrix, replays it at the configured dimension and logs
// one entry per checkpoint.
func run(cfg latsim.Config, logger *zap.Logger) error {
	f, err := os.Open(cfg.MatrixPath)
	if err != nil {
		return fmt.Errorf("opening matrix: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := latsim.ParseMatrix(f)
	if err != nil {
		return err
	}

	logger.Info("matrix loaded",
		zap.String("path", cfg.MatrixPath),
		zap.Int("nodes", m.Size()),
		zap.Int("dimension", cfg.Dimension),
		zap.Int("rounds", cfg.Rounds),
		zap.Int64("seed", cfg.Seed),
	)

	var trend []latsim.Stats
	switch cfg.Dimension {
	case 2:
		trend, err = simulate[vec.D2](m, cfg)
	case 3:
		trend, err = simulate[vec.D3](m, cfg)
	default:
		return latsim.ErrBadDimension
	}
	if err != nil {
		return err
	}

	for _, s := range trend {
		logger.Info("checkpoint",
			zap.Int("round", s.Round),
			zap.Float64("mean_abs_err_ms", s.MeanAbsErrMs),
			zap.Float64("max_abs_err_ms", s.MaxAbsErrMs),
			zap.Float64("mean_local_err", s.MeanLocalErr),
		)
	}

	first, last := trend[0], trend[len(trend)-1]
	logger.Info("simulation complete",
		zap.Float64("baseline_mean_abs_err_ms", first.MeanAbsErrMs),
		zap.Float64("final_mean_abs_err_ms", last.MeanAbsErrMs),
	)

	return nil
}

// simulate runs one cluster at a fixed dimension.
func simulate[D vec.Dim](m *latsim.Matrix, cfg latsim.Config) ([]latsim.Stats, error) {
	cl, err := latsim.NewCluster[D](m, cfg.Seed)
	if err != nil {
		return nil, err
	}

	return cl.Run(cfg.Rounds, cfg.Checkpoint)
}
