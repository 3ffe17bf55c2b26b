// Package latsim replays real or synthetic latency matrices through the
// Vivaldi coordinate engine and reports how well the coordinates learn
// to predict the matrix.
//
// 🚀 What is latsim?
//
//	A deterministic driver for convergence experiments:
//	  • ParseMatrix reads whitespace-separated RTT matrices (the
//	    PlanetLab dataset format, one row per node, milliseconds)
//	  • Cluster owns one coordinate per node and performs pairwise
//	    update rounds in a fixed order under a fixed seed
//	  • Stats snapshots the mean/max estimation error per checkpoint
//
// ✨ Why a simulator?
//
//   - tuning: watch how Ce/Cc trade convergence speed for stability on
//     your own latency data before deploying
//   - regression: a fixed seed makes every run bit-reproducible
//
// ⚙️ Usage:
//
//	m, err := latsim.ParseMatrix(file)
//	cl, err := latsim.NewCluster[vec.D3](m, 42)
//	trend, err := cl.Run(200, 20)
//	for _, s := range trend {
//	    fmt.Printf("round %d: mean=%.1fms max=%.1fms\n", s.Round, s.MeanAbsErrMs, s.MaxAbsErrMs)
//	}
//
// The cmd/latsim CLI wraps this package with a YAML config and
// structured logging.
//
// Complexity: one round is O(K² · N) for K nodes in dimension N.
package latsim
