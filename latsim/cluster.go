package latsim

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/latspace/netcoord/vec"
	"github.com/latspace/netcoord/vivaldi"
)

// Node pairs a coordinate with a stable identity for reporting.
type Node[D vec.Dim] struct {
	ID    uuid.UUID
	Coord *vivaldi.Coordinate[D]
}

// Cluster simulates a network of nodes converging on coordinates that
// explain a latency matrix. All nodes share one seeded RNG and updates
// run in a fixed order, so a run is fully reproducible.
type Cluster[D vec.Dim] struct {
	matrix *Matrix
	nodes  []Node[D]
	round  int
}

// Stats is one convergence checkpoint.
//
// MeanAbsErrMs  – mean |EstimateRTT − matrix RTT| over all ordered pairs.
// MaxAbsErrMs   – the worst pair at this checkpoint.
// MeanLocalErr  – mean of the nodes' own error estimates.
type Stats struct {
	Round        int
	MeanAbsErrMs float64
	MaxAbsErrMs  float64
	MeanLocalErr float64
}

// NewCluster creates one fresh coordinate per matrix node, all fed from
// a single RNG seeded with seed.
func NewCluster[D vec.Dim](m *Matrix, seed int64) (*Cluster[D], error) {
	if m == nil || m.Size() == 0 {
		return nil, ErrEmptyMatrix
	}
	if m.Size() < 2 {
		return nil, ErrTooFewNodes
	}

	rng := rand.New(rand.NewSource(seed))
	nodes := make([]Node[D], m.Size())
	for i := range nodes {
		nodes[i] = Node[D]{
			ID:    uuid.New(),
			Coord: vivaldi.New[D](vivaldi.WithRand(rng)),
		}
	}

	return &Cluster[D]{matrix: m, nodes: nodes}, nil
}

// Nodes returns the simulated nodes. Callers must treat the coordinates
// as read-only; the cluster owns their update schedule.
func (c *Cluster[D]) Nodes() []Node[D] {
	return c.nodes
}

// Round performs one full pairwise pass: every node incorporates one
// sample against every other node, in index order.
func (c *Cluster[D]) Round() error {
	for i := range c.nodes {
		for j := range c.nodes {
			if i == j {
				continue
			}
			rtt := c.matrix.RTT(i, j)
			if err := c.nodes[i].Coord.Update(c.nodes[j].Coord, rtt); err != nil {
				return err
			}
		}
	}
	c.round++

	return nil
}

// Stats measures the current estimation quality against the matrix.
func (c *Cluster[D]) Stats() Stats {
	var sum, worst, errSum float64
	var pairs int
	for i := range c.nodes {
		errSum += c.nodes[i].Coord.Error
		for j := range c.nodes {
			if i == j {
				continue
			}
			est := c.nodes[i].Coord.EstimateRTT(c.nodes[j].Coord).Seconds() * 1000
			diff := math.Abs(est - c.matrix.rttMs(i, j))
			sum += diff
			worst = math.Max(worst, diff)
			pairs++
		}
	}

	return Stats{
		Round:        c.round,
		MeanAbsErrMs: sum / float64(pairs),
		MaxAbsErrMs:  worst,
		MeanLocalErr: errSum / float64(len(c.nodes)),
	}
}

// Run executes rounds full passes, collecting Stats every `every` rounds
// and once more after the final round. The first entry is the pre-run
// baseline at round 0.
func (c *Cluster[D]) Run(rounds, every int) ([]Stats, error) {
	if rounds <= 0 {
		return nil, ErrBadRounds
	}
	if every <= 0 {
		return nil, ErrBadCheckpoint
	}

	trend := []Stats{c.Stats()}
	for r := 1; r <= rounds; r++ {
		if err := c.Round(); err != nil {
			return nil, err
		}
		if r%every == 0 || r == rounds {
			trend = append(trend, c.Stats())
		}
	}

	return trend, nil
}
