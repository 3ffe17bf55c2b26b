// Package vivaldi defines the Coordinate type, tuning constants and
// configuration options for the network-coordinate engine.
//
// Tuning constants (trade convergence speed against stability — the
// canonical literature values are a safe default, there is no single
// "correct" setting):
//
//	– Ce (0.25): how fast the local-error moving average tracks new samples.
//	  Larger reacts faster to changing network conditions but lets a noisy
//	  sample distort the node's confidence.
//	– Cc (0.25): cap on the fraction of one sample's discrepancy applied to
//	  the position. Larger converges faster but risks oscillation.
//	– HeightMin: positive floor for the height term; keeps the height
//	  scalable and preserves the height ≥ 0 invariant under any input.
//	– ErrorInit / ErrorMin / ErrorMax: initial value and bounds for the
//	  local-error estimate.
//
// Errors (sentinel):
//
//	– ErrInvalidRTT        if a measured RTT is negative.
//	– ErrInvalidCoordinate if a remote coordinate has NaN/Inf fields or a
//	  negative height.
//	– ErrNilCoordinate     if a nil remote coordinate is passed.
//	– ErrNilRand           if WithRand is given a nil source.
package vivaldi

import (
	"errors"
	"math/rand"
	"time"

	"github.com/latspace/netcoord/vec"
)

// Vivaldi tuning parameters, per the original paper's evaluation.
const (
	// Ce scales the exponentially-weighted moving average of the local
	// error: a sample moves the error estimate by at most a Ce fraction.
	Ce = 0.25

	// Cc scales the adaptive position step: one sample corrects at most a
	// Cc fraction of the observed discrepancy.
	Cc = 0.25
)

const (
	// HeightMin is the floor for the height term, in milliseconds. Heights
	// are clamped here instead of zero so they can always be scaled up or
	// down again.
	HeightMin = 1e-5

	// ErrorInit is the local error assigned to a fresh coordinate:
	// maximal uncertainty.
	ErrorInit = 1.0

	// ErrorMax bounds the local error from above. Bursts of inconsistent
	// samples push the moving average past 1; the cap keeps the estimate
	// on its nominal scale.
	ErrorMax = 1.5

	// ErrorMin keeps the local error strictly positive so that a node
	// never becomes perfectly confident and immovable.
	ErrorMin = 1e-9
)

// Sentinel errors returned by the coordinate engine.
var (
	// ErrInvalidRTT indicates a negative measured RTT sample. The local
	// coordinate is left untouched.
	ErrInvalidRTT = errors.New("vivaldi: measured RTT must be non-negative")

	// ErrInvalidCoordinate indicates a remote coordinate carrying NaN/Inf
	// components or a negative height.
	ErrInvalidCoordinate = errors.New("vivaldi: remote coordinate has non-finite fields or negative height")

	// ErrNilCoordinate indicates a nil remote coordinate pointer.
	ErrNilCoordinate = errors.New("vivaldi: remote coordinate is nil")

	// ErrNilRand indicates that WithRand was given a nil randomness source.
	ErrNilRand = errors.New("vivaldi: randomness source is nil")
)

// Coordinate is one node's state in latency space: a position vector, a
// height and a local error estimate. All distances and heights are in
// milliseconds.
//
// The three fields are plain numbers with no hidden state, so external
// serialization round-trips exactly; the JSON tags cover the common case.
// A Coordinate is mutated only through Update, and only by its owning
// node — remote coordinates received from peers are read-only snapshots.
type Coordinate[D vec.Dim] struct {
	// Position is the node's estimated location in latency space. The
	// Euclidean distance between two positions models time spent in the
	// network core.
	Position D `json:"position"`

	// Height models the fixed "stem" delay of the node's access link,
	// added on top of the Euclidean distance for every destination.
	// Invariant: Height ≥ 0 at all times (clamped at HeightMin).
	Height float64 `json:"height"`

	// Error is the node's confidence in its own coordinate: near 0 means
	// high confidence, near 1 (initially exactly ErrorInit) means the
	// coordinate is still guesswork. Kept within [ErrorMin, ErrorMax].
	Error float64 `json:"error"`

	// rng feeds the random-direction fallback for degenerate geometry.
	// Configuration, not state: it is deliberately excluded from
	// serialization and comparison semantics.
	rng vec.Rand
}

// Options configures Coordinate construction.
//
// Rand – the uniform randomness source used only when the local and
// remote positions coincide and a push direction must be invented.
// Defaults to a time-seeded math/rand source; tests inject a fixed seed
// to make every update reproducible.
type Options struct {
	Rand vec.Rand
}

// Option represents a functional option for configuring a Coordinate.
type Option func(*Options)

// WithRand sets the randomness source used for degenerate-direction
// fallback. Passing a nil source panics with ErrNilRand.
func WithRand(r vec.Rand) Option {
	return func(o *Options) {
		if r == nil {
			// Panic to signal invalid configuration early.
			panic(ErrNilRand.Error())
		}
		o.Rand = r
	}
}

// DefaultOptions returns the Options used when no overrides are given.
//
// Defaults:
//   - Rand: a math/rand source seeded from the wall clock.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
