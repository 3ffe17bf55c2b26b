package vivaldi

import (
	"math"
	"math/rand"
	"time"

	"github.com/latspace/netcoord/vec"
)

// msPerDuration converts a time.Duration into fractional milliseconds.
const msPerDuration = float64(time.Millisecond)

// New creates a fresh Coordinate at the origin with HeightMin height and
// maximal (ErrorInit) local error. The dimension D is fixed by the type
// argument; coordinates of different dimensions cannot interact.
//
// Example:
//
//	local := vivaldi.New[vec.D3]()
//	seeded := vivaldi.New[vec.D2](vivaldi.WithRand(rand.New(rand.NewSource(42))))
func New[D vec.Dim](opts ...Option) *Coordinate[D] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Coordinate[D]{
		Position: vec.Zero[D](),
		Height:   HeightMin,
		Error:    ErrorInit,
		rng:      o.Rand,
	}
}

// EstimateRTT predicts the round-trip time between this node and remote:
// the Euclidean distance between their positions plus both heights.
//
// Pure and symmetric — EstimateRTT(a, b) equals EstimateRTT(b, a), and a
// node's estimate to itself is twice its own height. The result is
// always ≥ 0 while the height invariant holds.
func (c *Coordinate[D]) EstimateRTT(remote *Coordinate[D]) time.Duration {
	return time.Duration(c.estimateMs(remote) * msPerDuration)
}

// estimateMs is EstimateRTT in fractional milliseconds, the unit all
// internal arithmetic uses. The heights are summed before being added to
// the distance so the result is bitwise symmetric in its two operands.
func (c *Coordinate[D]) estimateMs(remote *Coordinate[D]) float64 {
	return vec.Norm(vec.Sub(c.Position, remote.Position)) + (c.Height + remote.Height)
}

// Update incorporates one measured RTT sample to remote, adjusting this
// node's position, height and local error in place. The remote
// coordinate is never modified and no reference to it is retained.
//
// A negative rtt returns ErrInvalidRTT, a nil remote ErrNilCoordinate
// and a remote with non-finite fields or negative height
// ErrInvalidCoordinate; in every error case the local coordinate is left
// bit-for-bit unchanged. A zero rtt is accepted as a degenerate but real
// sample: its relative error is the estimate itself capped at 1, so a
// near-zero estimate treats it as a near-perfect match while anything
// else registers maximal discrepancy.
//
// Degenerate geometry — coincident positions, both errors zero, a height
// forced below its floor — is resolved internally and never surfaces.
func (c *Coordinate[D]) Update(remote *Coordinate[D], rtt time.Duration) error {
	if rtt < 0 {
		return ErrInvalidRTT
	}
	if remote == nil {
		return ErrNilCoordinate
	}
	if !remote.IsValid() {
		return ErrInvalidCoordinate
	}

	rttMs := float64(rtt) / msPerDuration

	// Estimate against the pre-update coordinate.
	estimated := c.estimateMs(remote)

	// Relative error of this sample; intentionally unclamped for rtt > 0.
	var sampleError float64
	if rttMs > 0 {
		sampleError = math.Abs(estimated-rttMs) / rttMs
	} else {
		sampleError = math.Min(estimated, 1)
	}

	// Sample weight balances local and remote confidence: w = ei/(ei+ej).
	weight := 0.5
	if sum := c.Error + remote.Error; sum > 0 {
		weight = math.Min(math.Max(c.Error/sum, 0), 1)
	}

	// Exponentially-weighted moving average of the local error.
	c.Error = clampError(sampleError*Ce*weight + c.Error*(1-Ce*weight))

	// Adaptive step: at most a Cc fraction of the discrepancy per sample.
	delta := Cc * weight
	force := delta * (rttMs - estimated)

	// Positive force pushes away from the remote node, negative pulls
	// toward it; coincident positions fall back to a random direction.
	direction := vec.UnitDirection(remote.Position, c.Position, c.randSource())

	// The height absorbs the full signed force, floored so it can always
	// be scaled again; the position moves along the spring axis.
	c.Height = math.Max(c.Height+force, HeightMin)
	c.Position = vec.Add(c.Position, vec.Scale(direction, force))

	// Finite inputs cannot produce a non-finite coordinate, but a
	// corrupted one must never persist; start over like a fresh node.
	if !c.IsValid() {
		c.Position = vec.Zero[D]()
		c.Height = HeightMin
		c.Error = ErrorInit
	}

	return nil
}

// IsValid reports whether the coordinate holds finite values and a
// non-negative height. Fresh coordinates and every coordinate produced
// by Update are valid; the check matters for snapshots received from
// peers.
func (c *Coordinate[D]) IsValid() bool {
	return vec.IsFinite(c.Position) &&
		isFinite(c.Height) && c.Height >= 0 &&
		isFinite(c.Error) && c.Error >= 0
}

// Clone returns a copy of the coordinate sharing the randomness source.
// Use it to hand out read-only snapshots of the local coordinate.
func (c *Coordinate[D]) Clone() *Coordinate[D] {
	dup := *c

	return &dup
}

// lockedRand backs coordinates that were never built through New, such
// as ones decoded straight from JSON into a zero value. It delegates to
// math/rand's top-level source, which serializes access internally, so
// independent coordinates on different goroutines may share it.
type lockedRand struct{}

func (lockedRand) Float64() float64 { return rand.Float64() }

// randSource returns the coordinate's injected randomness source, or the
// shared locked default for coordinates constructed without one.
func (c *Coordinate[D]) randSource() vec.Rand {
	if c.rng == nil {
		return lockedRand{}
	}

	return c.rng
}

// clampError bounds the local-error estimate into [ErrorMin, ErrorMax].
func clampError(e float64) float64 {
	return math.Min(math.Max(e, ErrorMin), ErrorMax)
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
