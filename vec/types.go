// Package vec defines the dimension constraint and randomness source
// shared by all vector operations.
package vec

// Dim constrains a vector to a fixed-size array of float64 components.
//
// The dimension is part of the type, so operations between vectors of
// different dimensions are rejected by the compiler rather than checked
// at runtime. Dimensions 1 through 8 are supported; the Vivaldi
// literature rarely uses more than 5.
type Dim interface {
	~[1]float64 | ~[2]float64 | ~[3]float64 | ~[4]float64 |
		~[5]float64 | ~[6]float64 | ~[7]float64 | ~[8]float64
}

// Convenience aliases for the common instantiations.
type (
	// D2 is a two-dimensional vector.
	D2 = [2]float64

	// D3 is a three-dimensional vector.
	D3 = [3]float64

	// D4 is a four-dimensional vector.
	D4 = [4]float64
)

// Rand is the uniform randomness source consumed by UnitDirection.
//
// Float64 must return values uniformly distributed in [0, 1).
// *math/rand.Rand satisfies Rand; tests typically pass a seeded one.
type Rand interface {
	Float64() float64
}

// Epsilon is the magnitude below which a vector is treated as zero-length
// for direction purposes. Distances smaller than this are dominated by
// floating-point noise, not geometry.
const Epsilon = 1e-9

// maxResamples bounds the random-direction retries before falling back to
// a fixed axis. A uniform draw with near-zero norm has probability
// effectively zero, so the bound exists only to guarantee termination.
const maxResamples = 8
