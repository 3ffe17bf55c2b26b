package vec

import "math"

// Add returns the element-wise sum a + b.
func Add[D Dim](a, b D) D {
	var out D
	for i := 0; i < len(out); i++ {
		out[i] = a[i] + b[i]
	}

	return out
}

// Sub returns the element-wise difference a - b.
func Sub[D Dim](a, b D) D {
	var out D
	for i := 0; i < len(out); i++ {
		out[i] = a[i] - b[i]
	}

	return out
}

// Scale returns a with every component multiplied by k.
func Scale[D Dim](a D, k float64) D {
	var out D
	for i := 0; i < len(out); i++ {
		out[i] = a[i] * k
	}

	return out
}

// Norm returns the Euclidean length of a. Always ≥ 0.
func Norm[D Dim](a D) float64 {
	var sum float64
	for i := 0; i < len(a); i++ {
		sum += a[i] * a[i]
	}

	return math.Sqrt(sum)
}

// Zero returns the origin vector of dimension D.
func Zero[D Dim]() D {
	var out D

	return out
}

// IsFinite reports whether every component of a is a finite number
// (neither NaN nor ±Inf).
func IsFinite[D Dim](a D) bool {
	for i := 0; i < len(a); i++ {
		if math.IsNaN(a[i]) || math.IsInf(a[i], 0) {
			return false
		}
	}

	return true
}

// UnitDirection returns a unit vector pointing from `from` toward `to`.
//
// When the two points coincide (separation below Epsilon) the Euclidean
// direction is undefined; UnitDirection then draws a random direction
// from rng instead: each component is sampled uniformly from [-1, 1) and
// the result normalized. If a draw itself has near-zero norm it is
// resampled, and after maxResamples attempts a fixed first-axis fallback
// guarantees a non-degenerate result. This is the only operation in the
// package that consumes randomness, and it does so only on degenerate
// input.
func UnitDirection[D Dim](from, to D, rng Rand) D {
	diff := Sub(to, from)
	if n := Norm(diff); n > Epsilon {
		return Scale(diff, 1/n)
	}

	// Coincident points: draw a random unit direction.
	for attempt := 0; attempt < maxResamples; attempt++ {
		var draw D
		for i := 0; i < len(draw); i++ {
			draw[i] = 2*rng.Float64() - 1
		}
		if n := Norm(draw); n > Epsilon {
			return Scale(draw, 1/n)
		}
	}

	// Probability of reaching this is effectively zero; pick an axis.
	var axis D
	axis[0] = 1

	return axis
}
