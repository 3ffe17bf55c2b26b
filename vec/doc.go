// Package vec provides fixed-dimension Euclidean vector math for network
// coordinates, with one specialized geometric operation: a unit direction
// that survives degenerate (coincident-point) geometry.
//
// 🚀 What is vec?
//
//	The smallest vector toolkit the Vivaldi coordinate engine needs:
//	  • Element-wise Add / Sub / Scale
//	  • Euclidean Norm
//	  • UnitDirection with a random fallback when the two points coincide
//	  • Finiteness checking for validity guards
//
// ✨ Key properties:
//   - dimension is part of the type: a [2]float64 point and a [3]float64
//     point cannot meet in any operation — mismatches fail to compile
//   - every operation is pure and total; only UnitDirection consumes
//     randomness, and only on degenerate input
//   - randomness is an injected Rand interface, so tests seed it
//
// ⚙️ Usage:
//
//	import "github.com/latspace/netcoord/vec"
//
//	a := vec.D3{1, 2, 3}
//	b := vec.D3{4, 5, 6}
//
//	sum := vec.Add(a, b)          // {5, 7, 9}
//	dist := vec.Norm(vec.Sub(a, b))
//	dir := vec.UnitDirection(a, b, rng) // unit vector a → b
//
// Complexity: every operation is O(N) in the dimension and allocates
// nothing beyond its array result.
//
// See examples in example_test.go for detailed walkthroughs.
package vec
