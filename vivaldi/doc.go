// Package vivaldi implements the Vivaldi network-coordinate algorithm
// with the height-vector extension: each node maintains a point in
// latency space whose pairwise distances approximate real round-trip
// times, adjusted one locally observed RTT sample at a time.
//
// 🚀 What is vivaldi?
//
//	A decentralized spring-relaxation model. Every RTT sample to a peer
//	exerts a force on the local coordinate:
//	  • measured > estimated — the spring is compressed, nodes push apart
//	  • measured < estimated — the spring is stretched, nodes pull together
//	The per-node height models fixed access-link delay (DSL, cable,
//	long-haul fiber) that applies to every destination alike, which is
//	what breaks the triangle inequality for pure Euclidean models.
//
// ✨ Key features:
//   - one call per sample: Update(remote, rtt) mutates only the local state
//   - EstimateRTT is pure and symmetric; self-estimate is twice the height
//   - confidence weighting: nodes with poor coordinates move more
//   - invariants enforced internally: height never goes negative, local
//     error stays bounded, degenerate geometry never escalates
//
// ⚙️ Usage:
//
//	import "github.com/latspace/netcoord/vivaldi"
//
//	local := vivaldi.New[vec.D3]()
//
//	// per gossip round, with a peer's coordinate snapshot and a fresh RTT:
//	if err := local.Update(remote, rtt); err != nil {
//	    // malformed sample; discard and continue
//	}
//
//	// predict the RTT to any node whose coordinate you hold:
//	est := local.EstimateRTT(other)
//
// The engine owns no transport and no clock: coordinate exchange, RTT
// measurement and retries all belong to the caller. A Coordinate is
// single-writer by contract; wrap it in a mutex if several goroutines
// share one.
//
// Complexity: Update and EstimateRTT are O(N) in the coordinate
// dimension and never block.
//
// References: Dabek, Cox, Kaashoek, Morris — "Vivaldi: A Decentralized
// Network Coordinate System" (SIGCOMM 2004), §5 "Height vectors".
//
// See examples in example_test.go for a full convergence walkthrough.
package vivaldi
