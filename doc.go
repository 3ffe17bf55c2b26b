// Package netcoord gives every node in a distributed system a coordinate
// in "latency space", so that any node can predict its round-trip time to
// any other node — including nodes it has never measured — from locally
// observed RTT samples alone.
//
// 🚀 What is netcoord?
//
//	A small, transport-agnostic implementation of the Vivaldi network
//	coordinate algorithm with the height-vector extension:
//		• Fixed-dimension coordinates: dimension checked at compile time
//		• Height term: models access-link delay, softens triangle-inequality violations
//		• Adaptive stepping: confidence-weighted, one RTT sample per update
//		• Local error: each node tracks its own coordinate quality
//
// ✨ Why choose netcoord?
//
//   - No transport opinions – you exchange coordinates however you like
//   - Deterministic when you need it – randomness is injected, seedable in tests
//   - Plain numeric state – coordinates serialize with zero ceremony
//
// Under the hood, everything is organized under three subpackages:
//
//	vec/     — fixed-dimension Euclidean vector math + random unit directions
//	vivaldi/ — the coordinate engine: Update and EstimateRTT
//	latsim/  — latency-matrix simulator for feeding real RTT datasets through the engine
//
// Quick sketch of the update loop running on every node:
//
//	    measure RTT to peer ──► Update(peer coordinate, rtt)
//	                                  │
//	    EstimateRTT(anyone) ◄── position/height/error adjusted
//
// Dive into README.md and the package examples for full walkthroughs,
// including a PlanetLab-style convergence run under cmd/latsim.
//
//	go get github.com/latspace/netcoord/vivaldi
package netcoord
