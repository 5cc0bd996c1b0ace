// Package zk2048 proves 2048 games, one move at a time.
//
// 🚀 What is zk2048?
//
//	A step circuit for the 4×4 2048 sliding-tile game: one synthesis turns a
//	board state plus an intended move into the next board state together with
//	the rank-1 constraints that force the transition to be a legal move —
//	compaction, pairwise merge with doubling, and deterministic spawn of a
//	new 2 or 4. A folding/recursive prover chains the steps into a proof of
//	a whole game trace.
//
// ✨ Why zk2048?
//
//   - Branch-free          — every game "if" is a multiplication by a proven 0/1 wire
//   - Constant-cost        — the constraint count per step never depends on the witness
//   - Deterministic        — append-ordered synthesis, identical on prover and verifier
//   - Small gadget catalog — zero test, equality, swap: two constraints each; selection: one per candidate plus one
//
// Everything is organized under two subpackages:
//
//	r1cs/ — the constraint-system builder, allocated numbers, and the gadget catalog
//	game/ — the six-stage move pipeline and the arity-16 step circuit
//
// Quick ASCII example, one Left move:
//
//	    ·  ·  2  2        4  ·  ·  ·
//	    ·  ·  ·  ·   ⇒    ·  2  ·  ·
//	    ·  ·  ·  ·        ·  ·  ·  ·
//	    ·  ·  ·  ·        ·  ·  ·  ·
//
//	the pair slides and merges; the spawn gadget drops a provably-placed 2.
//
//	go get github.com/katalvlaran/zk2048
package zk2048
