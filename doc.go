// Package qembed maps Ising and QUBO problems onto sparse hardware graphs
// and back.
//
// 🚀 What is qembed?
//
//	A small toolkit for running logical problems on qubit lattices:
//		• Problem algebra: Ising ↔ QUBO conversion with energy offsets
//		• Hardware graphs: symmetric adjacency, Chimera lattices, chain connectivity
//		• Embedding: spread h/J over chains, with optional clean and smear passes
//		• Unembedding: repair broken chains (minimize_energy, vote, discard, weighted_random)
//		• Degree reduction: quadratize higher-order objectives with ancillas
//
// Packages:
//
//	problem/    Pair, Couplings, QUBO, Entries, Embedding; conversions and energies
//	hardware/   Adjacency, Chimera lattices, gonum interop
//	embedding/  Embed
//	unembed/    Unembed, CountBroken
//	reduce/     ReduceDegree, Expand, MakeQuadratic
//	cmd/qembed  CLI over job files (embed, unembed, quadratize, chimera, inspect)
//
// Quick ASCII example, one logical variable on a two-node chain:
//
//	  logical      physical
//	    v0   ──▶   q0 ═══ q4      h0 = h/2 on each node, J(q0,q4) = −1
//
//	go get github.com/katalvlaran/qembed
package qembed
