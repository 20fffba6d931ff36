// Package embedding maps a logical Ising problem onto a physical hardware
// graph through chains of physical nodes.
//
// What:
//
//	Every logical variable i owns a connected chain of physical nodes.
//	Its bias h_i is split evenly over the chain, every logical coupling J_ik
//	is split evenly over the physical edges joining chain i to chain k, and
//	adjacent nodes of one chain are tied together by a strong ferromagnetic
//	coupling JC = −1 returned separately so callers can rescale it.
//
// Options:
//
//   - WithClean()            drop chain nodes that carry no coupling to another chain.
//   - WithSmear()            lengthen chains of strongly biased variables.
//   - WithHRange(lo, hi)     bias range used by smearing (default [−1, 1]).
//   - WithJRange(lo, hi)     coupling range used by smearing (default [−1, 1]).
//   - WithLogger(l)          debug records for chain edits.
//
// Cleaning:
//
//	Unused variables (zero bias, no coupling) keep only their first node.
//	Nodes that touch another coupled chain are "interchain" and always kept.
//	Remaining nodes are peeled leaf by leaf, so chains shrink without ever
//	disconnecting.
//
// Smearing:
//
//	A chain of length L carrying bias h gives each node h/L. When couplings are
//	rescaled into JRange by a factor s, a node bias s·h/L must stay inside
//	HRange. Smearing grows the chains whose bias would saturate first, using
//	free neighboring nodes, until s·h/L fits or no free neighbor remains.
//
// Errors:
//
//   - problem.ErrInvalidProblem   too many linear terms, diagonal or out-of-range couplings.
//   - problem.ErrInvalidEmbedding empty, overlapping, unknown-node or disconnected chains,
//     or a coupling whose chains share no physical edge.
//   - ErrInvalidRange             a smearing range that does not straddle zero.
//
// Determinism: cleaning peels leaves in FIFO chain order and smearing absorbs
// the smallest free neighbor first, so equal inputs give equal outputs.
package embedding
