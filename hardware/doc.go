// Package hardware models the physical node graph a problem is embedded into.
//
// An Adjacency is built once from a caller-supplied edge list by
// SymmetricClosure and is read-only afterwards: every edge is stored in both
// directions, and every endpoint is registered as a node. Nodes are plain
// non-negative integers and the graph is arena-indexed, so neighbor lists are
// dense slices addressed by node id.
//
// Queries:
//
//   - HasNode(u)        O(1)
//   - HasEdge(u, v)     O(1); HasEdge(u, u) reports whether u is a node
//   - Neighbors(u)      O(1), sorted ascending
//   - AreConnected(c)   O(|c| + Σdeg) flood fill restricted to the chain c
//
// Topologies:
//
// Chimera builds the m×n lattice of K_{t,t} cells used by annealing hardware.
// Node (row, col, side, k) has linear index
//
//	row·(2·n·t) + col·(2·t) + side·t + k
//
// Side 0 nodes couple vertically to the same k in the next row; side 1 nodes
// couple horizontally to the same k in the next column.
//
// Interop:
//
// Graph exports the adjacency as a gonum simple.UndirectedGraph, and
// Components reports connected components through gonum's topo package.
package hardware
