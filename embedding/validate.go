package embedding

import (
	"fmt"

	"github.com/katalvlaran/qembed/hardware"
	"github.com/katalvlaran/qembed/problem"
)

// padLinear returns h extended with zeros to n entries.
func padLinear(h []float64, n int) ([]float64, error) {
	if len(h) > n {
		return nil, fmt.Errorf("%w: %d linear terms but only %d chains", problem.ErrInvalidProblem, len(h), n)
	}
	out := make([]float64, n)
	copy(out, h)
	return out, nil
}

// mergeCouplings checks every key of j against n variables and returns the
// normalized map.
func mergeCouplings(j problem.Couplings, n int) (problem.Couplings, error) {
	for p := range j {
		if p.IsDiagonal() {
			return nil, fmt.Errorf("%w: diagonal coupling (%d, %d)", problem.ErrInvalidProblem, p.I, p.J)
		}
		if p.I < 0 || p.J < 0 || p.I >= n || p.J >= n {
			return nil, fmt.Errorf("%w: coupling (%d, %d) outside %d chains", problem.ErrInvalidProblem, p.I, p.J, n)
		}
	}
	return problem.Normalize(j), nil
}

// verifyChains checks that every chain is non-empty, disjoint from the others,
// made of known nodes and connected.
func verifyChains(emb problem.Embedding, adj *hardware.Adjacency) error {
	owner := make(map[int]int, emb.NumQubits())
	for i, chain := range emb {
		if len(chain) == 0 {
			return fmt.Errorf("%w: chain %d is empty", problem.ErrInvalidEmbedding, i)
		}
		for _, u := range chain {
			if k, dup := owner[u]; dup {
				return fmt.Errorf("%w: node %d used by chains %d and %d", problem.ErrInvalidEmbedding, u, k, i)
			}
			owner[u] = i
			if !adj.HasNode(u) {
				return fmt.Errorf("%w: chain %d uses unknown node %d", problem.ErrInvalidEmbedding, i, u)
			}
		}
		if !adj.AreConnected(chain) {
			return fmt.Errorf("%w: chain %d is disconnected", problem.ErrInvalidEmbedding, i)
		}
	}
	return nil
}

// verifyCouplers checks that every coupling has a physical edge between its
// two chains.
func verifyCouplers(emb problem.Embedding, j problem.Couplings, adj *hardware.Adjacency) error {
	for _, p := range j.Keys() {
		if len(crossEdges(emb[p.I], emb[p.J], adj)) == 0 {
			return fmt.Errorf("%w: no edge between chains %d and %d", problem.ErrInvalidEmbedding, p.I, p.J)
		}
	}
	return nil
}

// crossEdges lists the canonical physical edges joining chains a and b,
// in the order of a's nodes and then b's nodes.
func crossEdges(a, b []int, adj *hardware.Adjacency) []problem.Pair {
	var out []problem.Pair
	for _, u := range a {
		for _, v := range b {
			if u != v && adj.HasEdge(u, v) {
				out = append(out, problem.NewPair(u, v))
			}
		}
	}
	return out
}
