package embedding

import (
	"github.com/katalvlaran/qembed/hardware"
	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/problem"
)

// Embed maps the logical Ising problem (h, j) onto the physical graph adj
// through the chains of emb.
//
// Preconditions and validation (in order):
//  1. len(h) ≤ len(emb) (problem.ErrInvalidProblem).
//  2. j has no diagonal keys and every index is < len(emb) (problem.ErrInvalidProblem).
//  3. With smearing, HRange and JRange straddle zero (ErrInvalidRange).
//  4. Chains are non-empty, disjoint, use known nodes and are connected
//     (problem.ErrInvalidEmbedding).
//  5. Every nonzero coupling has a physical edge between its chains
//     (problem.ErrInvalidEmbedding).
//
// Missing linear terms are zero and both orderings of a coupling are summed.
// Each chain node receives h_i/|chain|; each coupling is split evenly over
// the edges joining its chains; adjacent nodes of one chain get JC = −1.
// Inputs are never modified.
//
// Complexity: O(Σ|chain|·deg + Σ_J |chain_i|·|chain_k|).
func Embed(h []float64, j problem.Couplings, emb problem.Embedding, adj *hardware.Adjacency, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hh, err := padLinear(h, len(emb))
	if err != nil {
		return nil, err
	}
	jj, err := mergeCouplings(j, len(emb))
	if err != nil {
		return nil, err
	}
	if o.Smear {
		if err = o.HRange.Validate(); err != nil {
			return nil, err
		}
		if err = o.JRange.Validate(); err != nil {
			return nil, err
		}
	}
	if err = verifyChains(emb, adj); err != nil {
		return nil, err
	}
	if err = verifyCouplers(emb, jj, adj); err != nil {
		return nil, err
	}

	chains := emb.Clone()
	if o.Clean {
		chains = clean(hh, jj, chains, adj, o.Logger)
	}
	if o.Smear {
		chains = smear(hh, jj, chains, adj, o.HRange, o.JRange, o.Logger)
	}

	res := assemble(hh, jj, chains, adj)
	o.Logger.V(logging.DEBUG).Info("embedded problem",
		"variables", len(emb), "qubits", chains.NumQubits(),
		"couplers", len(res.J0), "chainCouplers", len(res.JC))
	return res, nil
}

// assemble distributes biases and couplings over the final chains.
func assemble(h []float64, j problem.Couplings, emb problem.Embedding, adj *hardware.Adjacency) *Result {
	res := &Result{
		H0:        make([]float64, adj.Size()),
		J0:        make(problem.Couplings),
		JC:        make(problem.Couplings),
		Embedding: emb,
	}

	for i, chain := range emb {
		share := h[i] / float64(len(chain))
		for a, u := range chain {
			res.H0[u] = share
			for _, v := range chain[a+1:] {
				if adj.HasEdge(u, v) {
					res.JC[problem.NewPair(u, v)] = -1
				}
			}
		}
	}

	for p, v := range j {
		edges := crossEdges(emb[p.I], emb[p.J], adj)
		share := v / float64(len(edges))
		for _, e := range edges {
			res.J0[e] += share
		}
	}
	return res
}
