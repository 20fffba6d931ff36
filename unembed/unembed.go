package unembed

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/problem"
)

// Unembed converts physical solutions back to logical ones through emb.
//
// An intact chain (all nodes equal) yields its common value. Broken chains
// are handled by the selected Strategy. Values outside every chain are
// ignored, so inactive markers other than ±1 may appear there. Discard
// may return fewer rows than it was given; the other strategies return
// exactly one logical row per solution, each of length len(emb).
//
// Validation (in order):
//  1. Strategy is known (ErrInvalidStrategy).
//  2. Chains are non-empty with non-negative nodes (problem.ErrInvalidEmbedding).
//  3. MinimizeEnergy has a problem with len(h) ≤ len(emb) and couplings
//     that are off-diagonal and in range (problem.ErrInvalidProblem).
//  4. Every solution covers every chain node (ErrInvalidSolution).
func Unembed(solutions [][]int8, emb problem.Embedding, opts ...Option) ([][]int8, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Strategy < MinimizeEnergy || o.Strategy > WeightedRandom {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrategy, o.Strategy)
	}

	need := 0
	for i, chain := range emb {
		if len(chain) == 0 {
			return nil, fmt.Errorf("%w: chain %d is empty", problem.ErrInvalidEmbedding, i)
		}
		for _, u := range chain {
			if u < 0 {
				return nil, fmt.Errorf("%w: chain %d has negative node %d", problem.ErrInvalidEmbedding, i, u)
			}
			need = max(need, u+1)
		}
	}

	var nbrs [][]coupling
	if o.Strategy == MinimizeEnergy {
		var err error
		if nbrs, err = couplingLists(o, len(emb)); err != nil {
			return nil, err
		}
	}

	for s, sol := range solutions {
		if len(sol) < need {
			return nil, fmt.Errorf("%w: solution %d has %d values, chains reach node %d",
				ErrInvalidSolution, s, len(sol), need-1)
		}
	}

	r := o.Rand
	if r == nil {
		r = rngFromSeed(0)
	}

	out := make([][]int8, 0, len(solutions))
	for _, sol := range solutions {
		switch o.Strategy {
		case MinimizeEnergy:
			out = append(out, minimizeEnergy(sol, emb, o.H, nbrs))
		case Vote:
			out = append(out, vote(sol, emb, r))
		case Discard:
			if row, ok := discard(sol, emb); ok {
				out = append(out, row)
			}
		case WeightedRandom:
			out = append(out, weightedRandom(sol, emb, r))
		}
	}

	o.Logger.V(logging.DEBUG).Info("unembedded solutions",
		"strategy", o.Strategy.String(), "in", len(solutions), "out", len(out))
	return out, nil
}

// CountBroken returns the number of broken chains summed over solutions.
// An empty chain → problem.ErrInvalidEmbedding; a chain node outside a
// solution → ErrInvalidSolution.
func CountBroken(solutions [][]int8, emb problem.Embedding) (int, error) {
	for i, chain := range emb {
		if len(chain) == 0 {
			return 0, fmt.Errorf("%w: chain %d is empty", problem.ErrInvalidEmbedding, i)
		}
	}
	n := 0
	for s, sol := range solutions {
		for i, chain := range emb {
			for _, u := range chain {
				if u < 0 || u >= len(sol) {
					return 0, fmt.Errorf("%w: solution %d, chain %d, node %d", ErrInvalidSolution, s, i, u)
				}
			}
			if _, ok := chainValue(sol, chain); !ok {
				n++
			}
		}
	}
	return n, nil
}

// coupling is one entry of a variable's coupling row.
type coupling struct {
	k int
	w float64
}

// couplingLists validates the problem carried by o and returns, per
// variable, its merged couplings to other variables.
func couplingLists(o Options, n int) ([][]coupling, error) {
	if !o.hasProblem {
		return nil, fmt.Errorf("%w: %v requires h and j", problem.ErrInvalidProblem, MinimizeEnergy)
	}
	if len(o.H) > n {
		return nil, fmt.Errorf("%w: %d linear terms but only %d chains", problem.ErrInvalidProblem, len(o.H), n)
	}
	for p := range o.J {
		if p.IsDiagonal() || p.I < 0 || p.J < 0 || p.I >= n || p.J >= n {
			return nil, fmt.Errorf("%w: coupling (%d, %d) invalid for %d chains", problem.ErrInvalidProblem, p.I, p.J, n)
		}
	}

	nbrs := make([][]coupling, n)
	j := problem.Normalize(o.J)
	for _, p := range j.Keys() {
		w := j[p]
		nbrs[p.I] = append(nbrs[p.I], coupling{k: p.J, w: w})
		nbrs[p.J] = append(nbrs[p.J], coupling{k: p.I, w: w})
	}
	return nbrs, nil
}

// chainValue returns the common value of chain in sol, or false if broken.
func chainValue(sol []int8, chain []int) (int8, bool) {
	v := sol[chain[0]]
	for _, u := range chain[1:] {
		if sol[u] != v {
			return 0, false
		}
	}
	return v, true
}

// minimizeEnergy copies intact chains and fixes broken ones one at a time.
// The broken chain with the strongest local field is fixed first, opposite
// to its field (field > 0 ⇒ −1, else +1), and the fields of the remaining
// broken chains are updated before the next pick.
func minimizeEnergy(sol []int8, emb problem.Embedding, h []float64, nbrs [][]coupling) []int8 {
	usol := make([]int8, len(emb))
	var broken []int
	for i, chain := range emb {
		if v, ok := chainValue(sol, chain); ok {
			usol[i] = v
		} else {
			broken = append(broken, i) // usol[i] stays 0 until fixed
		}
	}
	if len(broken) == 0 {
		return usol
	}

	pq := make(fieldPQ, 0, len(broken))
	for _, i := range broken {
		var f float64
		if i < len(h) {
			f = h[i]
		}
		for _, c := range nbrs[i] {
			f += float64(usol[c.k]) * c.w
		}
		pq = append(pq, &fieldItem{field: f, v: i})
	}
	heap.Init(&pq)

	row := make(map[int]float64)
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*fieldItem)
		if it.field > 0 {
			usol[it.v] = -1
		} else {
			usol[it.v] = 1
		}
		if len(nbrs[it.v]) == 0 {
			continue
		}

		clear(row)
		for _, c := range nbrs[it.v] {
			row[c.k] = c.w
		}
		s := float64(usol[it.v])
		for _, rest := range pq {
			rest.field += s * row[rest.v]
		}
		heap.Init(&pq)
	}
	return usol
}

// vote takes the majority of each chain; ties are broken by r.
func vote(sol []int8, emb problem.Embedding, r *rand.Rand) []int8 {
	usol := make([]int8, len(emb))
	for i, chain := range emb {
		cp := 0
		for _, u := range chain {
			if sol[u] == 1 {
				cp += 2
			}
		}
		switch {
		case cp > len(chain):
			usol[i] = 1
		case cp < len(chain):
			usol[i] = -1
		default:
			usol[i] = coin(r)
		}
	}
	return usol
}

// discard returns the logical row of sol, or false if any chain is broken.
func discard(sol []int8, emb problem.Embedding) ([]int8, bool) {
	usol := make([]int8, len(emb))
	for i, chain := range emb {
		v, ok := chainValue(sol, chain)
		if !ok {
			return nil, false
		}
		usol[i] = v
	}
	return usol, true
}

// weightedRandom draws +1 with probability (#(+1) in chain)/|chain|.
// One draw is consumed per chain, intact or not.
func weightedRandom(sol []int8, emb problem.Embedding, r *rand.Rand) []int8 {
	usol := make([]int8, len(emb))
	for i, chain := range emb {
		cp := 0
		for _, u := range chain {
			if sol[u] == 1 {
				cp++
			}
		}
		if r.Float64() < float64(cp)/float64(len(chain)) {
			usol[i] = 1
		} else {
			usol[i] = -1
		}
	}
	return usol
}
