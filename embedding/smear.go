package embedding

import (
	"math"
	"sort"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/qembed/hardware"
	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/problem"
)

// hScale is the factor by which variable Var's bias may grow before it
// leaves HRange, given its current chain length.
type hScale struct {
	scale float64
	Var   int
}

// smear lengthens chains of strongly biased variables so that, once every
// term is scaled into range, the per-node bias h_i/|chain| is no larger than
// the coupling scale allows.
//
// jScale is the largest factor the couplings tolerate: J_ik is split over
// mult(i,k) physical edges, so min over k of bound(J)·mult/J. Variables are
// visited in increasing hScale order (ties by index) until hScale reaches
// jScale. Each visited chain grows toward jScale·h_i/bound(h_i) nodes by
// absorbing unused neighbors, smallest index first, refilling the candidate
// set from the grown chain when it runs dry.
func smear(h []float64, j problem.Couplings, emb problem.Embedding, adj *hardware.Adjacency, hr, jr Range, log logr.Logger) problem.Embedding {
	out := emb.Clone()
	if len(j) == 0 {
		return out
	}

	jScale := math.Inf(1)
	for p, v := range j {
		mult := float64(len(crossEdges(emb[p.I], emb[p.J], adj)))
		jScale = math.Min(jScale, jr.bound(v)*mult/v)
	}

	scales := make([]hScale, 0, len(h))
	for i, v := range h {
		if v != 0 {
			scales = append(scales, hScale{scale: hr.bound(v) * float64(len(emb[i])) / v, Var: i})
		}
	}
	sort.Slice(scales, func(a, b int) bool {
		if scales[a].scale != scales[b].scale {
			return scales[a].scale < scales[b].scale
		}
		return scales[a].Var < scales[b].Var
	})

	used := make(map[int]bool, emb.NumQubits())
	for _, chain := range emb {
		for _, u := range chain {
			used[u] = true
		}
	}

	for _, s := range scales {
		if s.scale >= jScale {
			break
		}
		i := s.Var
		target := jScale * h[i] / hr.bound(h[i])
		chain := out[i]

		var avail []int
		for float64(len(chain)) < target {
			if len(avail) > 0 {
				u := avail[0]
				avail = avail[1:]
				used[u] = true
				chain = append(chain, u)
				continue
			}
			avail = frontier(chain, used, adj)
			if len(avail) == 0 {
				break
			}
		}
		if len(chain) != len(out[i]) {
			log.V(logging.DEBUG).Info("smeared chain", "var", i, "from", len(out[i]), "to", len(chain), "target", target)
		}
		out[i] = chain
	}
	return out
}

// frontier returns the sorted unused neighbors of chain.
func frontier(chain []int, used map[int]bool, adj *hardware.Adjacency) []int {
	seen := make(map[int]bool)
	var out []int
	for _, u := range chain {
		for _, v := range adj.Neighbors(u) {
			if !used[v] && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)
	return out
}
