package embedding

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/qembed/hardware"
	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/problem"
)

// clean shrinks chains without changing which couplings they can carry.
//
// Chains of variables with zero bias and no coupling keep only their first
// node. In every other chain, nodes that touch no other coupled chain
// ("interchain" nodes are kept) are peeled leaf by leaf while the chain stays
// connected. Leaves are processed FIFO in chain order, so the result is
// deterministic. Surviving nodes keep their original order.
func clean(h []float64, j problem.Couplings, emb problem.Embedding, adj *hardware.Adjacency, log logr.Logger) problem.Embedding {
	used := make([]bool, len(emb))
	for i, v := range h {
		used[i] = v != 0
	}
	for p := range j {
		used[p.I], used[p.J] = true, true
	}

	out := make(problem.Embedding, len(emb))
	for i, chain := range emb {
		if used[i] {
			out[i] = append([]int(nil), chain...)
			continue
		}
		out[i] = []int{chain[0]}
		if len(chain) > 1 {
			log.V(logging.DEBUG).Info("truncated unused chain", "var", i, "from", len(chain))
		}
	}

	interchain := make(map[int]bool)
	for p := range j {
		for _, e := range crossEdges(out[p.I], out[p.J], adj) {
			interchain[e.I], interchain[e.J] = true, true
		}
	}

	for i, chain := range out {
		kept := peel(chain, interchain, adj)
		if len(kept) != len(chain) {
			log.V(logging.DEBUG).Info("pruned chain", "var", i, "from", len(chain), "to", len(kept))
		}
		out[i] = kept
	}
	return out
}

// peel removes non-interchain leaves from chain until none remain.
func peel(chain []int, interchain map[int]bool, adj *hardware.Adjacency) []int {
	local := make(map[int]int, len(chain))
	for k, u := range chain {
		local[u] = k
	}

	// deg[k]: neighbors of chain[k] inside the chain that are not pruned.
	// Only tracked for non-interchain nodes.
	deg := make([]int, len(chain))
	pruned := make([]bool, len(chain))
	queue := make([]int, 0, len(chain))
	for k, u := range chain {
		if interchain[u] {
			continue
		}
		for _, v := range adj.Neighbors(u) {
			if _, ok := local[v]; ok {
				deg[k]++
			}
		}
		if deg[k] == 1 {
			queue = append(queue, k)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		leaf := queue[qi]
		if deg[leaf] == 0 {
			continue // last node of an isolated path
		}
		nbr := -1
		for _, v := range adj.Neighbors(chain[leaf]) {
			if m, ok := local[v]; ok && !pruned[m] {
				nbr = m
				break
			}
		}
		pruned[leaf] = true
		if interchain[chain[nbr]] {
			continue
		}
		deg[nbr]--
		if deg[nbr] == 1 {
			queue = append(queue, nbr)
		}
	}

	kept := make([]int, 0, len(chain))
	for k, u := range chain {
		if !pruned[k] {
			kept = append(kept, u)
		}
	}
	return kept
}
