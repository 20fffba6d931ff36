package hardware

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/qembed/problem"
)

// Sentinel errors returned by this package.
var (
	// ErrInvalidNode indicates a negative or out-of-range node index.
	ErrInvalidNode = errors.New("hardware: invalid node index")

	// ErrInvalidShape indicates non-positive Chimera dimensions.
	ErrInvalidShape = errors.New("hardware: invalid topology shape")
)

// Adjacency is the symmetric closure of a physical edge list.
type Adjacency struct {
	present []bool
	nbrs    [][]int
	edges   map[problem.Pair]struct{}
	count   int // number of nodes
}

// SymmetricClosure builds an Adjacency from edges. Each edge is recorded in
// both directions; a pair (u, u) only registers node u.
// Returns ErrInvalidNode if any index is negative.
//
// Complexity: O(E log E) for sorting neighbor lists.
func SymmetricClosure(edges []problem.Pair) (*Adjacency, error) {
	size := 0
	for _, e := range edges {
		if e.I < 0 || e.J < 0 {
			return nil, fmt.Errorf("%w: edge (%d, %d)", ErrInvalidNode, e.I, e.J)
		}
		size = max(size, e.I+1, e.J+1)
	}

	a := &Adjacency{
		present: make([]bool, size),
		nbrs:    make([][]int, size),
		edges:   make(map[problem.Pair]struct{}, len(edges)),
	}
	for _, e := range edges {
		a.addNode(e.I)
		a.addNode(e.J)
		if e.IsDiagonal() {
			continue
		}
		p := e.Canonical()
		if _, dup := a.edges[p]; dup {
			continue
		}
		a.edges[p] = struct{}{}
		a.nbrs[p.I] = append(a.nbrs[p.I], p.J)
		a.nbrs[p.J] = append(a.nbrs[p.J], p.I)
	}
	for _, list := range a.nbrs {
		sort.Ints(list)
	}
	return a, nil
}

func (a *Adjacency) addNode(u int) {
	if !a.present[u] {
		a.present[u] = true
		a.count++
	}
}

// Size returns one past the highest node index, or 0 for an empty graph.
func (a *Adjacency) Size() int {
	if a == nil {
		return 0
	}
	return len(a.present)
}

// NumNodes returns the number of distinct nodes.
func (a *Adjacency) NumNodes() int {
	if a == nil {
		return 0
	}
	return a.count
}

// NumEdges returns the number of undirected edges, self-pairs excluded.
func (a *Adjacency) NumEdges() int {
	if a == nil {
		return 0
	}
	return len(a.edges)
}

// HasNode reports whether u appears in the adjacency.
func (a *Adjacency) HasNode(u int) bool {
	return a != nil && u >= 0 && u < len(a.present) && a.present[u]
}

// HasEdge reports whether u and v are coupled. HasEdge(u, u) equals HasNode(u).
func (a *Adjacency) HasEdge(u, v int) bool {
	if u == v {
		return a.HasNode(u)
	}
	if !a.HasNode(u) || !a.HasNode(v) {
		return false
	}
	_, ok := a.edges[problem.NewPair(u, v)]
	return ok
}

// Neighbors returns the sorted neighbors of u. The slice must not be modified.
func (a *Adjacency) Neighbors(u int) []int {
	if !a.HasNode(u) {
		return nil
	}
	return a.nbrs[u]
}

// Degree returns the number of neighbors of u.
func (a *Adjacency) Degree(u int) int { return len(a.Neighbors(u)) }

// Nodes returns every node in ascending order.
func (a *Adjacency) Nodes() []int {
	out := make([]int, 0, a.NumNodes())
	for u := 0; u < a.Size(); u++ {
		if a.present[u] {
			out = append(out, u)
		}
	}
	return out
}

// Edges returns every undirected edge once, canonical and sorted.
func (a *Adjacency) Edges() []problem.Pair {
	out := make([]problem.Pair, 0, a.NumEdges())
	for u := 0; u < a.Size(); u++ {
		for _, v := range a.nbrs[u] {
			if u < v {
				out = append(out, problem.Pair{I: u, J: v})
			}
		}
	}
	return out
}

// AreConnected reports whether chain induces a connected subgraph.
// An empty chain, or one naming an unknown node, is not connected.
//
// Complexity: O(|chain| + Σ deg(u)) over chain nodes.
func (a *Adjacency) AreConnected(chain []int) bool {
	if len(chain) == 0 {
		return false
	}
	member := make(map[int]bool, len(chain))
	for _, u := range chain {
		if !a.HasNode(u) {
			return false
		}
		member[u] = false // false = not yet reached
	}

	queue := []int{chain[0]}
	member[chain[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range a.nbrs[queue[qi]] {
			if seen, ok := member[v]; ok && !seen {
				member[v] = true
				queue = append(queue, v)
			}
		}
	}
	return len(queue) == len(member)
}
