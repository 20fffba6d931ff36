package hardware

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph exports a as a gonum undirected graph with node ids equal to the
// physical indices.
func (a *Adjacency) Graph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, u := range a.Nodes() {
		g.AddNode(simple.Node(int64(u)))
	}
	for _, e := range a.Edges() {
		g.SetEdge(g.NewEdge(simple.Node(int64(e.I)), simple.Node(int64(e.J))))
	}
	return g
}

// Components returns the connected components of a. Each component is
// sorted ascending and components are ordered by their smallest node.
func (a *Adjacency) Components() [][]int {
	parts := topo.ConnectedComponents(a.Graph())
	out := make([][]int, 0, len(parts))
	for _, part := range parts {
		comp := make([]int, len(part))
		for i, n := range part {
			comp[i] = int(n.ID())
		}
		sort.Ints(comp)
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
