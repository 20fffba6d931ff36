package reduce

import (
	"container/heap"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/qembed/problem"
)

// ReduceDegree rewrites terms so that none has more than two variables.
//
// While some term has three or more variables, the pair shared by the most
// such terms (ties: the smaller pair) becomes a new ancilla a = x·y, and
// every term holding the pair drops x and y and appends a. Ancilla indices
// start one past the largest input variable. The input is not modified.
//
// Terms with a negative variable or a repeated variable → ErrInvalidTerm.
func ReduceDegree(terms [][]int) ([][]int, []Ancilla, error) {
	maxVar := -1
	seen := make(map[int]struct{})
	for k, t := range terms {
		clear(seen)
		for _, v := range t {
			if v < 0 {
				return nil, nil, fmt.Errorf("%w: term %d has negative variable %d", ErrInvalidTerm, k, v)
			}
			if _, dup := seen[v]; dup {
				return nil, nil, fmt.Errorf("%w: term %d repeats variable %d", ErrInvalidTerm, k, v)
			}
			seen[v] = struct{}{}
			maxVar = max(maxVar, v)
		}
	}
	out, anc := reduceDegree(terms, maxVar+1)
	return out, anc, nil
}

// Expand substitutes ancilla definitions back into terms until only
// original variables remain. Each result is sorted ascending.
func Expand(terms [][]int, ancillas []Ancilla) [][]int {
	def := make(map[int]Ancilla, len(ancillas))
	for _, a := range ancillas {
		def[a.Var] = a
	}
	out := make([][]int, len(terms))
	for k, t := range terms {
		set := make(map[int]struct{})
		stack := slices.Clone(t)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if a, ok := def[v]; ok {
				stack = append(stack, a.A, a.B)
				continue
			}
			set[v] = struct{}{}
		}
		out[k] = slices.Sorted(maps.Keys(set))
	}
	return out
}

// reduceDegree runs the greedy pair substitution on validated terms,
// numbering ancillas from next.
func reduceDegree(terms [][]int, next int) ([][]int, []Ancilla) {
	out := make([][]int, len(terms))
	for k, t := range terms {
		out[k] = slices.Clone(t)
	}

	// cover[p] holds the indices of terms of degree ≥ 3 that contain p.
	cover := make(map[problem.Pair]map[int]struct{})
	touched := make(map[problem.Pair]struct{})
	addTerm := func(k int) {
		t := out[k]
		if len(t) <= 2 {
			return
		}
		for i := 0; i < len(t); i++ {
			for j := i + 1; j < len(t); j++ {
				p := problem.NewPair(t[i], t[j])
				if cover[p] == nil {
					cover[p] = make(map[int]struct{})
				}
				cover[p][k] = struct{}{}
				touched[p] = struct{}{}
			}
		}
	}
	removeTerm := func(k int) {
		t := out[k]
		if len(t) <= 2 {
			return
		}
		for i := 0; i < len(t); i++ {
			for j := i + 1; j < len(t); j++ {
				p := problem.NewPair(t[i], t[j])
				delete(cover[p], k)
				touched[p] = struct{}{}
			}
		}
	}

	for k := range out {
		addTerm(k)
	}
	pq := make(pairPQ, 0, len(cover))
	for p, ks := range cover {
		pq = append(pq, pairItem{pair: p, count: len(ks)})
	}
	heap.Init(&pq)
	clear(touched)

	var ancillas []Ancilla
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(pairItem)
		if n := len(cover[it.pair]); n == 0 || n != it.count {
			continue // stale snapshot
		}

		a := Ancilla{Var: next, A: it.pair.I, B: it.pair.J}
		next++
		ancillas = append(ancillas, a)

		for _, k := range slices.Sorted(maps.Keys(cover[it.pair])) {
			removeTerm(k)
			out[k] = substitute(out[k], a)
			addTerm(k)
		}

		for p := range touched {
			if n := len(cover[p]); n > 0 {
				heap.Push(&pq, pairItem{pair: p, count: n})
			} else {
				delete(cover, p)
			}
		}
		clear(touched)
	}
	return out, ancillas
}

// substitute returns t without a.A and a.B, with a.Var appended.
func substitute(t []int, a Ancilla) []int {
	r := make([]int, 0, len(t)-1)
	for _, v := range t {
		if v != a.A && v != a.B {
			r = append(r, v)
		}
	}
	return append(r, a.Var)
}
