package problem

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors shared by every package that validates problems or chains.
var (
	// ErrInvalidProblem indicates malformed linear or quadratic terms.
	ErrInvalidProblem = errors.New("problem: invalid problem")

	// ErrInvalidEmbedding indicates a chain that is empty, overlaps another
	// chain, uses an unknown node, is disconnected, or cannot carry a coupling.
	ErrInvalidEmbedding = errors.New("problem: invalid embedding")
)

// Pair is an unordered pair of variable indices.
// Values built by NewPair always satisfy I <= J.
type Pair struct {
	I, J int
}

// NewPair returns the canonical form of (i, j).
func NewPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{I: i, J: j}
}

// Canonical returns p with I <= J.
func (p Pair) Canonical() Pair { return NewPair(p.I, p.J) }

// IsDiagonal reports whether both ends name the same variable.
func (p Pair) IsDiagonal() bool { return p.I == p.J }

// Less orders pairs lexicographically by (I, J).
func (p Pair) Less(q Pair) bool {
	if p.I != q.I {
		return p.I < q.I
	}
	return p.J < q.J
}

// Couplings holds quadratic terms J[(i,k)].
// Keys may be in either order until the map is passed through Normalize.
type Couplings map[Pair]float64

// Normalize merges both orderings of every key, sums duplicates and drops
// zero weights. The input is not modified.
func Normalize(c Couplings) Couplings {
	out := make(Couplings, len(c))
	for p, v := range c {
		out[p.Canonical()] += v
	}
	for p, v := range out {
		if v == 0 {
			delete(out, p)
		}
	}
	return out
}

// Keys returns the keys of c sorted by (I, J).
func (c Couplings) Keys() []Pair {
	keys := make([]Pair, 0, len(c))
	for p := range c {
		keys = append(keys, p)
	}
	sortPairs(keys)
	return keys
}

// MaxIndex returns the largest variable index used by c, or -1 if c is empty.
func (c Couplings) MaxIndex() int {
	m := -1
	for p := range c {
		m = max(m, p.I, p.J)
	}
	return m
}

// QUBO is a sparse quadratic unconstrained binary optimization matrix.
// Diagonal keys carry linear terms; off-diagonal keys are canonical.
type QUBO map[Pair]float64

// Keys returns the keys of q sorted by (I, J).
func (q QUBO) Keys() []Pair { return Couplings(q).Keys() }

// Normalize returns q with canonical keys, summed duplicates and no zeros.
func (q QUBO) Normalize() QUBO { return QUBO(Normalize(Couplings(q))) }

// Entry is one term of a problem in list form.
// I == J denotes a linear term.
type Entry struct {
	I     int     `yaml:"i"`
	J     int     `yaml:"j"`
	Value float64 `yaml:"value"`
}

// Entries is a problem in list form.
type Entries []Entry

// Canonicalize returns a copy of e with every pair in ascending order,
// duplicates merged, zero terms removed, and entries sorted by (I, J).
func (e Entries) Canonicalize() Entries {
	merged := make(Couplings, len(e))
	for _, t := range e {
		merged[NewPair(t.I, t.J)] += t.Value
	}
	keys := merged.Keys()
	out := make(Entries, 0, len(keys))
	for _, p := range keys {
		if v := merged[p]; v != 0 {
			out = append(out, Entry{I: p.I, J: p.J, Value: v})
		}
	}
	return out
}

// Split separates e into dense linear terms and normalized couplings.
// The linear slice is long enough to index every variable named by e.
// A negative index → ErrInvalidProblem.
func (e Entries) Split() ([]float64, Couplings, error) {
	n := 0
	for k, t := range e {
		if t.I < 0 || t.J < 0 {
			return nil, nil, fmt.Errorf("%w: entry %d has negative index (%d, %d)", ErrInvalidProblem, k, t.I, t.J)
		}
		n = max(n, t.I+1, t.J+1)
	}
	h := make([]float64, n)
	j := make(Couplings)
	for _, t := range e {
		if t.I == t.J {
			h[t.I] += t.Value
			continue
		}
		j[NewPair(t.I, t.J)] += t.Value
	}
	return h, Normalize(j), nil
}

// FromIsing builds the list form of (h, j).
func FromIsing(h []float64, j Couplings) Entries {
	out := make(Entries, 0, len(h)+len(j))
	for i, v := range h {
		out = append(out, Entry{I: i, J: i, Value: v})
	}
	for p, v := range j {
		out = append(out, Entry{I: p.I, J: p.J, Value: v})
	}
	return out.Canonicalize()
}

// FromQUBO builds the list form of q.
func FromQUBO(q QUBO) Entries {
	out := make(Entries, 0, len(q))
	for p, v := range q {
		out = append(out, Entry{I: p.I, J: p.J, Value: v})
	}
	return out.Canonicalize()
}

// ToQUBO builds a QUBO from the list form.
func (e Entries) ToQUBO() QUBO {
	q := make(QUBO, len(e))
	for _, t := range e {
		q[NewPair(t.I, t.J)] += t.Value
	}
	return q.Normalize()
}

// Embedding maps each logical variable to its chain of physical nodes.
type Embedding [][]int

// Clone returns a deep copy of emb.
func (emb Embedding) Clone() Embedding {
	out := make(Embedding, len(emb))
	for i, chain := range emb {
		out[i] = append([]int(nil), chain...)
	}
	return out
}

// NumQubits returns the total number of physical nodes across all chains.
func (emb Embedding) NumQubits() int {
	n := 0
	for _, chain := range emb {
		n += len(chain)
	}
	return n
}

func sortPairs(ps []Pair) {
	sort.Slice(ps, func(a, b int) bool { return ps[a].Less(ps[b]) })
}
