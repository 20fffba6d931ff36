package reduce

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/problem"
)

// MakeQuadratic returns a QUBO whose minimum over the ancillas equals f
// at every assignment of the original variables.
//
// f has length 2ⁿ; f[x] is the value at the assignment whose bit i is
// variable i. f[0] must be 0 (the QUBO carries no constant).
//
// Validation (in order):
//  1. A penalty set by WithPenaltyWeight is positive and finite (ErrInvalidPenalty).
//  2. len(f) is a power of two, every value is finite, f[0] == 0 (ErrInvalidTable).
//
// Ancillas are numbered from n. The default penalty weight is ten times the
// largest off-diagonal magnitude before penalties are added.
func MakeQuadratic(f []float64, opts ...Option) (*Quadratic, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.penaltySet && (!(o.PenaltyWeight > 0) || math.IsInf(o.PenaltyWeight, 1)) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidPenalty, o.PenaltyWeight)
	}

	size := len(f)
	if size == 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: length %d is not a power of two", ErrInvalidTable, size)
	}
	for x, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: f[%d] = %g", ErrInvalidTable, x, v)
		}
	}
	if f[0] != 0 {
		return nil, fmt.Errorf("%w: f[0] = %g, want 0", ErrInvalidTable, f[0])
	}
	n := bits.TrailingZeros(uint(size))

	c := mobius(f, n)
	var terms [][]int
	var coef []float64
	for x := 1; x < size; x++ {
		if math.Abs(c[x]) > coefficientThreshold {
			terms = append(terms, bitsOf(x, n))
			coef = append(coef, c[x])
		}
	}

	reduced, ancillas := reduceDegree(terms, n)

	q := make(problem.QUBO)
	for k, t := range reduced {
		switch len(t) {
		case 1:
			q[problem.NewPair(t[0], t[0])] += coef[k]
		case 2:
			q[problem.NewPair(t[0], t[1])] += coef[k]
		}
	}

	w := o.PenaltyWeight
	if !o.penaltySet {
		for p, v := range q {
			if !p.IsDiagonal() {
				w = max(w, math.Abs(v))
			}
		}
		w *= defaultPenaltyFactor
	}
	for _, a := range ancillas {
		q[problem.NewPair(a.Var, a.Var)] += 3 * w
		q[problem.NewPair(a.Var, a.A)] -= 2 * w
		q[problem.NewPair(a.Var, a.B)] -= 2 * w
		q[problem.NewPair(a.A, a.B)] += w
	}

	o.Logger.V(logging.DEBUG).Info("made quadratic",
		"vars", n, "terms", len(terms), "ancillas", len(ancillas), "penalty", w)

	return &Quadratic{
		Q:        q.Normalize(),
		Terms:    reduced,
		Ancillas: ancillas,
		NumVars:  n,
		Penalty:  w,
	}, nil
}

// mobius returns the multilinear coefficients of f: c[S] = Σ_{T⊆S} (−1)^{|S|−|T|} f[T].
func mobius(f []float64, n int) []float64 {
	c := make([]float64, len(f))
	copy(c, f)
	for b := 0; b < n; b++ {
		bit := 1 << b
		for x := range c {
			if x&bit != 0 {
				c[x] -= c[x^bit]
			}
		}
	}
	return c
}

// bitsOf lists the set bits of x below n, ascending.
func bitsOf(x, n int) []int {
	vars := make([]int, 0, bits.OnesCount(uint(x)))
	for i := 0; i < n; i++ {
		if x&(1<<i) != 0 {
			vars = append(vars, i)
		}
	}
	return vars
}
