package problem

import "fmt"

// IsingToQubo converts an Ising problem to QUBO form under s = 2x − 1.
//
// Diagonal couplings J[(i,i)] multiply s_i² = 1 and only shift the offset.
// The returned offset satisfies E_ising(s) = E_qubo(x) + offset.
//
// Complexity: O(len(h) + len(j)).
func IsingToQubo(h []float64, j Couplings) (QUBO, float64) {
	q := make(QUBO, len(h)+len(j))
	var offset float64

	for i, v := range h {
		q[Pair{I: i, J: i}] += 2 * v
		offset -= v
	}
	for p, v := range j {
		if p.IsDiagonal() {
			offset += v
			continue
		}
		q[p.Canonical()] += 4 * v
		q[Pair{I: p.I, J: p.I}] -= 2 * v
		q[Pair{I: p.J, J: p.J}] -= 2 * v
		offset += v
	}

	return q.Normalize(), offset
}

// QuboToIsing converts a QUBO to Ising form under x = (s + 1)/2.
//
// The linear slice ends at the largest variable with a nonzero bias.
// The returned offset satisfies E_qubo(x) = E_ising(s) + offset.
// A negative index → ErrInvalidProblem.
//
// Complexity: O(len(q)).
func QuboToIsing(q QUBO) ([]float64, Couplings, float64, error) {
	for p := range q {
		if p.I < 0 || p.J < 0 {
			return nil, nil, 0, fmt.Errorf("%w: QUBO entry (%d, %d) has a negative index", ErrInvalidProblem, p.I, p.J)
		}
	}
	n := Couplings(q).MaxIndex() + 1
	h := make([]float64, n)
	j := make(Couplings)
	var offset float64

	for p, v := range q {
		if p.IsDiagonal() {
			h[p.I] += 0.5 * v
			offset += 0.5 * v
			continue
		}
		j[p.Canonical()] += 0.25 * v
		h[p.I] += 0.25 * v
		h[p.J] += 0.25 * v
		offset += 0.25 * v
	}

	// trim trailing zero biases
	for n > 0 && h[n-1] == 0 {
		n--
	}
	return h[:n], Normalize(j), offset, nil
}
