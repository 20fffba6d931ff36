package problem_test

import (
	"fmt"

	"github.com/katalvlaran/qembed/problem"
)

// ExampleIsingToQubo converts a two-spin ferromagnet and prints the QUBO
// entries in canonical order.
func ExampleIsingToQubo() {
	h := []float64{1, -1}
	j := problem.Couplings{{I: 1, J: 0}: -1}

	q, offset := problem.IsingToQubo(h, j)
	for _, p := range q.Keys() {
		fmt.Printf("Q%v = %g\n", p, q[p])
	}
	fmt.Println("offset:", offset)
	// Output:
	// Q{0 0} = 4
	// Q{0 1} = -4
	// offset: -1
}
