package reduce_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qembed/reduce"
)

func TestReduceDegree_SharedPair(t *testing.T) {
	terms := [][]int{{0, 1, 2}, {0, 1, 3}}
	got, anc, err := reduce.ReduceDegree(terms)
	require.NoError(t, err)
	assert.Equal(t, []reduce.Ancilla{{Var: 4, A: 0, B: 1}}, anc)
	assert.Equal(t, [][]int{{2, 4}, {3, 4}}, got)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 1, 3}}, terms, "input must not change")
}

func TestReduceDegree_TieBreaksOnSmallerPair(t *testing.T) {
	got, anc, err := reduce.ReduceDegree([][]int{{4, 3, 2}})
	require.NoError(t, err)
	assert.Equal(t, []reduce.Ancilla{{Var: 5, A: 2, B: 3}}, anc)
	assert.Equal(t, [][]int{{4, 5}}, got)
}

func TestReduceDegree_NestedAncillas(t *testing.T) {
	got, anc, err := reduce.ReduceDegree([][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	// (0,1) → 4, then {2,3,4} → (2,3) → 5
	assert.Equal(t, []reduce.Ancilla{{Var: 4, A: 0, B: 1}, {Var: 5, A: 2, B: 3}}, anc)
	assert.Equal(t, [][]int{{4, 5}}, got)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, reduce.Expand(got, anc))
}

func TestReduceDegree_NothingToDo(t *testing.T) {
	got, anc, err := reduce.ReduceDegree(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, anc)

	got, anc, err = reduce.ReduceDegree([][]int{{0}, {}, {3, 1}})
	require.NoError(t, err)
	assert.Empty(t, anc)
	assert.Equal(t, [][]int{{0}, {}, {3, 1}}, got)
}

func TestReduceDegree_Errors(t *testing.T) {
	_, _, err := reduce.ReduceDegree([][]int{{0, 1}, {2, -1, 3}})
	require.ErrorIs(t, err, reduce.ErrInvalidTerm)

	_, _, err = reduce.ReduceDegree([][]int{{0, 1, 0}})
	require.ErrorIs(t, err, reduce.ErrInvalidTerm)
}

// TestReduceDegree_RandomRoundTrip re-expands reduced random terms and
// compares them with the originals.
func TestReduceDegree_RandomRoundTrip(t *testing.T) {
	const maxTermSize = 8
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 8; trial++ {
		numTerms := 5 + rng.Intn(16)
		terms := make([][]int, numTerms)
		maxVar := -1
		for k := range terms {
			size := 1 + rng.Intn(maxTermSize)
			terms[k] = rng.Perm(2*maxTermSize + 1)[:size]
			maxVar = max(maxVar, slices.Max(terms[k]))
		}

		got, anc, err := reduce.ReduceDegree(terms)
		require.NoError(t, err)
		for _, term := range got {
			assert.LessOrEqual(t, len(term), 2)
		}
		for i, a := range anc {
			assert.Equal(t, maxVar+1+i, a.Var, "ancillas are numbered consecutively")
			assert.Less(t, a.A, a.B)
		}

		want := make([][]int, len(terms))
		for k, term := range terms {
			want[k] = slices.Sorted(slices.Values(term))
		}
		assert.Equal(t, want, reduce.Expand(got, anc), "trial %d", trial)
	}
}
