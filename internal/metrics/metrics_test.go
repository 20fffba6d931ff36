package metrics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qembed/embedding"
	"github.com/katalvlaran/qembed/internal/metrics"
	"github.com/katalvlaran/qembed/problem"
	"github.com/katalvlaran/qembed/reduce"
)

func TestRecorder_ObserveEmbedding(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveEmbedding(&embedding.Result{
		H0:        []float64{0, 0, 0},
		J0:        problem.Couplings{{I: 1, J: 2}: 1},
		JC:        problem.Couplings{{I: 0, J: 1}: -1},
		Embedding: problem.Embedding{{0, 1}, {2}},
	})

	want := `
# HELP qembed_chain_length Physical nodes per chain
# TYPE qembed_chain_length histogram
qembed_chain_length_bucket{le="1"} 1
qembed_chain_length_bucket{le="2"} 2
qembed_chain_length_bucket{le="4"} 2
qembed_chain_length_bucket{le="8"} 2
qembed_chain_length_bucket{le="16"} 2
qembed_chain_length_bucket{le="32"} 2
qembed_chain_length_bucket{le="+Inf"} 2
qembed_chain_length_sum 3
qembed_chain_length_count 2
# HELP qembed_physical_qubits Physical nodes used by the last embedding
# TYPE qembed_physical_qubits gauge
qembed_physical_qubits 3
# HELP qembed_physical_couplers Problem and chain couplers of the last embedding
# TYPE qembed_physical_couplers gauge
qembed_physical_couplers 2
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(want),
		"qembed_chain_length", "qembed_physical_qubits", "qembed_physical_couplers"))
}

func TestRecorder_ObserveUnembed(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveUnembed("discard", 10, 7, 4)
	r.ObserveUnembed("discard", 5, 5, 0)
	r.ObserveUnembed("vote", 3, 3, 1)

	want := `
# HELP qembed_broken_chains_total Broken chains seen by unembed, by strategy
# TYPE qembed_broken_chains_total counter
qembed_broken_chains_total{strategy="discard"} 4
qembed_broken_chains_total{strategy="vote"} 1
# HELP qembed_unembed_solutions_out_total Logical solutions returned by unembed, by strategy
# TYPE qembed_unembed_solutions_out_total counter
qembed_unembed_solutions_out_total{strategy="discard"} 12
qembed_unembed_solutions_out_total{strategy="vote"} 3
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(want),
		"qembed_broken_chains_total", "qembed_unembed_solutions_out_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(r.Registry(), "qembed_unembed_solutions_in_total"))

	mfs, err := r.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestRecorder_ObserveQuadratic(t *testing.T) {
	q, err := reduce.MakeQuadratic([]float64{0, 0, 0, 0, 0, 0, 0, 1})
	require.NoError(t, err)

	r := metrics.NewRecorder()
	r.ObserveQuadratic(q)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Contains(t, buf.String(), "qembed_ancillas 1")
	assert.Contains(t, buf.String(), "qembed_quadratic_terms 1")
}
