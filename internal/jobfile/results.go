package jobfile

import (
	"github.com/katalvlaran/qembed/embedding"
	"github.com/katalvlaran/qembed/problem"
	"github.com/katalvlaran/qembed/reduce"
)

// EmbedResult is the YAML form of an embedding.Result.
type EmbedResult struct {
	H0        []float64         `yaml:"h0,flow"`
	J0        problem.Entries   `yaml:"j0"`
	JC        problem.Entries   `yaml:"jc"`
	Embedding problem.Embedding `yaml:"embedding"`
}

// NewEmbedResult converts r into its document form.
func NewEmbedResult(r *embedding.Result) EmbedResult {
	return EmbedResult{
		H0:        r.H0,
		J0:        problem.FromIsing(nil, r.J0),
		JC:        problem.FromIsing(nil, r.JC),
		Embedding: r.Embedding,
	}
}

// UnembedResult holds logical solutions with their energies.
type UnembedResult struct {
	Strategy  string    `yaml:"strategy"`
	Broken    int       `yaml:"broken_chains"`
	Solutions [][]int8  `yaml:"solutions"`
	Energies  []float64 `yaml:"energies,omitempty,flow"`
}

// QuadraticResult is the YAML form of a reduce.Quadratic.
type QuadraticResult struct {
	NumVars  int              `yaml:"num_vars"`
	Penalty  float64          `yaml:"penalty"`
	Q        problem.Entries  `yaml:"q"`
	Terms    [][]int          `yaml:"terms"`
	Ancillas []reduce.Ancilla `yaml:"ancillas,omitempty"`
}

// NewQuadraticResult converts q into its document form.
func NewQuadraticResult(q *reduce.Quadratic) QuadraticResult {
	return QuadraticResult{
		NumVars:  q.NumVars,
		Penalty:  q.Penalty,
		Q:        problem.FromQUBO(q.Q),
		Terms:    q.Terms,
		Ancillas: q.Ancillas,
	}
}
