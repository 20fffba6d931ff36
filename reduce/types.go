package reduce

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/qembed/problem"
)

// Sentinel errors.
var (
	// ErrInvalidTerm indicates a negative variable or a variable repeated within a term.
	ErrInvalidTerm = errors.New("reduce: invalid term")

	// ErrInvalidTable indicates a malformed function table.
	ErrInvalidTable = errors.New("reduce: invalid function table")

	// ErrInvalidPenalty indicates a penalty weight that is not positive.
	ErrInvalidPenalty = errors.New("reduce: penalty weight must be positive")
)

// coefficientThreshold is the magnitude below which a Möbius coefficient is zero.
const coefficientThreshold = 1e-10

// defaultPenaltyFactor scales the largest quadratic coefficient into the default penalty.
const defaultPenaltyFactor = 10.0

// Ancilla defines Var as the product of A and B.
type Ancilla struct {
	Var int `yaml:"var"`
	A   int `yaml:"a"`
	B   int `yaml:"b"`
}

func (a Ancilla) String() string {
	return fmt.Sprintf("x%d = x%d·x%d", a.Var, a.A, a.B)
}

// Quadratic is the result of MakeQuadratic.
//
// Q        – upper-triangular QUBO over NumVars + len(Ancillas) variables.
// Terms    – reduced terms (≤ 2 variables each), one per nonzero coefficient.
// Ancillas – ancilla definitions in creation order; Var starts at NumVars.
// Penalty  – the penalty weight that was applied.
type Quadratic struct {
	Q        problem.QUBO
	Terms    [][]int
	Ancillas []Ancilla
	NumVars  int
	Penalty  float64
}

// Options configures MakeQuadratic.
type Options struct {
	PenaltyWeight float64
	Logger        logr.Logger

	penaltySet bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
// The penalty weight is derived from the coefficients unless overridden.
func DefaultOptions() Options {
	return Options{Logger: logr.Discard()}
}

// WithPenaltyWeight fixes the ancilla penalty weight. MakeQuadratic rejects w ≤ 0.
func WithPenaltyWeight(w float64) Option {
	return func(o *Options) {
		o.PenaltyWeight = w
		o.penaltySet = true
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
