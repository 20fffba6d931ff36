package unembed

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/qembed/problem"
)

// Sentinel errors returned by Unembed and ParseStrategy.
var (
	// ErrInvalidStrategy indicates an unknown broken-chain strategy.
	ErrInvalidStrategy = errors.New("unembed: unknown broken-chain strategy")

	// ErrInvalidSolution indicates a physical solution too short to cover
	// every chain node.
	ErrInvalidSolution = errors.New("unembed: solution does not cover the embedding")
)

// Strategy selects how a broken chain is turned into one logical value.
type Strategy int

const (
	// MinimizeEnergy fixes broken chains greedily, strongest local field
	// first, each to the value that lowers the logical energy.
	MinimizeEnergy Strategy = iota

	// Vote takes the majority value of the chain; ties are random.
	Vote

	// Discard drops every solution that contains a broken chain.
	Discard

	// WeightedRandom picks +1 with probability equal to the fraction of
	// +1 values in the chain.
	WeightedRandom
)

var strategyNames = [...]string{
	MinimizeEnergy: "minimize_energy",
	Vote:           "vote",
	Discard:        "discard",
	WeightedRandom: "weighted_random",
}

// String returns the wire name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps a wire name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
}

// Options configures Unembed.
//
// Strategy – broken-chain repair (default MinimizeEnergy).
// H, J     – the logical problem; required by MinimizeEnergy, ignored otherwise.
// Rand     – randomness for Vote ties and WeightedRandom (default seeded stream).
// Logger   – receives a debug summary per call.
type Options struct {
	Strategy Strategy
	H        []float64
	J        problem.Couplings
	Rand     *rand.Rand
	Logger   logr.Logger

	hasProblem bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Strategy: MinimizeEnergy,
		Logger:   logr.Discard(),
	}
}

// WithStrategy selects the broken-chain strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithProblem supplies the logical problem used by MinimizeEnergy.
// Empty h and j are valid and mean an all-zero problem.
func WithProblem(h []float64, j problem.Couplings) Option {
	return func(o *Options) {
		o.H, o.J = h, j
		o.hasProblem = true
	}
}

// WithRand injects the random source. r must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed uses a deterministic source seeded with seed (0 means the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rngFromSeed(seed) }
}

// WithLogger routes debug output to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
