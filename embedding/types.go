package embedding

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/qembed/problem"
)

// ErrInvalidRange indicates a scaling range that does not straddle zero.
var ErrInvalidRange = errors.New("embedding: range must include negative and positive values")

// Range is an inclusive interval [Min, Max] with Min < 0 < Max.
type Range struct {
	Min, Max float64
}

// DefaultRange returns [-1, 1].
func DefaultRange() Range { return Range{Min: -1, Max: 1} }

// Validate returns ErrInvalidRange unless r.Min < 0 < r.Max.
func (r Range) Validate() error {
	if r.Min >= 0 || r.Max <= 0 {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// bound returns Min for negative v and Max otherwise.
func (r Range) bound(v float64) float64 {
	if v < 0 {
		return r.Min
	}
	return r.Max
}

// Options configures Embed.
//
// Clean  – prune chain nodes that carry no inter-chain coupling (default false).
// Smear  – grow chains of strongly biased variables (default false).
// HRange – target range of physical linear biases, used by Smear.
// JRange – target range of physical couplings, used by Smear.
// Logger – receives debug records of clean and smear decisions.
type Options struct {
	Clean  bool
	Smear  bool
	HRange Range
	JRange Range
	Logger logr.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		HRange: DefaultRange(),
		JRange: DefaultRange(),
		Logger: logr.Discard(),
	}
}

// WithClean enables chain cleaning.
func WithClean() Option {
	return func(o *Options) { o.Clean = true }
}

// WithSmear enables chain smearing.
func WithSmear() Option {
	return func(o *Options) { o.Smear = true }
}

// WithHRange sets the linear-bias range used by smearing.
// The range is validated by Embed when smearing is enabled.
func WithHRange(lo, hi float64) Option {
	return func(o *Options) { o.HRange = Range{Min: lo, Max: hi} }
}

// WithJRange sets the coupling range used by smearing.
// The range is validated by Embed when smearing is enabled.
func WithJRange(lo, hi float64) Option {
	return func(o *Options) { o.JRange = Range{Min: lo, Max: hi} }
}

// WithLogger routes debug output to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result is the physical problem produced by Embed.
//
// H0        – linear biases indexed by physical node; length is the adjacency size.
// J0        – couplings between nodes of different chains, canonical keys.
// JC        – −1 on every adjacent pair inside a chain, canonical keys.
// Embedding – the chains actually used, after cleaning and smearing.
type Result struct {
	H0        []float64
	J0        problem.Couplings
	JC        problem.Couplings
	Embedding problem.Embedding
}
