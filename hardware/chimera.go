package hardware

import (
	"fmt"

	"github.com/katalvlaran/qembed/problem"
)

// DefaultChimeraShore is the cell half-size used when callers pass t == 0.
const DefaultChimeraShore = 4

// ChimeraCoord addresses one node of a Chimera lattice.
type ChimeraCoord struct {
	Row  int // 0 ≤ Row < M
	Col  int // 0 ≤ Col < N
	Side int // 0 (vertical couplers) or 1 (horizontal couplers)
	K    int // 0 ≤ K < T
}

// ChimeraShape is an M×N lattice of K_{T,T} cells.
type ChimeraShape struct {
	M, N, T int
}

// NewChimeraShape returns the shape (m, n, t). n == 0 means n = m and
// t == 0 means DefaultChimeraShore.
func NewChimeraShape(m, n, t int) (ChimeraShape, error) {
	if n == 0 {
		n = m
	}
	if t == 0 {
		t = DefaultChimeraShore
	}
	s := ChimeraShape{M: m, N: n, T: t}
	if m <= 0 || n <= 0 || t <= 0 {
		return s, fmt.Errorf("%w: chimera %d×%d×%d", ErrInvalidShape, m, n, t)
	}
	return s, nil
}

// NumNodes returns M·N·2T.
func (s ChimeraShape) NumNodes() int { return s.M * s.N * 2 * s.T }

// ToLinear converts a coordinate to its linear node index.
func (s ChimeraShape) ToLinear(c ChimeraCoord) (int, error) {
	if c.Row < 0 || c.Row >= s.M || c.Col < 0 || c.Col >= s.N ||
		c.Side < 0 || c.Side > 1 || c.K < 0 || c.K >= s.T {
		return 0, fmt.Errorf("%w: %+v outside %d×%d×%d", ErrInvalidNode, c, s.M, s.N, s.T)
	}
	return s.linear(c), nil
}

// FromLinear converts a linear node index to its coordinate.
func (s ChimeraShape) FromLinear(idx int) (ChimeraCoord, error) {
	if idx < 0 || idx >= s.NumNodes() {
		return ChimeraCoord{}, fmt.Errorf("%w: %d outside %d×%d×%d", ErrInvalidNode, idx, s.M, s.N, s.T)
	}
	cell := 2 * s.T
	row := s.N * cell
	c := ChimeraCoord{Row: idx / row}
	idx %= row
	c.Col = idx / cell
	idx %= cell
	c.Side, c.K = idx/s.T, idx%s.T
	return c, nil
}

func (s ChimeraShape) linear(c ChimeraCoord) int {
	return c.Row*(s.N*2*s.T) + c.Col*(2*s.T) + c.Side*s.T + c.K
}

// Edges lists every coupler of the lattice in canonical form.
func (s ChimeraShape) Edges() []problem.Pair {
	var out []problem.Pair
	for r := 0; r < s.M; r++ {
		for c := 0; c < s.N; c++ {
			// intra-cell K_{t,t}
			for k0 := 0; k0 < s.T; k0++ {
				for k1 := 0; k1 < s.T; k1++ {
					out = append(out, problem.NewPair(
						s.linear(ChimeraCoord{Row: r, Col: c, Side: 0, K: k0}),
						s.linear(ChimeraCoord{Row: r, Col: c, Side: 1, K: k1})))
				}
			}
			for k := 0; k < s.T; k++ {
				if r+1 < s.M {
					out = append(out, problem.NewPair(
						s.linear(ChimeraCoord{Row: r, Col: c, Side: 0, K: k}),
						s.linear(ChimeraCoord{Row: r + 1, Col: c, Side: 0, K: k})))
				}
				if c+1 < s.N {
					out = append(out, problem.NewPair(
						s.linear(ChimeraCoord{Row: r, Col: c, Side: 1, K: k}),
						s.linear(ChimeraCoord{Row: r, Col: c + 1, Side: 1, K: k})))
				}
			}
		}
	}
	return out
}

// Chimera builds the adjacency of an m×n×t Chimera lattice.
// n == 0 means n = m and t == 0 means DefaultChimeraShore.
func Chimera(m, n, t int) (*Adjacency, error) {
	s, err := NewChimeraShape(m, n, t)
	if err != nil {
		return nil, err
	}
	return SymmetricClosure(s.Edges())
}

// ChimeraToLinear converts coordinates to linear indices for shape s.
func ChimeraToLinear(s ChimeraShape, coords []ChimeraCoord) ([]int, error) {
	out := make([]int, len(coords))
	for i, c := range coords {
		idx, err := s.ToLinear(c)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// LinearToChimera converts linear indices to coordinates for shape s.
func LinearToChimera(s ChimeraShape, indices []int) ([]ChimeraCoord, error) {
	out := make([]ChimeraCoord, len(indices))
	for i, idx := range indices {
		c, err := s.FromLinear(idx)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
