// Package jobfile reads and writes the YAML documents consumed and produced
// by the qembed CLI, plus the plain-text truth tables used by quadratize.
package jobfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qembed/hardware"
	"github.com/katalvlaran/qembed/problem"
)

// ErrInvalidDocument indicates a document that cannot be turned into inputs.
var ErrInvalidDocument = errors.New("jobfile: invalid document")

// ChimeraSpec names a Chimera lattice instead of listing its edges.
type ChimeraSpec struct {
	M int `yaml:"m"`
	N int `yaml:"n,omitempty"`
	T int `yaml:"t,omitempty"`
}

// Document is a job: a logical problem, an embedding, a hardware graph and
// optionally physical solutions or a truth table. Each command reads the
// fields it needs.
//
//	h:         [0.5, -1]
//	j:         [{i: 0, j: 1, value: -1}]
//	embedding: [[0, 4], [5]]
//	chimera:   {m: 1}
type Document struct {
	H         []float64         `yaml:"h,omitempty"`
	J         problem.Entries   `yaml:"j,omitempty"`
	QUBO      problem.Entries   `yaml:"qubo,omitempty"`
	Embedding problem.Embedding `yaml:"embedding,omitempty"`
	Adjacency [][]int           `yaml:"adjacency,omitempty"`
	Chimera   *ChimeraSpec      `yaml:"chimera,omitempty"`
	Solutions [][]int8          `yaml:"solutions,omitempty"`
	Table     []float64         `yaml:"table,omitempty,flow"`
}

// Decode reads one document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// ReadFile decodes the document at path; "-" reads stdin.
func ReadFile(path string) (*Document, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Problem returns the Ising problem of d. Diagonal J entries are folded
// into h; a QUBO section, when present, is converted and added on top.
// The returned offset is the constant from the QUBO conversion.
// Negative indices → problem.ErrInvalidProblem.
func (d *Document) Problem() ([]float64, problem.Couplings, float64, error) {
	h, j, err := d.J.Split()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("j: %w", err)
	}
	h = addLinear(h, d.H)
	if len(d.QUBO) == 0 {
		return h, j, 0, nil
	}
	qh, qj, offset, err := problem.QuboToIsing(d.QUBO.ToQUBO())
	if err != nil {
		return nil, nil, 0, fmt.Errorf("qubo: %w", err)
	}
	h = addLinear(h, qh)
	for p, v := range qj {
		j[p] += v
	}
	return h, problem.Normalize(j), offset, nil
}

func addLinear(dst, src []float64) []float64 {
	if len(src) > len(dst) {
		dst = append(dst, make([]float64, len(src)-len(dst))...)
	}
	for i, v := range src {
		dst[i] += v
	}
	return dst
}

// Hardware builds the adjacency named by d. Explicit adjacency pairs win
// over a Chimera lattice.
func (d *Document) Hardware() (*hardware.Adjacency, error) {
	switch {
	case len(d.Adjacency) > 0:
		edges := make([]problem.Pair, len(d.Adjacency))
		for k, e := range d.Adjacency {
			if len(e) != 2 {
				return nil, fmt.Errorf("%w: adjacency entry %d has %d nodes, want 2", ErrInvalidDocument, k, len(e))
			}
			edges[k] = problem.Pair{I: e[0], J: e[1]}
		}
		return hardware.SymmetricClosure(edges)
	case d.Chimera != nil:
		return hardware.Chimera(d.Chimera.M, d.Chimera.N, d.Chimera.T)
	}
	return nil, fmt.Errorf("%w: neither adjacency nor chimera given", ErrInvalidDocument)
}

// Write encodes v as YAML to w.
func Write(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFile encodes v to path; "" or "-" writes stdout.
func WriteFile(path string, v any) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, v)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, v); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadTable parses a truth table: whitespace-separated numbers, '#' starts
// a comment that runs to the end of the line.
func ReadTable(r io.Reader) ([]float64, error) {
	var table []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidDocument, line, err)
			}
			table = append(table, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
