package jobfile

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qembed/embedding"
	"github.com/katalvlaran/qembed/problem"
	"github.com/katalvlaran/qembed/reduce"
)

const job = `
h: [0.5, 0]
j:
  - {i: 1, j: 0, value: -1}
  - {i: 2, j: 2, value: 0.25}
embedding: [[0, 4], [5], [1]]
chimera: {m: 1}
solutions:
  - [1, 1, -1, -1, 1, -1, 1, 1]
`

var _ = Describe("Decode", func() {
	It("should read every section", func() {
		doc, err := Decode(strings.NewReader(job))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Embedding).To(Equal(problem.Embedding{{0, 4}, {5}, {1}}))
		Expect(doc.Chimera).To(Equal(&ChimeraSpec{M: 1}))
		Expect(doc.Solutions).To(HaveLen(1))
		Expect(doc.Solutions[0]).To(HaveLen(8))
	})

	It("should accept an empty document", func() {
		doc, err := Decode(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Embedding).To(BeEmpty())
	})

	It("should reject unknown keys", func() {
		_, err := Decode(strings.NewReader("hh: [1]\n"))
		Expect(err).To(MatchError(ErrInvalidDocument))
	})

	It("should reject malformed values", func() {
		_, err := Decode(strings.NewReader("h: [a, b]\n"))
		Expect(err).To(MatchError(ErrInvalidDocument))
	})
})

var _ = Describe("Document", func() {
	Describe("Problem", func() {
		It("should fold diagonal entries into h", func() {
			doc, err := Decode(strings.NewReader(job))
			Expect(err).NotTo(HaveOccurred())
			h, j, offset, err := doc.Problem()
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(Equal([]float64{0.5, 0, 0.25}))
			Expect(j).To(Equal(problem.Couplings{{I: 0, J: 1}: -1}))
			Expect(offset).To(BeZero())
		})

		It("should convert a QUBO section", func() {
			doc := &Document{QUBO: problem.Entries{{I: 0, J: 0, Value: 2}, {I: 0, J: 1, Value: 4}}}
			h, j, offset, err := doc.Problem()
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(Equal([]float64{2, 1}))
			Expect(j).To(Equal(problem.Couplings{{I: 0, J: 1}: 1}))
			Expect(offset).To(Equal(2.0))
		})

		It("should reject negative indices", func() {
			doc, err := Decode(strings.NewReader("j: [{i: -1, j: -1, value: 1}]\n"))
			Expect(err).NotTo(HaveOccurred())
			_, _, _, err = doc.Problem()
			Expect(err).To(MatchError(problem.ErrInvalidProblem))

			doc = &Document{QUBO: problem.Entries{{I: -2, J: 0, Value: 1}}}
			_, _, _, err = doc.Problem()
			Expect(err).To(MatchError(problem.ErrInvalidProblem))
		})
	})

	Describe("Hardware", func() {
		It("should build a Chimera cell", func() {
			adj, err := (&Document{Chimera: &ChimeraSpec{M: 1}}).Hardware()
			Expect(err).NotTo(HaveOccurred())
			Expect(adj.NumNodes()).To(Equal(8))
			Expect(adj.NumEdges()).To(Equal(16))
		})

		It("should prefer explicit adjacency", func() {
			doc := &Document{Adjacency: [][]int{{0, 1}, {1, 2}}, Chimera: &ChimeraSpec{M: 1}}
			adj, err := doc.Hardware()
			Expect(err).NotTo(HaveOccurred())
			Expect(adj.NumNodes()).To(Equal(3))
			Expect(adj.HasEdge(2, 1)).To(BeTrue())
		})

		It("should reject adjacency entries that are not pairs", func() {
			_, err := (&Document{Adjacency: [][]int{{0, 1, 2}}}).Hardware()
			Expect(err).To(MatchError(ErrInvalidDocument))
		})

		It("should require a graph", func() {
			_, err := (&Document{}).Hardware()
			Expect(err).To(MatchError(ErrInvalidDocument))
		})
	})
})

var _ = Describe("ReadTable", func() {
	It("should skip comments and blank lines", func() {
		table, err := ReadTable(strings.NewReader("# f(x0, x1)\n0 1\n\n2 -3.5 # last\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(table).To(Equal([]float64{0, 1, 2, -3.5}))
	})

	It("should report the failing line", func() {
		_, err := ReadTable(strings.NewReader("0 1\n2 x\n"))
		Expect(err).To(MatchError(ErrInvalidDocument))
		Expect(err.Error()).To(ContainSubstring("line 2"))
	})
})

var _ = Describe("Write", func() {
	It("should encode an embedding result", func() {
		r := &embedding.Result{
			H0:        []float64{0.5, 0.5},
			J0:        problem.Couplings{},
			JC:        problem.Couplings{{I: 0, J: 1}: -1},
			Embedding: problem.Embedding{{0, 1}},
		}
		var buf bytes.Buffer
		Expect(Write(&buf, NewEmbedResult(r))).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("h0: [0.5, 0.5]"))
		Expect(buf.String()).To(ContainSubstring("value: -1"))

		var back EmbedResult
		Expect(yaml.Unmarshal(buf.Bytes(), &back)).To(Succeed())
		Expect(back.JC).To(Equal(problem.Entries{{I: 0, J: 1, Value: -1}}))
	})

	It("should encode ancilla definitions", func() {
		q, err := reduce.MakeQuadratic([]float64{0, 0, 0, 0, 0, 0, 0, 1})
		Expect(err).NotTo(HaveOccurred())
		var buf bytes.Buffer
		Expect(Write(&buf, NewQuadraticResult(q))).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("num_vars: 3"))
		Expect(buf.String()).To(ContainSubstring("var: 3"))
	})
})
