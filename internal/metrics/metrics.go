// Package metrics records run statistics of the CLI commands on a private
// prometheus registry and writes them in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/qembed/embedding"
	"github.com/katalvlaran/qembed/reduce"
)

const namespace = "qembed"

// Recorder owns one registry and the collectors registered on it.
// A Recorder is safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	embeds           prometheus.Counter
	physicalQubits   prometheus.Gauge
	physicalCouplers prometheus.Gauge
	chainLength      prometheus.Histogram

	solutionsIn  *prometheus.CounterVec
	solutionsOut *prometheus.CounterVec
	brokenChains *prometheus.CounterVec

	ancillas       prometheus.Gauge
	quadraticTerms prometheus.Gauge
}

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		embeds: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "embeddings_total",
			Help:      "Problems embedded onto hardware",
		}),
		physicalQubits: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "physical_qubits",
			Help:      "Physical nodes used by the last embedding",
		}),
		physicalCouplers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "physical_couplers",
			Help:      "Problem and chain couplers of the last embedding",
		}),
		chainLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chain_length",
			Help:      "Physical nodes per chain",
			Buckets:   []float64{1, 2, 4, 8, 16, 32},
		}),
		solutionsIn: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unembed_solutions_in_total",
			Help:      "Physical solutions passed to unembed, by strategy",
		}, []string{"strategy"}),
		solutionsOut: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unembed_solutions_out_total",
			Help:      "Logical solutions returned by unembed, by strategy",
		}, []string{"strategy"}),
		brokenChains: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broken_chains_total",
			Help:      "Broken chains seen by unembed, by strategy",
		}, []string{"strategy"}),
		ancillas: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ancillas",
			Help:      "Ancillary variables introduced by the last quadratization",
		}),
		quadraticTerms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quadratic_terms",
			Help:      "Nonzero terms of the last quadratization",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveEmbedding records one embedding result.
func (r *Recorder) ObserveEmbedding(res *embedding.Result) {
	r.embeds.Inc()
	r.physicalQubits.Set(float64(res.Embedding.NumQubits()))
	r.physicalCouplers.Set(float64(len(res.J0) + len(res.JC)))
	for _, chain := range res.Embedding {
		r.chainLength.Observe(float64(len(chain)))
	}
}

// ObserveUnembed records one unembed call.
func (r *Recorder) ObserveUnembed(strategy string, in, out, broken int) {
	r.solutionsIn.WithLabelValues(strategy).Add(float64(in))
	r.solutionsOut.WithLabelValues(strategy).Add(float64(out))
	r.brokenChains.WithLabelValues(strategy).Add(float64(broken))
}

// ObserveQuadratic records one quadratization.
func (r *Recorder) ObserveQuadratic(q *reduce.Quadratic) {
	r.ancillas.Set(float64(len(q.Ancillas)))
	r.quadraticTerms.Set(float64(len(q.Terms)))
}

// Gather returns the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.reg.Gather()
}

// WriteText writes every metric family in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the text exposition to path.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = r.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
