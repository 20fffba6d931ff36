package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qembed/internal/jobfile"
	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/unembed"
)

// report summarizes a job without transforming it.
type report struct {
	Variables     int   `yaml:"variables"`
	Couplings     int   `yaml:"couplings"`
	Chains        int   `yaml:"chains"`
	Qubits        int   `yaml:"qubits"`
	LongestChain  int   `yaml:"longest_chain"`
	Disconnected  []int `yaml:"disconnected_chains,omitempty,flow"`
	HardwareNodes int   `yaml:"hardware_nodes,omitempty"`
	HardwareEdges int   `yaml:"hardware_edges,omitempty"`
	Components    int   `yaml:"hardware_components,omitempty"`
	Solutions     int   `yaml:"solutions,omitempty"`
	BrokenChains  int   `yaml:"broken_chains,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect JOB",
		Short: "Summarize a job: problem size, chains, hardware and chain breaks",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := jobfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			h, j, _, err := doc.Problem()
			if err != nil {
				return err
			}
			r := report{
				Variables: max(len(h), j.MaxIndex()+1),
				Couplings: len(j),
				Chains:    len(doc.Embedding),
				Qubits:    doc.Embedding.NumQubits(),
				Solutions: len(doc.Solutions),
			}
			for _, chain := range doc.Embedding {
				r.LongestChain = max(r.LongestChain, len(chain))
			}

			if doc.Chimera != nil || len(doc.Adjacency) > 0 {
				adj, err := doc.Hardware()
				if err != nil {
					return err
				}
				r.HardwareNodes, r.HardwareEdges = adj.NumNodes(), adj.NumEdges()
				r.Components = len(adj.Components())
				for i, chain := range doc.Embedding {
					if !adj.AreConnected(chain) {
						r.Disconnected = append(r.Disconnected, i)
					}
				}
			}
			if len(doc.Solutions) > 0 {
				if r.BrokenChains, err = unembed.CountBroken(doc.Solutions, doc.Embedding); err != nil {
					return err
				}
			}
			a.log.V(logging.DEBUG).Info("inspected job", "path", args[0])
			return jobfile.WriteFile(a.cfg.Output, r)
		},
	}
}
