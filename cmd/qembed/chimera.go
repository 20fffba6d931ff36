package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qembed/hardware"
	"github.com/katalvlaran/qembed/internal/jobfile"
	"github.com/katalvlaran/qembed/internal/logging"
)

func newChimeraCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chimera M [N [T]]",
		Short: "Print the edge list of an M×N×T Chimera lattice as a job fragment",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			dims := make([]int, 3)
			for i, s := range args {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				dims[i] = v
			}
			adj, err := hardware.Chimera(dims[0], dims[1], dims[2])
			if err != nil {
				return err
			}

			edges := adj.Edges()
			doc := jobfile.Document{Adjacency: make([][]int, len(edges))}
			for k, e := range edges {
				doc.Adjacency[k] = []int{e.I, e.J}
			}
			a.log.V(logging.DEBUG).Info("built chimera", "nodes", adj.NumNodes(), "edges", adj.NumEdges())
			return jobfile.WriteFile(a.cfg.Output, doc)
		},
	}
}
