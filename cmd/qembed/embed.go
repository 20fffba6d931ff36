package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qembed/embedding"
	"github.com/katalvlaran/qembed/internal/jobfile"
)

func newEmbedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "embed JOB",
		Short: "Map a logical problem onto the hardware through the job's embedding",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := jobfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			adj, err := doc.Hardware()
			if err != nil {
				return err
			}
			h, j, offset, err := doc.Problem()
			if err != nil {
				return err
			}

			res, err := embedding.Embed(h, j, doc.Embedding, adj, a.cfg.EmbedOptions(a.log)...)
			if err != nil {
				return err
			}
			a.rec.ObserveEmbedding(res)
			a.log.Info("embedded problem",
				"variables", len(doc.Embedding), "qubits", res.Embedding.NumQubits(),
				"chainCouplers", len(res.JC), "offset", offset)
			return jobfile.WriteFile(a.cfg.Output, jobfile.NewEmbedResult(res))
		},
	}
}
