package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qembed/internal/jobfile"
	"github.com/katalvlaran/qembed/problem"
	"github.com/katalvlaran/qembed/unembed"
)

func newUnembedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unembed JOB",
		Short: "Convert the job's physical solutions back to logical ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := jobfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			h, j, offset, err := doc.Problem()
			if err != nil {
				return err
			}

			broken, err := unembed.CountBroken(doc.Solutions, doc.Embedding)
			if err != nil {
				return err
			}
			opts := append(a.cfg.UnembedOptions(a.log), unembed.WithProblem(h, j))
			rows, err := unembed.Unembed(doc.Solutions, doc.Embedding, opts...)
			if err != nil {
				return err
			}

			out := jobfile.UnembedResult{
				Strategy:  a.cfg.Strategy,
				Broken:    broken,
				Solutions: rows,
				Energies:  make([]float64, len(rows)),
			}
			for i, row := range rows {
				out.Energies[i] = problem.IsingEnergy(h, j, row) + offset
			}
			a.rec.ObserveUnembed(a.cfg.Strategy, len(doc.Solutions), len(rows), broken)
			a.log.Info("unembedded solutions",
				"strategy", a.cfg.Strategy, "in", len(doc.Solutions), "out", len(rows), "brokenChains", broken)
			return jobfile.WriteFile(a.cfg.Output, out)
		},
	}
}
