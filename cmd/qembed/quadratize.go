package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qembed/internal/jobfile"
	"github.com/katalvlaran/qembed/reduce"
)

func newQuadratizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quadratize TABLE",
		Short: "Turn a truth table f[x] into a QUBO with ancillary variables",
		Long: `TABLE is either a job file with a "table" key (.yaml/.yml) or a text
file of whitespace-separated values where '#' starts a comment. "-" reads
a text table from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			table, err := readTable(args[0])
			if err != nil {
				return err
			}
			q, err := reduce.MakeQuadratic(table, a.cfg.QuadraticOptions(a.log)...)
			if err != nil {
				return err
			}
			a.rec.ObserveQuadratic(q)
			a.log.Info("quadratized table",
				"variables", q.NumVars, "ancillas", len(q.Ancillas), "penalty", q.Penalty)
			return jobfile.WriteFile(a.cfg.Output, jobfile.NewQuadraticResult(q))
		},
	}
}

func readTable(path string) ([]float64, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		doc, err := jobfile.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return doc.Table, nil
	}
	if path == "-" {
		return jobfile.ReadTable(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jobfile.ReadTable(f)
}
