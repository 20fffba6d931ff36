package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qembed/internal/config"
	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/internal/metrics"
)

// app carries what every subcommand needs once flags are resolved.
type app struct {
	cfg  *config.Config
	log  logr.Logger
	sync func()
	rec  *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard(), sync: func() {}}
	root := &cobra.Command{
		Use:           "qembed",
		Short:         "Embed, unembed and quadratize Ising/QUBO problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}
			log, sync, err := logging.New(cfg.Verbosity(), cfg.LogDev)
			if err != nil {
				return err
			}
			a.cfg, a.log, a.sync = cfg, log.WithName(cmd.Name()), sync
			a.rec = metrics.NewRecorder()
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			defer a.sync()
			if a.cfg.MetricsFile == "" {
				return nil
			}
			a.log.V(logging.DEBUG).Info("writing metrics", "path", a.cfg.MetricsFile)
			return a.rec.WriteFile(a.cfg.MetricsFile)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newEmbedCmd(a),
		newUnembedCmd(a),
		newQuadratizeCmd(a),
		newChimeraCmd(a),
		newInspectCmd(a),
	)
	return root
}
