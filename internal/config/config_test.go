package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qembed/embedding"
	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/unembed"
)

var _ = Describe("Load", func() {
	var (
		v  *viper.Viper
		fs *pflag.FlagSet
	)

	BeforeEach(func() {
		v = viper.New()
		fs = pflag.NewFlagSet("qembed", pflag.ContinueOnError)
		RegisterFlags(fs)
	})

	Context("with no flags", func() {
		It("should return the defaults", func() {
			Expect(fs.Parse(nil)).To(Succeed())
			cfg, err := Load(v, fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.HRange).To(Equal(embedding.DefaultRange()))
			Expect(cfg.JRange).To(Equal(embedding.DefaultRange()))
			Expect(cfg.Strategy).To(Equal(unembed.MinimizeEnergy.String()))
			Expect(cfg.Penalty).To(BeZero())
			Expect(cfg.Verbosity()).To(Equal(logging.INFO))
		})
	})

	Context("with flags", func() {
		It("should read every flag", func() {
			Expect(fs.Parse([]string{
				"--clean", "--smear", "--h-min=-2", "--h-max=2", "--strategy=vote",
				"--seed=9", "--penalty=40", "-o", "out.yaml", "--log-level=debug",
			})).To(Succeed())
			cfg, err := Load(v, fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Clean).To(BeTrue())
			Expect(cfg.Smear).To(BeTrue())
			Expect(cfg.HRange).To(Equal(embedding.Range{Min: -2, Max: 2}))
			Expect(cfg.Strategy).To(Equal("vote"))
			Expect(cfg.Seed).To(Equal(int64(9)))
			Expect(cfg.Penalty).To(Equal(40.0))
			Expect(cfg.Output).To(Equal("out.yaml"))
			Expect(cfg.Verbosity()).To(Equal(logging.DEBUG))
			Expect(cfg.EmbedOptions(logging.NewTestLogger())).To(HaveLen(5))
			Expect(cfg.QuadraticOptions(logging.NewTestLogger())).To(HaveLen(2))
		})

		It("should reject a range that does not straddle zero when smearing", func() {
			Expect(fs.Parse([]string{"--smear", "--j-min=0.5"})).To(Succeed())
			_, err := Load(v, fs)
			Expect(err).To(MatchError(ErrInvalidConfig))
		})

		It("should ignore ranges when not smearing", func() {
			Expect(fs.Parse([]string{"--j-min=0.5", "--h-max=-1"})).To(Succeed())
			cfg, err := Load(v, fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.JRange.Min).To(Equal(0.5))
		})

		It("should reject an unknown strategy", func() {
			Expect(fs.Parse([]string{"--strategy=majority"})).To(Succeed())
			_, err := Load(v, fs)
			Expect(err).To(MatchError(ErrInvalidConfig))
		})

		DescribeTable("should reject a penalty that is not a finite non-negative number",
			func(arg string) {
				Expect(fs.Parse([]string{"--penalty=" + arg})).To(Succeed())
				_, err := Load(v, fs)
				Expect(err).To(MatchError(ErrInvalidConfig))
			},
			Entry("negative", "-1"),
			Entry("NaN", "NaN"),
			Entry("infinite", "+Inf"),
		)
	})

	Context("with environment overrides", func() {
		BeforeEach(func() {
			Expect(os.Setenv("QEMBED_LOG_LEVEL", "trace")).To(Succeed())
			Expect(os.Setenv("QEMBED_STRATEGY", "discard")).To(Succeed())
			DeferCleanup(func() {
				_ = os.Unsetenv("QEMBED_LOG_LEVEL")
				_ = os.Unsetenv("QEMBED_STRATEGY")
			})
		})

		It("should prefer the environment over defaults", func() {
			Expect(fs.Parse(nil)).To(Succeed())
			cfg, err := Load(v, fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Verbosity()).To(Equal(logging.TRACE))
			Expect(cfg.Strategy).To(Equal("discard"))
		})

		It("should prefer flags over the environment", func() {
			Expect(fs.Parse([]string{"--strategy=vote"})).To(Succeed())
			cfg, err := Load(v, fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Strategy).To(Equal("vote"))
		})
	})

	Context("with a config file", func() {
		var path string

		BeforeEach(func() {
			dir, err := os.MkdirTemp("", "qembed-config")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, dir)
			path = filepath.Join(dir, "qembed.yaml")
			Expect(os.WriteFile(path, []byte("clean: true\nstrategy: weighted_random\nh-min: -4\n"), 0o600)).To(Succeed())
		})

		It("should read values the flags leave unset", func() {
			Expect(fs.Parse([]string{"--config", path})).To(Succeed())
			cfg, err := Load(v, fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Clean).To(BeTrue())
			Expect(cfg.Strategy).To(Equal("weighted_random"))
			Expect(cfg.HRange.Min).To(Equal(-4.0))
		})

		It("should fail on a missing file", func() {
			Expect(fs.Parse([]string{"--config", path + ".missing"})).To(Succeed())
			_, err := Load(v, fs)
			Expect(err).To(HaveOccurred())
		})
	})
})
