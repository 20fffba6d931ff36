// Package config resolves CLI settings from flags, QEMBED_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qembed/embedding"
	"github.com/katalvlaran/qembed/internal/logging"
	"github.com/katalvlaran/qembed/reduce"
	"github.com/katalvlaran/qembed/unembed"
)

// EnvPrefix is prepended to every environment override, e.g. QEMBED_LOG_LEVEL.
const EnvPrefix = "QEMBED"

// Keys shared by flags, environment and config file.
const (
	KeyConfigFile  = "config"
	KeyLogLevel    = "log-level"
	KeyLogDev      = "log-dev"
	KeyClean       = "clean"
	KeySmear       = "smear"
	KeyHMin        = "h-min"
	KeyHMax        = "h-max"
	KeyJMin        = "j-min"
	KeyJMax        = "j-max"
	KeyStrategy    = "strategy"
	KeySeed        = "seed"
	KeyPenalty     = "penalty"
	KeyOutput      = "output"
	KeyMetricsFile = "metrics-file"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel    string
	LogDev      bool
	Clean       bool
	Smear       bool
	HRange      embedding.Range
	JRange      embedding.Range
	Strategy    string
	Seed        int64
	Penalty     float64 // 0 = derive from the coefficients
	Output      string  // "" or "-" = stdout
	MetricsFile string
}

// RegisterFlags adds the persistent flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	def := embedding.DefaultRange()
	fs.String(KeyConfigFile, "", "YAML config file")
	fs.String(KeyLogLevel, "info", fmt.Sprintf("log level %v", logging.Levels))
	fs.Bool(KeyLogDev, false, "human-readable console logs")
	fs.Bool(KeyClean, false, "prune chain nodes without inter-chain couplings")
	fs.Bool(KeySmear, false, "grow chains of strongly biased variables")
	fs.Float64(KeyHMin, def.Min, "lower bound of physical linear biases")
	fs.Float64(KeyHMax, def.Max, "upper bound of physical linear biases")
	fs.Float64(KeyJMin, def.Min, "lower bound of physical couplings")
	fs.Float64(KeyJMax, def.Max, "upper bound of physical couplings")
	fs.String(KeyStrategy, unembed.MinimizeEnergy.String(), "broken-chain strategy")
	fs.Int64(KeySeed, 0, "random seed for vote ties and weighted_random (0 = default)")
	fs.Float64(KeyPenalty, 0, "ancilla penalty weight (0 = automatic)")
	fs.StringP(KeyOutput, "o", "", "output file (default stdout)")
	fs.String(KeyMetricsFile, "", "write prometheus text metrics to this file")
}

// Load binds fs into v, applies environment overrides and the config file
// named by --config, and returns the validated Config.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{
		LogLevel:    v.GetString(KeyLogLevel),
		LogDev:      v.GetBool(KeyLogDev),
		Clean:       v.GetBool(KeyClean),
		Smear:       v.GetBool(KeySmear),
		HRange:      embedding.Range{Min: v.GetFloat64(KeyHMin), Max: v.GetFloat64(KeyHMax)},
		JRange:      embedding.Range{Min: v.GetFloat64(KeyJMin), Max: v.GetFloat64(KeyJMax)},
		Strategy:    v.GetString(KeyStrategy),
		Seed:        v.GetInt64(KeySeed),
		Penalty:     v.GetFloat64(KeyPenalty),
		Output:      v.GetString(KeyOutput),
		MetricsFile: v.GetString(KeyMetricsFile),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that a library call would otherwise reject late.
// Ranges are only checked when smearing, the one pass that reads them.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Smear {
		if err := c.HRange.Validate(); err != nil {
			return fmt.Errorf("%w: h range: %v", ErrInvalidConfig, err)
		}
		if err := c.JRange.Validate(); err != nil {
			return fmt.Errorf("%w: j range: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := unembed.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Penalty < 0 || math.IsNaN(c.Penalty) || math.IsInf(c.Penalty, 0) {
		return fmt.Errorf("%w: penalty must be finite and >= 0, got %g", ErrInvalidConfig, c.Penalty)
	}
	return nil
}

// Verbosity returns the logr verbosity of LogLevel.
func (c *Config) Verbosity() int {
	v, _ := logging.ParseLevel(c.LogLevel)
	return v
}

// EmbedOptions translates c into embedding options.
func (c *Config) EmbedOptions(log logr.Logger) []embedding.Option {
	opts := []embedding.Option{
		embedding.WithHRange(c.HRange.Min, c.HRange.Max),
		embedding.WithJRange(c.JRange.Min, c.JRange.Max),
		embedding.WithLogger(log),
	}
	if c.Clean {
		opts = append(opts, embedding.WithClean())
	}
	if c.Smear {
		opts = append(opts, embedding.WithSmear())
	}
	return opts
}

// UnembedOptions translates c into unembed options. The problem, when
// available, is added by the caller.
func (c *Config) UnembedOptions(log logr.Logger) []unembed.Option {
	s, _ := unembed.ParseStrategy(c.Strategy)
	return []unembed.Option{
		unembed.WithStrategy(s),
		unembed.WithSeed(c.Seed),
		unembed.WithLogger(log),
	}
}

// QuadraticOptions translates c into reduce options.
func (c *Config) QuadraticOptions(log logr.Logger) []reduce.Option {
	opts := []reduce.Option{reduce.WithLogger(log)}
	if c.Penalty > 0 {
		opts = append(opts, reduce.WithPenaltyWeight(c.Penalty))
	}
	return opts
}
