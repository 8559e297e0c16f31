package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/percona/fwdlist/errors"
)

// viper keys. Env variables are FWDLIST_ plus the key in upper snake case.
const (
	keyLogLevel     = "log-level"
	keyLogJSON      = "log-json"
	keyNoColor      = "no-color"
	keyMetrics      = "metrics"
	keyTimeout      = "timeout"
	keyBenchSize    = "bench-size"
	keyBenchWorkers = "bench-workers"
)

//nolint:gochecknoglobals
var flagKeys = map[string]string{
	FlagLogLevel:     keyLogLevel,
	FlagLogJSON:      keyLogJSON,
	FlagNoColor:      keyNoColor,
	FlagMetrics:      keyMetrics,
	FlagTimeout:      keyTimeout,
	FlagBenchSize:    keyBenchSize,
	FlagBenchWorkers: keyBenchWorkers,
}

// Config holds the runtime options of the fwdlist tool.
type Config struct {
	LogLevel zerolog.Level
	LogJSON  bool
	NoColor  bool

	// Metrics dumps collected metrics to stderr on exit.
	Metrics bool
	// Timeout bounds a whole command run. Zero means no limit.
	Timeout time.Duration

	BenchSize    int
	BenchWorkers int
}

// AddFlags defines the flags shared by all commands.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(FlagLogLevel, DefaultLogLevel, "Log level")
	flags.Bool(FlagLogJSON, false, "Output log in JSON format")
	flags.Bool(FlagNoColor, false, "Disable log color")
	flags.Bool(FlagMetrics, false, "Dump metrics to stderr on exit")
	flags.Duration(FlagTimeout, DefaultTimeout, "Command timeout (0 for none)")
}

// AddBenchFlags defines the flags of the bench command.
func AddBenchFlags(flags *pflag.FlagSet) {
	flags.Int(FlagBenchSize, DefaultBenchSize, "Number of elements per list")
	flags.Int(FlagBenchWorkers, DefaultBenchWorkers, "Number of concurrent workers")
}

// Load resolves the configuration from flags, FWDLIST_* environment variables
// and defaults, in that order of precedence. Flags missing from the set are
// skipped.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyTimeout, DefaultTimeout)
	v.SetDefault(keyBenchSize, DefaultBenchSize)
	v.SetDefault(keyBenchWorkers, DefaultBenchWorkers)

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}

			err := v.BindPFlag(key, f)
			if err != nil {
				return nil, errors.Wrapf(err, "bind flag %q", name)
			}
		}
	}

	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	cfg := &Config{
		LogLevel:     level,
		LogJSON:      v.GetBool(keyLogJSON),
		NoColor:      v.GetBool(keyNoColor),
		Metrics:      v.GetBool(keyMetrics),
		Timeout:      v.GetDuration(keyTimeout),
		BenchSize:    v.GetInt(keyBenchSize),
		BenchWorkers: v.GetInt(keyBenchWorkers),
	}

	switch {
	case cfg.Timeout < 0:
		return nil, errors.Errorf("negative timeout %s", cfg.Timeout)
	case cfg.BenchSize < 0:
		return nil, errors.Errorf("negative bench size %d", cfg.BenchSize)
	case cfg.BenchWorkers < 1:
		return nil, errors.Errorf("bench workers must be at least 1, got %d", cfg.BenchWorkers)
	}

	return cfg, nil
}
