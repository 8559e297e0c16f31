package config

import "time"

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FWDLIST"

// Defaults.
const (
	DefaultLogLevel     = "info"
	DefaultTimeout      = time.Duration(0)
	DefaultBenchSize    = 100_000
	DefaultBenchWorkers = 4
)

// Flag names. Each one also maps to FWDLIST_<NAME> with dashes as underscores.
const (
	FlagLogLevel     = "log-level"
	FlagLogJSON      = "log-json"
	FlagNoColor      = "no-color"
	FlagMetrics      = "metrics"
	FlagTimeout      = "timeout"
	FlagBenchSize    = "size"
	FlagBenchWorkers = "workers"
)
