package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"github.com/percona/fwdlist/errors"
)

const metricNamespace = "fwdlist"

// Counters.
var (
	//nolint:gochecknoglobals
	scenarioStepsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "scenario_steps_total",
		Help:      "Total number of scenario steps applied, by operation.",
		Namespace: metricNamespace,
	}, []string{"op"})

	//nolint:gochecknoglobals
	scenarioExpectationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "scenario_expectation_failures_total",
		Help:      "Total number of failed scenario expectations.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	benchNodesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "bench_nodes_total",
		Help:      "Total number of list nodes allocated by bench runs.",
		Namespace: metricNamespace,
	})
)

// Gauges.
var (
	//nolint:gochecknoglobals
	benchDurationSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "bench_duration_seconds",
		Help:      "Duration of the last bench run in seconds.",
		Namespace: metricNamespace,
	})
)

// Init initializes and registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: metricNamespace,
	}))

	reg.MustRegister(
		scenarioStepsTotal,
		scenarioExpectationFailuresTotal,

		benchNodesTotal,
		benchDurationSeconds,
	)
}

// Dump writes every metric family gathered from g in the text exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather")
	}

	for _, mf := range families {
		_, err = expfmt.MetricFamilyToText(w, mf)
		if err != nil {
			return errors.Wrapf(err, "write %s", mf.GetName())
		}
	}

	return nil
}

// AddScenarioStep increments the applied steps counter of op.
func AddScenarioStep(op string) {
	scenarioStepsTotal.WithLabelValues(op).Inc()
}

// AddExpectationFailure increments the failed expectations counter.
func AddExpectationFailure() {
	scenarioExpectationFailuresTotal.Inc()
}

// AddBenchNodes increments the allocated bench nodes counter.
func AddBenchNodes(v int) {
	benchNodesTotal.Add(float64(v))
}

// SetBenchDuration sets the bench duration gauge.
func SetBenchDuration(dur time.Duration) {
	benchDurationSeconds.Set(dur.Seconds())
}
