package metrics //nolint:testpackage

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) { //nolint:paralleltest
	before := testutil.ToFloat64(scenarioStepsTotal.WithLabelValues("swap"))
	AddScenarioStep("swap")
	AddScenarioStep("swap")
	assert.InDelta(t, before+2, testutil.ToFloat64(scenarioStepsTotal.WithLabelValues("swap")), 0)

	before = testutil.ToFloat64(benchNodesTotal)
	AddBenchNodes(10)
	assert.InDelta(t, before+10, testutil.ToFloat64(benchNodesTotal), 0)

	SetBenchDuration(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, testutil.ToFloat64(benchDurationSeconds), 1e-9)
}

func TestDump(t *testing.T) { //nolint:paralleltest
	reg := prometheus.NewRegistry()
	Init(reg)
	AddExpectationFailure()

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, reg))
	assert.Contains(t, buf.String(), "fwdlist_scenario_expectation_failures_total")
	assert.Contains(t, buf.String(), "fwdlist_bench_duration_seconds")
	assert.Contains(t, buf.String(), "go_goroutines")
}
