package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona/fwdlist/scenario"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append(args, "--log-level=error"))

	err := cmd.Execute()
	return out.String(), err
}

func TestCompareCmd(t *testing.T) { //nolint:paralleltest
	out, err := execute(t, "compare", "1,2", "1, 2, 3")
	require.NoError(t, err)
	assert.Contains(t, out, "[1 2] vs [1 2 3]")
	assert.Contains(t, out, "==: false  !=: true  <: true  <=: true  >: false  >=: false")
	assert.Contains(t, out, "compare: -1")

	out, err = execute(t, "compare", "", "")
	require.NoError(t, err)
	assert.Contains(t, out, "[] vs []")
	assert.Contains(t, out, "compare: 0")

	_, err = execute(t, "compare", "1,x", "2")
	require.Error(t, err)
}

func TestRunCmd(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
name: good
lists: {a: [3]}
steps:
  - {op: push_front, list: a, value: 1}
  - {op: insert_after, list: a, pos: 0, value: 2}
`), 0o600))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
name: bad
lists: {b: []}
steps:
  - {op: pop_front, list: b}
`), 0o600))

	out, err := execute(t, "run", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good: 2/2 steps ok")
	assert.Contains(t, out, "a = [1 2 3]")

	out, err = execute(t, "run", good, bad)
	require.ErrorIs(t, err, scenario.ErrEmptyList)
	assert.Contains(t, out, "good: 2/2 steps ok")
	assert.Contains(t, out, "bad: 0/1 steps failed")
}

func TestRunCmdMetricsOnFailure(t *testing.T) { //nolint:paralleltest
	path := filepath.Join(t.TempDir(), "expect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: expect
lists: {a: [1]}
steps:
  - {op: expect, list: a, values: [2]}
`), 0o600))

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--metrics", "--log-level=error", "run", path})

	err := cmd.Execute()
	require.ErrorIs(t, err, scenario.ErrExpectation)
	assert.Contains(t, out.String(), "expect: 0/1 steps failed")
	assert.Regexp(t, `(?m)^fwdlist_scenario_expectation_failures_total [1-9]`, errOut.String())
}

func TestBenchCmd(t *testing.T) { //nolint:paralleltest
	out, err := execute(t, "bench", "--size=100", "--workers=2")
	require.NoError(t, err)
	assert.Contains(t, out, "800 nodes by 2 workers")
}

func TestParseList(t *testing.T) { //nolint:paralleltest
	l, err := parseList(" 4,5 ,6")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, l.Values())
}
