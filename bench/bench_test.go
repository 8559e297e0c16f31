package bench //nolint:testpackage

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona/fwdlist/log"
)

func TestRun(t *testing.T) {
	t.Parallel()

	stats, err := Run(context.Background(), Options{Size: 1000, Workers: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Workers)
	// each worker: size pushes, size clone, size reversal, size assign
	assert.Equal(t, int64(3*4*1000), stats.Nodes)
	assert.Contains(t, stats.String(), "12,000 nodes by 3 workers")
}

func TestWorkSmallSizes(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 2} {
		n, err := work(context.Background(), size)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, int64(4*size), n)
	}
}

func TestRunInvalid(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), Options{Size: 1, Workers: 0})
	require.Error(t, err)

	_, err = Run(context.Background(), Options{Size: -1, Workers: 1})
	require.Error(t, err)
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	ctx = log.New(&buf, zerolog.InfoLevel, true, true).WithContext(ctx)

	_, err := Run(ctx, Options{Size: 10, Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "stopped early")
}

func TestStatsString(t *testing.T) {
	t.Parallel()

	s := Stats{Workers: 2, Nodes: 2_000_000, Elapsed: 2 * time.Second}
	assert.Equal(t, "2,000,000 nodes by 2 workers in 2s (1,000,000 nodes/s)", s.String())
}
