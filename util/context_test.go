package util_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/percona/fwdlist/util"
)

func TestCtxWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("deadline", func(t *testing.T) {
		t.Parallel()

		err := util.CtxWithTimeout(context.Background(), time.Millisecond, func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return ctx.Err()
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("no timeout", func(t *testing.T) {
		t.Parallel()

		err := util.CtxWithTimeout(nil, 0, func(ctx context.Context) error { //nolint:staticcheck
			_, ok := ctx.Deadline()
			assert.False(t, ok)
			return nil
		})
		assert.NoError(t, err)
	})
}
