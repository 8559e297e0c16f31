package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/percona/fwdlist/errors"
)

var (
	errEmpty = errors.New("list is empty")
	errRange = errors.New("position out of range")
	errOther = errors.New("unknown list")
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, errors.Wrap(nil, "ctx"))
		assert.NoError(t, errors.Wrapf(nil, "ctx %d", 1))
	})

	t.Run("message and chain", func(t *testing.T) {
		t.Parallel()

		err := errors.Wrapf(errors.Wrap(errEmpty, "pop_front"), "step %d", 3)
		assert.EqualError(t, err, "step 3: pop_front: list is empty")
		assert.ErrorIs(t, err, errEmpty)
		assert.NotErrorIs(t, err, errRange)
	})

	t.Run("join", func(t *testing.T) {
		t.Parallel()

		err := errors.Join(errOther, errors.Wrap(errRange, "pos 4"))
		assert.True(t, errors.Is(err, errOther))
		assert.True(t, errors.Is(err, errRange))
	})
}
