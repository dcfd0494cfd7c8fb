package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanel_HappyPath(t *testing.T) {
	p := NewPanel()
	assert.Equal(t, StateIdle, p.State())

	require.NoError(t, p.Begin())
	assert.Equal(t, StateLoading, p.State())

	require.NoError(t, p.Succeed())
	assert.Equal(t, StateSuccess, p.State())
	assert.NoError(t, p.Err())
}

func TestPanel_FailAndRetry(t *testing.T) {
	p := NewPanel()
	cause := errors.New("upstream down")

	require.NoError(t, p.Begin())
	require.NoError(t, p.Fail(cause))

	assert.Equal(t, StateError, p.State())
	assert.Equal(t, cause, p.Err())

	// Повторна спроба з error дозволена і скидає причину
	require.NoError(t, p.Begin())
	assert.Equal(t, StateLoading, p.State())
	assert.NoError(t, p.Err())
}

func TestPanel_ReloadFromSuccess(t *testing.T) {
	p := NewPanel()

	require.NoError(t, p.Begin())
	require.NoError(t, p.Succeed())

	require.NoError(t, p.Begin())
	assert.Equal(t, StateLoading, p.State())
}

func TestPanel_DoubleBeginRejected(t *testing.T) {
	p := NewPanel()

	require.NoError(t, p.Begin())
	assert.ErrorIs(t, p.Begin(), ErrAlreadyLoading)
	assert.Equal(t, StateLoading, p.State())
}

func TestPanel_FinishWithoutBeginRejected(t *testing.T) {
	p := NewPanel()

	assert.ErrorIs(t, p.Succeed(), ErrNotLoading)
	assert.ErrorIs(t, p.Fail(errors.New("x")), ErrNotLoading)
	assert.Equal(t, StateIdle, p.State())
}
