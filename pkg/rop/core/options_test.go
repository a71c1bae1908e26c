package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4))
	assert.Equal(t, 4, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 4))
}

func TestProcessOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.True(t, IsProcessRemainingEnabled(ctx, true))
	assert.False(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, false), true))

	both := WithProcessOptions(WithWorkerOptions(ctx, 3), true)
	assert.True(t, IsProcessRemainingEnabled(both, false))
	assert.Equal(t, 3, GetWorkerMaxCount(both, 1))
}
