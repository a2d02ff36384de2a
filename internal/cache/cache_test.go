package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	ctx := context.Background()
	Init(ctx, "", time.Minute)
	require.Nil(t, RDB)

	Set(ctx, KeySchedule, map[string]int{"a": 1})
	var got map[string]int
	assert.False(t, Get(ctx, KeySchedule, &got))
	assert.Nil(t, got)
	Invalidate(ctx, KeySchedule, KeyFlows)
	assert.NoError(t, Close())
}

func TestUnreachableLeavesCacheOff(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	Init(ctx, "127.0.0.1:1", time.Minute)
	assert.Nil(t, RDB)
}
