package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHook_ProcessHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())

	ok := h.ProcessHook(func(context.Context, redis.Cmder) error { return nil })
	miss := h.ProcessHook(func(context.Context, redis.Cmder) error { return redis.Nil })
	broken := h.ProcessHook(func(context.Context, redis.Cmder) error { return errors.New("conn reset") })

	ctx := context.Background()
	assert.NoError(t, ok(ctx, redis.NewStringCmd(ctx, "get", "k")))
	assert.ErrorIs(t, miss(ctx, redis.NewStringCmd(ctx, "get", "k")), redis.Nil)
	assert.Error(t, broken(ctx, redis.NewStringCmd(ctx, "set", "k", "v")))

	assert.Equal(t, float64(2), testutil.ToFloat64(h.commandCounter.WithLabelValues("get", statusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.commandCounter.WithLabelValues("set", statusError)))
}

func TestHook_ProcessPipelineHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())
	ctx := context.Background()

	failed := redis.NewStatusCmd(ctx, "set", "k", "v")
	failed.SetErr(errors.New("oom"))
	pipe := h.ProcessPipelineHook(func(context.Context, []redis.Cmder) error { return nil })

	assert.NoError(t, pipe(ctx, []redis.Cmder{redis.NewStringCmd(ctx, "get", "k"), failed}))
	assert.NoError(t, pipe(ctx, []redis.Cmder{redis.NewStringCmd(ctx, "get", "k")}))

	assert.Equal(t, float64(1), testutil.ToFloat64(h.pipelineCounter.WithLabelValues(statusError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.pipelineCounter.WithLabelValues(statusSuccess)))
}
