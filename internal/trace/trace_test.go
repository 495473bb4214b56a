package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledTracingIsNoop(t *testing.T) {
	t.Setenv("LOG_TRACING_ENABLED", "false")
	require.NoError(t, Init())
	assert.False(t, Enabled())

	ctx := context.Background()
	spanCtx, span := StartSpan(ctx, "noop")
	defer span.End()
	assert.Equal(t, ctx, spanCtx)

	_, _, ok := GetTraceFields(spanCtx)
	assert.False(t, ok)

	RecordError(spanCtx, errors.New("ignored"))
}

func TestEnabledTracingProducesIDs(t *testing.T) {
	t.Setenv("LOG_TRACING_ENABLED", "true")
	require.NoError(t, Init())
	t.Cleanup(func() {
		_ = Shutdown(context.Background())
		enabled = false
	})

	ctx, span := StartSpan(context.Background(), "engine.Step")
	defer span.End()

	traceID, spanID, ok := GetTraceFields(ctx)
	require.True(t, ok)
	assert.Len(t, traceID, 32)
	assert.Len(t, spanID, 16)
}
