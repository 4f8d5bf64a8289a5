package observability

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-xray-sdk-go/header"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampledContext(t *testing.T) context.Context {
	t.Helper()
	ctx, root := xray.BeginSegmentWithSampling(context.Background(), "calzado-test",
		httptest.NewRequest("GET", "/calzado", nil),
		&header.Header{SamplingDecision: header.Sampled},
	)
	t.Cleanup(func() { root.Close(nil) })
	return ctx
}

func TestTracer_TraceFunctionAnnotatesSubsegment(t *testing.T) {
	tracer := NewTracer("calzado")
	var sub *xray.Segment

	err := tracer.TraceFunction(sampledContext(t), "get", func(ctx context.Context) error {
		tracer.AddAnnotation(ctx, "calzado_id", "z1")
		sub = xray.GetSegment(ctx)
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "calzado.get", sub.Name)
	assert.Equal(t, "z1", sub.Annotations["calzado_id"])
}

func TestTracer_TraceFunctionReturnsError(t *testing.T) {
	tracer := NewTracer("calzado")
	boom := errors.New("boom")

	err := tracer.TraceFunction(sampledContext(t), "update", func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestTracer_WithoutSegmentRunsFunction(t *testing.T) {
	tracer := NewTracer("calzado")
	called := false

	err := tracer.TraceFunction(context.Background(), "list", func(ctx context.Context) error {
		tracer.AddAnnotation(ctx, "action", "list")
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
