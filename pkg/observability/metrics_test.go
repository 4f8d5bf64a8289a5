package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCloudWatch struct {
	mock.Mock
}

func (m *mockCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	args := m.Called(ctx, params)
	return &cloudwatch.PutMetricDataOutput{}, args.Error(0)
}

func TestMetrics_RecordInvocation(t *testing.T) {
	ctx := context.Background()
	client := new(mockCloudWatch)
	metrics := NewMetrics("Calzado/test", client, zap.NewNop())

	client.On("PutMetricData", ctx, mock.MatchedBy(func(in *cloudwatch.PutMetricDataInput) bool {
		if aws.ToString(in.Namespace) != "Calzado/test" || len(in.MetricData) != 2 {
			return false
		}
		dims := in.MetricData[0].Dimensions
		return aws.ToString(dims[0].Value) == "create" && aws.ToString(dims[1].Value) == "200"
	})).Return(nil)

	metrics.RecordInvocation(ctx, "create", 200, 15*time.Millisecond)
	client.AssertExpectations(t)
}

func TestMetrics_ClientErrorIsSwallowed(t *testing.T) {
	ctx := context.Background()
	client := new(mockCloudWatch)
	metrics := NewMetrics("Calzado/test", client, zap.NewNop())

	client.On("PutMetricData", ctx, mock.Anything).Return(errors.New("denied"))

	assert.NotPanics(t, func() {
		metrics.RecordInvocation(ctx, "list", 500, time.Millisecond)
	})
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics
	assert.NotPanics(t, func() {
		metrics.RecordInvocation(context.Background(), "get", 404, time.Millisecond)
	})
}

func TestTracer_NilRunsFunction(t *testing.T) {
	var tracer *Tracer
	called := false

	err := tracer.TraceFunction(context.Background(), "op", func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NotPanics(t, func() { tracer.AddAnnotation(context.Background(), "action", "op") })
}
