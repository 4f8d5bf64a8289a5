package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// PutMetricDataAPI is the subset of the CloudWatch client used for metrics
type PutMetricDataAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics handles invocation metrics. A nil *Metrics or one without a client
// records nothing.
type Metrics struct {
	namespace string
	client    PutMetricDataAPI
	logger    *zap.Logger
}

// NewMetrics creates a new metrics instance
func NewMetrics(namespace string, client PutMetricDataAPI, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordInvocation records count and latency for one handled action
func (m *Metrics) RecordInvocation(ctx context.Context, action string, statusCode int, duration time.Duration) {
	if m == nil || m.client == nil {
		return
	}

	dimensions := []types.Dimension{
		{
			Name:  aws.String("Action"),
			Value: aws.String(action),
		},
		{
			Name:  aws.String("StatusCode"),
			Value: aws.String(strconv.Itoa(statusCode)),
		},
	}
	now := aws.Time(time.Now())

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("InvocationLatency"),
				Dimensions: dimensions,
				Value:      aws.Float64(float64(duration.Milliseconds())),
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  now,
			},
			{
				MetricName: aws.String("InvocationCount"),
				Dimensions: dimensions,
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Timestamp:  now,
			},
		},
	}

	// Metric failures never fail the invocation
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to send metrics",
			zap.Error(err),
			zap.String("action", action),
		)
	}
}
