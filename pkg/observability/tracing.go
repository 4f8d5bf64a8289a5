package observability

import (
	"context"
	"fmt"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer provides X-Ray tracing. A nil *Tracer runs functions untraced.
type Tracer struct {
	serviceName string
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string) *Tracer {
	return &Tracer{
		serviceName: serviceName,
	}
}

// TraceFunction runs fn inside a subsegment named after the service and op
func (t *Tracer) TraceFunction(ctx context.Context, name string, fn func(context.Context) error) error {
	if t == nil {
		return fn(ctx)
	}

	ctx, seg := xray.BeginSubsegment(ctx, fmt.Sprintf("%s.%s", t.serviceName, name))
	if seg == nil {
		return fn(ctx)
	}

	err := fn(ctx)
	seg.Close(err)

	return err
}

// AddAnnotation adds an indexed annotation to the current segment
func (t *Tracer) AddAnnotation(ctx context.Context, key string, value string) {
	if t == nil {
		return
	}
	if seg := xray.GetSegment(ctx); seg != nil {
		seg.AddAnnotation(key, value)
	}
}
