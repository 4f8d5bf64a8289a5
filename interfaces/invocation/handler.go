package invocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"
	apperrors "github.com/JuanSebastianGarcia23/calzado/pkg/errors"
	"github.com/JuanSebastianGarcia23/calzado/pkg/observability"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

// FootwearOperations is the storage side the handler dispatches to
type FootwearOperations interface {
	Create(ctx context.Context, payload map[string]any) (*footwear.Item, error)
	Get(ctx context.Context, id string) (*footwear.Item, error)
	List(ctx context.Context) ([]*footwear.Item, error)
	Update(ctx context.Context, id string, payload map[string]any) (*footwear.Item, error)
	Delete(ctx context.Context, id string) error
}

// Handler is the Lambda entry point logic: raw event in, envelope out
type Handler struct {
	operations   FootwearOperations
	errorHandler *apperrors.ErrorHandler
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewHandler creates a new Handler. metrics may be nil.
func NewHandler(
	operations FootwearOperations,
	errorHandler *apperrors.ErrorHandler,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		operations:   operations,
		errorHandler: errorHandler,
		metrics:      metrics,
		logger:       logger,
	}
}

// Handle interprets the event and executes it. Failures are reported in the
// returned envelope and the error result is always nil.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (resp Response, _ error) {
	start := time.Now()
	fields := requestFields(ctx)

	h.logger.Info("Evento recibido", append(fields, zap.ByteString("event", event))...)

	invocation := Parse(event)
	fields = append(fields, zap.String("invocation", invocation.Kind()))

	action := "invalid"
	defer func() {
		if rec := recover(); rec != nil {
			resp = h.failure(apperrors.NewInternalError(fmt.Sprintf("panic: %v", rec)), fields)
		}
		h.metrics.RecordInvocation(ctx, action, resp.StatusCode, time.Since(start))
	}()

	req, err := invocation.Descriptor()
	if err != nil {
		return h.failure(err, fields), nil
	}
	action = string(req.Action)
	fields = append(fields, zap.String("action", action))

	resp, err = h.dispatch(ctx, req)
	if err != nil {
		return h.failure(err, fields), nil
	}

	h.logger.Debug("Invocation completed",
		append(fields,
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
		)...,
	)

	return resp, nil
}

// dispatch runs the storage operation for req and shapes the success result
func (h *Handler) dispatch(ctx context.Context, req Request) (Response, error) {
	switch req.Action {
	case ActionCreate:
		item, err := h.operations.Create(ctx, req.Payload)
		if err != nil {
			return Response{}, err
		}
		return buildResponse(http.StatusOK, ItemMessageBody{
			Message: msgRegistered,
			Calzado: footwear.ToCanonical(item),
		}), nil

	case ActionGet:
		item, err := h.operations.Get(ctx, req.ID)
		if err != nil {
			return Response{}, err
		}
		if item == nil {
			return buildResponse(http.StatusNotFound, MessageBody{Message: msgNotFound}), nil
		}
		return buildResponse(http.StatusOK, footwear.ToCanonical(item)), nil

	case ActionList:
		items, err := h.operations.List(ctx)
		if err != nil {
			return Response{}, err
		}
		return buildResponse(http.StatusOK, footwear.ToCanonicalList(items)), nil

	case ActionUpdate:
		item, err := h.operations.Update(ctx, req.ID, req.Payload)
		if err != nil {
			return Response{}, err
		}
		return buildResponse(http.StatusOK, ItemMessageBody{
			Message: msgUpdated,
			Calzado: footwear.ToCanonical(item),
		}), nil

	case ActionDelete:
		if err := h.operations.Delete(ctx, req.ID); err != nil {
			return Response{}, err
		}
		return buildResponse(http.StatusOK, MessageBody{Message: msgDeleted}), nil
	}

	return Response{}, apperrors.NewInternalError(fmt.Sprintf("unknown action %q", req.Action))
}

func (h *Handler) failure(err error, fields []zap.Field) Response {
	status, body := h.errorHandler.Handle(err, fields...)
	return buildResponse(status, body)
}

func requestFields(ctx context.Context) []zap.Field {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return []zap.Field{zap.String("request_id", lc.AwsRequestID)}
	}
	return nil
}
