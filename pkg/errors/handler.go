package errors

import (
	"errors"
	"net/http"

	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// ErrorBody is the JSON body returned for failed invocations
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorHandler turns errors into a status code and response body
type ErrorHandler struct {
	logger        *zap.Logger
	defaultStatus int
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger:        logger,
		defaultStatus: http.StatusInternalServerError,
	}
}

// Handle classifies err, logs it and returns the status and body to send back.
// Client errors echo their message; everything else echoes the error string.
func (h *ErrorHandler) Handle(err error, fields ...zap.Field) (int, ErrorBody) {
	if err == nil {
		return http.StatusOK, ErrorBody{}
	}

	status := h.defaultStatus
	message := err.Error()

	if appErr := GetAppError(err); appErr != nil {
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}
		if status < http.StatusInternalServerError {
			message = appErr.Message
		}
		fields = append(fields, zap.String("error_type", string(appErr.Type)))
		if appErr.Operation != "" {
			fields = append(fields, zap.String("operation", appErr.Operation))
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields,
			zap.String("aws_error_code", apiErr.ErrorCode()),
			zap.String("aws_error_fault", apiErr.ErrorFault().String()),
		)
	}

	h.log(err, status, fields)

	return status, ErrorBody{Error: message}
}

func (h *ErrorHandler) log(err error, status int, fields []zap.Field) {
	fields = append(fields, zap.Int("status", status), zap.Error(err))

	switch {
	case status >= 500:
		h.logger.Error("Error inesperado", fields...)
	case status >= 400:
		h.logger.Warn("Solicitud rechazada", fields...)
	default:
		h.logger.Info("Solicitud con error", fields...)
	}
}
