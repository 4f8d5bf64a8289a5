package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedHandler() (*ErrorHandler, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewErrorHandler(zap.New(core)), logs
}

func TestErrorHandler_ValidationEchoesMessage(t *testing.T) {
	h, logs := newObservedHandler()

	status, body := h.Handle(NewValidationError("Body requerido"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Body requerido", body.Error)
	assert.Equal(t, 1, logs.FilterMessage("Solicitud rechazada").Len())
}

func TestErrorHandler_DatabaseErrorIs500WithErrorString(t *testing.T) {
	h, logs := newObservedHandler()
	err := NewDatabaseError("GetItem", errors.New("timeout"))

	status, body := h.Handle(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "DATABASE: database operation 'GetItem' failed (caused by: timeout)", body.Error)

	entries := logs.FilterMessage("Error inesperado").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "GetItem", entries[0].ContextMap()["operation"])
		assert.Equal(t, "DATABASE", entries[0].ContextMap()["error_type"])
	}
}

func TestErrorHandler_PlainErrorIs500(t *testing.T) {
	h, _ := newObservedHandler()

	status, body := h.Handle(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", body.Error)
}

func TestErrorHandler_AWSErrorFields(t *testing.T) {
	h, logs := newObservedHandler()
	apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "table missing", Fault: smithy.FaultClient}

	status, _ := h.Handle(NewDatabaseError("Scan", fmt.Errorf("scan: %w", apiErr)))

	assert.Equal(t, http.StatusInternalServerError, status)
	entries := logs.FilterMessage("Error inesperado").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "ResourceNotFoundException", entries[0].ContextMap()["aws_error_code"])
		assert.Equal(t, "client", entries[0].ContextMap()["aws_error_fault"])
	}
}

func TestErrorHelpers(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", NewValidationError("x"))

	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsDatabase(wrapped))
	assert.True(t, IsType(NewExternalError("eventbridge", errors.New("down")), ErrorTypeExternal))
	assert.Nil(t, GetAppError(errors.New("plain")))
}
