package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/JuanSebastianGarcia23/calzado/interfaces/invocation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; API Gateway rejects payloads above 10MB
const maxBodyBytes = 10 << 20

// Invoker runs one raw Lambda event
type Invoker interface {
	Handle(ctx context.Context, event json.RawMessage) (invocation.Response, error)
}

// InvocationHandler replays HTTP requests as Lambda events so the function
// can be exercised locally without API Gateway
type InvocationHandler struct {
	invoker Invoker
	logger  *zap.Logger
}

// NewInvocationHandler creates a new invocation handler
func NewInvocationHandler(invoker Invoker, logger *zap.Logger) *InvocationHandler {
	return &InvocationHandler{
		invoker: invoker,
		logger:  logger,
	}
}

// Calzado handles every method on /calzado and /calzado/{id} by building an
// API Gateway REST style event from the request
func (h *InvocationHandler) Calzado(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	event, err := buildHTTPEvent(r, body)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.invoke(w, r, event)
}

// Invoke handles POST /invoke. The request body is the raw event.
func (h *InvocationHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	h.invoke(w, r, body)
}

func (h *InvocationHandler) invoke(w http.ResponseWriter, r *http.Request, event json.RawMessage) {
	resp, err := h.invoker.Handle(r.Context(), event)
	if err != nil {
		h.logger.Error("Invocation failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}

func (h *InvocationHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// buildHTTPEvent mirrors what API Gateway sends for a proxied request: the
// body is always a string and the id comes from the path or the query
func buildHTTPEvent(r *http.Request, body []byte) (json.RawMessage, error) {
	env := invocation.Envelope{HTTPMethod: r.Method}

	if id := chi.URLParam(r, "id"); id != "" {
		env.PathParameters = map[string]any{"id": id}
	}

	if query := r.URL.Query(); len(query) > 0 {
		env.QueryStringParameters = make(map[string]any, len(query))
		for key := range query {
			env.QueryStringParameters[key] = query.Get(key)
		}
	}

	if len(body) > 0 {
		encoded, err := json.Marshal(string(body))
		if err != nil {
			return nil, err
		}
		env.Body = encoded
	}

	return json.Marshal(env)
}
