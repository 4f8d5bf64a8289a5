package invocation

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"
)

// Response is the envelope returned to the caller
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// MessageBody is returned for acknowledgements and not-found results
type MessageBody struct {
	Message string `json:"message"`
}

// ItemMessageBody is returned after create and update
type ItemMessageBody struct {
	Message string             `json:"message"`
	Calzado footwear.Canonical `json:"calzado"`
}

// Success messages
const (
	msgRegistered = "Calzado registrado"
	msgUpdated    = "Calzado actualizado"
	msgDeleted    = "Calzado Eliminado"
	msgNotFound   = "No encontrado"
)

// buildResponse encodes body as JSON without HTML escaping
func buildResponse(statusCode int, body any) Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(body); err != nil {
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": err.Error()})
		statusCode = http.StatusInternalServerError
	}

	return Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}
}
