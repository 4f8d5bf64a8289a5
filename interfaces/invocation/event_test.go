package invocation

import (
	"testing"

	apperrors "github.com/JuanSebastianGarcia23/calzado/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Variants(t *testing.T) {
	tests := []struct {
		name  string
		event string
		want  Invocation
	}{
		{
			name:  "REST API method with path id",
			event: `{"httpMethod":"get","pathParameters":{"id":"p1"},"queryStringParameters":{"id":"q1"}}`,
			want:  HTTPInvocation{Method: "GET", ID: "p1"},
		},
		{
			name:  "HTTP API nested method with query id",
			event: `{"requestContext":{"http":{"method":"delete"}},"queryStringParameters":{"id":"q1"}}`,
			want:  HTTPInvocation{Method: "DELETE", ID: "q1"},
		},
		{
			name:  "empty path id falls back to query",
			event: `{"httpMethod":"GET","pathParameters":{"id":""},"queryStringParameters":{"id":"q1"}}`,
			want:  HTTPInvocation{Method: "GET", ID: "q1"},
		},
		{
			name:  "JSON string body",
			event: `{"httpMethod":"POST","body":"{\"nombre\":\"Bota\"}"}`,
			want:  HTTPInvocation{Method: "POST", Body: map[string]any{"nombre": "Bota"}},
		},
		{
			name:  "structured body",
			event: `{"httpMethod":"POST","body":{"talla":42}}`,
			want:  HTTPInvocation{Method: "POST", Body: map[string]any{"talla": float64(42)}},
		},
		{
			name:  "base64 body",
			event: `{"httpMethod":"POST","isBase64Encoded":true,"body":"eyJtYXJjYSI6IkFjbWUifQ=="}`,
			want:  HTTPInvocation{Method: "POST", Body: map[string]any{"marca": "Acme"}},
		},
		{
			name:  "unparsable body is no body",
			event: `{"httpMethod":"POST","body":"not json"}`,
			want:  HTTPInvocation{Method: "POST"},
		},
		{
			name:  "array body is no body",
			event: `{"httpMethod":"POST","body":"[1,2]"}`,
			want:  HTTPInvocation{Method: "POST"},
		},
		{
			name:  "method wins over operation",
			event: `{"httpMethod":"GET","operation":"delete","id":"x"}`,
			want:  HTTPInvocation{Method: "GET"},
		},
		{
			name:  "operation style",
			event: `{"operation":"Update","id":"x","body":{"precio":"10"}}`,
			want:  OperationInvocation{Operation: "update", ID: "x", Body: map[string]any{"precio": "10"}},
		},
		{
			name:  "operation body must be an object",
			event: `{"operation":"create","body":"{\"nombre\":\"Bota\"}"}`,
			want:  OperationInvocation{Operation: "create"},
		},
		{
			name:  "operation non string id is ignored",
			event: `{"operation":"get","id":12}`,
			want:  OperationInvocation{Operation: "get"},
		},
		{
			name:  "numeric operation",
			event: `{"operation":5}`,
			want:  OperationInvocation{Operation: "5"},
		},
		{
			name:  "empty operation",
			event: `{"operation":""}`,
			want:  UnrecognizedInvocation{},
		},
		{
			name:  "neither shape",
			event: `{"foo":"bar"}`,
			want:  UnrecognizedInvocation{},
		},
		{
			name:  "non object query string is ignored",
			event: `{"httpMethod":"GET","queryStringParameters":"oops"}`,
			want:  HTTPInvocation{Method: "GET"},
		},
		{
			name:  "array path parameters fall back to query",
			event: `{"httpMethod":"DELETE","pathParameters":["a"],"queryStringParameters":{"id":"q1"}}`,
			want:  HTTPInvocation{Method: "DELETE", ID: "q1"},
		},
		{
			name:  "non boolean base64 flag is ignored",
			event: `{"httpMethod":"POST","isBase64Encoded":"true","body":"{\"nombre\":\"Bota\"}"}`,
			want:  HTTPInvocation{Method: "POST", Body: map[string]any{"nombre": "Bota"}},
		},
		{
			name:  "non string method falls through to operation",
			event: `{"httpMethod":5,"operation":"list"}`,
			want:  OperationInvocation{Operation: "list"},
		},
		{
			name:  "malformed request context is ignored",
			event: `{"requestContext":{"http":"GET"},"operation":"list"}`,
			want:  OperationInvocation{Operation: "list"},
		},
		{
			name:  "method field name is case sensitive",
			event: `{"HTTPMETHOD":"GET"}`,
			want:  UnrecognizedInvocation{},
		},
		{
			name:  "operation field name is case sensitive",
			event: `{"Operation":"list"}`,
			want:  UnrecognizedInvocation{},
		},
		{
			name:  "null event",
			event: `null`,
			want:  UnrecognizedInvocation{},
		},
		{
			name:  "not an object",
			event: `"hello"`,
			want:  UnrecognizedInvocation{},
		},
		{
			name:  "malformed",
			event: `{`,
			want:  UnrecognizedInvocation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse([]byte(tt.event)))
		})
	}
}

func TestHTTPInvocation_Descriptor(t *testing.T) {
	body := map[string]any{"nombre": "Bota"}

	tests := []struct {
		name       string
		invocation HTTPInvocation
		want       Request
		wantErr    string
	}{
		{"post", HTTPInvocation{Method: "POST", Body: body}, Request{Action: ActionCreate, Payload: body}, ""},
		{"post without body", HTTPInvocation{Method: "POST"}, Request{}, "Body requerido"},
		{"get by id", HTTPInvocation{Method: "GET", ID: "a"}, Request{Action: ActionGet, ID: "a"}, ""},
		{"get list", HTTPInvocation{Method: "GET"}, Request{Action: ActionList}, ""},
		{"delete", HTTPInvocation{Method: "DELETE", ID: "a"}, Request{Action: ActionDelete, ID: "a"}, ""},
		{"delete without id", HTTPInvocation{Method: "DELETE"}, Request{}, "Se requiere id para eliminar"},
		{"put", HTTPInvocation{Method: "PUT", ID: "a", Body: body}, Request{Action: ActionUpdate, ID: "a", Payload: body}, ""},
		{"patch", HTTPInvocation{Method: "PATCH", ID: "a", Body: body}, Request{Action: ActionUpdate, ID: "a", Payload: body}, ""},
		{"put without id", HTTPInvocation{Method: "PUT", Body: body}, Request{}, "id requerido para update"},
		{"put without body", HTTPInvocation{Method: "PUT", ID: "a"}, Request{}, "body con campos a actualizar requerido"},
		{"unsupported", HTTPInvocation{Method: "OPTIONS"}, Request{}, "Método HTTP no soportado: OPTIONS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.invocation.Descriptor()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.wantErr, apperrors.GetAppError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationInvocation_Descriptor(t *testing.T) {
	body := map[string]any{"talla": "41"}

	tests := []struct {
		name       string
		invocation OperationInvocation
		want       Request
		wantErr    string
	}{
		{"create", OperationInvocation{Operation: "create", Body: body}, Request{Action: ActionCreate, Payload: body}, ""},
		{"create without body", OperationInvocation{Operation: "create"}, Request{}, "body requerido"},
		{"get", OperationInvocation{Operation: "get", ID: "a"}, Request{Action: ActionGet, ID: "a"}, ""},
		{"get without id", OperationInvocation{Operation: "get"}, Request{}, "id requerido"},
		{"list", OperationInvocation{Operation: "list"}, Request{Action: ActionList}, ""},
		{"delete without id", OperationInvocation{Operation: "delete"}, Request{}, "id requerido"},
		{"update", OperationInvocation{Operation: "update", ID: "a", Body: body}, Request{Action: ActionUpdate, ID: "a", Payload: body}, ""},
		{"update without id", OperationInvocation{Operation: "update", Body: body}, Request{}, "id requerido para update"},
		{"update without body", OperationInvocation{Operation: "update", ID: "a"}, Request{}, "body con campos a actualizar requerido"},
		{"unknown", OperationInvocation{Operation: "purge"}, Request{}, "Operación inválida. Usa create, get, delete, list, update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.invocation.Descriptor()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperrors.GetAppError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnrecognizedInvocation_Descriptor(t *testing.T) {
	_, err := UnrecognizedInvocation{}.Descriptor()
	require.Error(t, err)
	assert.Equal(t, "No se pudo interpretar el evento recibido", apperrors.GetAppError(err).Message)
}
