// Package invocation interprets raw Lambda events and turns them into
// footwear operations and response envelopes.
package invocation

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope documents the fields read from either invocation shape. It is
// also used to build HTTP-style events for the local server.
type Envelope struct {
	// HTTP-style (API Gateway REST and HTTP APIs)
	HTTPMethod            string          `json:"httpMethod,omitempty"`
	RequestContext        *RequestContext `json:"requestContext,omitempty"`
	PathParameters        map[string]any  `json:"pathParameters,omitempty"`
	QueryStringParameters map[string]any  `json:"queryStringParameters,omitempty"`
	IsBase64Encoded       bool            `json:"isBase64Encoded,omitempty"`

	// Operation-style
	Operation any `json:"operation,omitempty"`
	ID        any `json:"id,omitempty"`

	// Shared. A JSON-encoded string or an object.
	Body json.RawMessage `json:"body,omitempty"`
}

// RequestContext carries the HTTP API (payload v2) method
type RequestContext struct {
	HTTP *struct {
		Method string `json:"method"`
	} `json:"http"`
}

// Invocation is one of HTTPInvocation, OperationInvocation or
// UnrecognizedInvocation
type Invocation interface {
	// Descriptor resolves the invocation into an operation request or a
	// validation error
	Descriptor() (Request, error)
	// Kind names the variant for logging
	Kind() string
}

// HTTPInvocation is an API Gateway style event
type HTTPInvocation struct {
	Method string
	ID     string
	Body   map[string]any
}

// Kind implements Invocation
func (HTTPInvocation) Kind() string { return "http" }

// OperationInvocation is a direct programmatic invocation
type OperationInvocation struct {
	Operation string
	ID        string
	Body      map[string]any
}

// Kind implements Invocation
func (OperationInvocation) Kind() string { return "operation" }

// UnrecognizedInvocation is any event carrying neither a method nor an
// operation
type UnrecognizedInvocation struct{}

// Kind implements Invocation
func (UnrecognizedInvocation) Kind() string { return "unrecognized" }

// Parse classifies a raw event. HTTP-style wins when a method is present,
// then operation-style; anything else, including undecodable input, is
// unrecognized. Field names are matched exactly and each field is decoded on
// its own, so a field of the wrong type counts as absent.
func Parse(raw []byte) Invocation {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return UnrecognizedInvocation{}
	}

	if method := httpMethod(fields); method != "" {
		var base64Encoded bool
		decodeField(fields, "isBase64Encoded", &base64Encoded)

		return HTTPInvocation{
			Method: strings.ToUpper(method),
			ID:     firstID(objectBody(fields["pathParameters"]), objectBody(fields["queryStringParameters"])),
			Body:   parseHTTPBody(fields["body"], base64Encoded),
		}
	}

	var op any
	decodeField(fields, "operation", &op)
	if operation := operationName(op); operation != "" {
		var id string
		decodeField(fields, "id", &id)
		return OperationInvocation{
			Operation: strings.ToLower(operation),
			ID:        id,
			Body:      objectBody(fields["body"]),
		}
	}

	return UnrecognizedInvocation{}
}

// httpMethod reads httpMethod, falling back to requestContext.http.method
func httpMethod(fields map[string]json.RawMessage) string {
	var method string
	if decodeField(fields, "httpMethod", &method) && method != "" {
		return method
	}

	var requestContext, httpContext map[string]json.RawMessage
	if !decodeField(fields, "requestContext", &requestContext) ||
		!decodeField(requestContext, "http", &httpContext) ||
		!decodeField(httpContext, "method", &method) {
		return ""
	}
	return method
}

// decodeField decodes fields[name] into dst and reports whether it succeeded.
// A missing field, a JSON null or a type mismatch leaves dst untouched.
func decodeField(fields map[string]json.RawMessage, name string, dst any) bool {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// firstID returns the id path parameter, falling back to the query string
func firstID(sources ...map[string]any) string {
	for _, params := range sources {
		if id, ok := params["id"].(string); ok && id != "" {
			return id
		}
	}
	return ""
}

// operationName returns the operation as a string. Absent, empty, false and
// zero values count as no operation.
func operationName(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
	case float64:
		if t == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}

// parseHTTPBody accepts an object or a JSON-encoded string holding one.
// Anything unparsable is treated as no body.
func parseHTTPBody(raw json.RawMessage, base64Encoded bool) map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return objectBody(raw)
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil || encoded == "" {
		return nil
	}

	if base64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil
		}
		encoded = string(decoded)
	}

	return objectBody(json.RawMessage(encoded))
}

// objectBody decodes raw only when it is a JSON object
func objectBody(raw json.RawMessage) map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}
