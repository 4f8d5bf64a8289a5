package footwear

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize extracts the known fields from a raw payload and coerces them.
// Name and brand become strings. Price and size become numbers when they
// convert to finite numbers and are kept as supplied otherwise. A key that is
// present counts even when its value is null. Unknown keys and the id are
// dropped.
func Normalize(payload map[string]any) Attributes {
	attrs := make(Attributes)
	if payload == nil {
		return attrs
	}

	if v, ok := payload[FieldName]; ok {
		attrs[FieldName] = coerceString(v)
	}
	if v, ok := payload[FieldBrand]; ok {
		attrs[FieldBrand] = coerceString(v)
	}
	if v, ok := payload[FieldPrice]; ok {
		attrs[FieldPrice] = coerceNumber(v)
	}
	if v, ok := payload[FieldSize]; ok {
		attrs[FieldSize] = coerceNumber(v)
	}

	return attrs
}

// IDFrom returns the id carried by a payload, or "" when it has none
func IDFrom(payload map[string]any) string {
	if id, ok := payload[FieldID].(string); ok {
		return strings.TrimSpace(id)
	}
	return ""
}

// coerceString renders a decoded JSON value as text. null renders as "null",
// arrays join their elements with commas and objects render as
// "[object Object]".
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return formatNumber(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, len(t))
		for i, elem := range t {
			if elem != nil {
				parts[i] = coerceString(elem)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	}
	return fmt.Sprint(v)
}

func formatNumber(f float64) string {
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// coerceNumber converts v to a float64. null, false and blank strings become
// 0 and true becomes 1. Values that do not convert to a finite number are
// returned unchanged.
func coerceNumber(v any) any {
	var f float64

	switch t := v.(type) {
	case nil:
		return float64(0)
	case bool:
		if t {
			return float64(1)
		}
		return float64(0)
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return v
		}
		f = parsed
	case string:
		parsed, ok := parseNumber(t)
		if !ok {
			return v
		}
		f = parsed
	case []any:
		parsed, ok := parseNumber(coerceString(t))
		if !ok {
			return v
		}
		f = parsed
	default:
		return v
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	return f
}

// parseNumber parses decimal and 0x/0o/0b prefixed integer text. Blank text
// is 0.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if strings.Contains(s, "_") {
			return 0, false
		}
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	if strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
