// utils/coerce.go
package utils

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceDecimal converts a loosely-typed JSON value into a decimal.
// Numbers, json.Number and numeric strings are accepted; everything else
// (nil, objects, arrays, garbage text) yields zero. It never fails: a
// garbled order must still produce a reviewable document.
func CoerceDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// StringOr returns the payload value under key as a trimmed string, or
// fallback when the key is missing, not a string, or blank.
func StringOr(payload map[string]any, key, fallback string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return fallback
}

// ItemsOf returns the payload's items only when the value is literally a
// JSON array; objects, strings, numbers and null all count as "no items".
func ItemsOf(payload map[string]any, key string) []any {
	if v, ok := payload[key]; ok {
		if list, ok := v.([]any); ok {
			return list
		}
	}
	return nil
}
