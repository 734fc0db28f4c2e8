package utils

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerceDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"float", 12.5, "12.5"},
		{"int", 7, "7"},
		{"numeric string", "19.90", "19.9"},
		{"padded string", "  3 ", "3"},
		{"json number", json.Number("42.10"), "42.1"},
		{"garbage string", "abc", "0"},
		{"nil", nil, "0"},
		{"object", map[string]any{"x": 1}, "0"},
		{"array", []any{1}, "0"},
		{"bool", true, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceDecimal(tt.in).String())
		})
	}
}

func TestCoerceDecimalNeverPanics(t *testing.T) {
	for _, v := range []any{nil, "", "NaN-ish", []any{}, map[string]any{}, 3.14} {
		assert.NotPanics(t, func() { CoerceDecimal(v) })
	}
}

func TestStringOr(t *testing.T) {
	payload := map[string]any{
		"name":  "Blossom",
		"blank": "   ",
		"num":   12,
	}
	assert.Equal(t, "Blossom", StringOr(payload, "name", "x"))
	assert.Equal(t, "x", StringOr(payload, "missing", "x"))
	assert.Equal(t, "x", StringOr(payload, "blank", "x"))
	assert.Equal(t, "x", StringOr(payload, "num", "x"), "wrong type counts as absent")
}

func TestItemsOfOnlyAcceptsArrays(t *testing.T) {
	for name, v := range map[string]any{
		"object": map[string]any{"name": "x"},
		"string": "items",
		"number": 3.0,
		"null":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, ItemsOf(map[string]any{"items": v}, "items"))
		})
	}

	list := ItemsOf(map[string]any{"items": []any{"a", "b"}}, "items")
	assert.Len(t, list, 2)
}

func TestAmountFollowsCoercedValues(t *testing.T) {
	qty := CoerceDecimal("oops")
	price := CoerceDecimal(9.99)
	assert.Equal(t, "0.00", price.Mul(qty).StringFixed(2))
	assert.True(t, qty.Equal(decimal.Zero))
}
