package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshal(t *testing.T) {
	var v struct {
		Price Decimal `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 19.99}`), &v))
	assert.Equal(t, Decimal("19.99"), v.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "42.50"}`), &v))
	assert.Equal(t, Decimal("42.50"), v.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &v))
	assert.Equal(t, Decimal(""), v.Price)
}

func TestDecimalMarshalAsString(t *testing.T) {
	b, err := json.Marshal(struct {
		Price Decimal `json:"price"`
	}{Price: "19.99"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"price": "19.99"}`, string(b))
}

func TestDecimalIsZero(t *testing.T) {
	assert.True(t, Decimal("").IsZero())
	assert.True(t, Decimal("0").IsZero())
	assert.True(t, Decimal("0.00").IsZero())
	assert.False(t, Decimal("19.99").IsZero())
	// unparseable values defer to the database boundary
	assert.False(t, Decimal("abc").IsZero())
}
