package product

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Price
	}{
		{"bare number", `1299`, 1299},
		{"float number", `1299.0`, 1299},
		{"quoted number", `"1299"`, 1299},
		{"comma separated", `"1,299"`, 1299},
		{"currency symbol", `"₹2,499"`, 2499},
		{"spaces", `" 499 "`, 499},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPrice_UnmarshalJSONRejectsGarbage(t *testing.T) {
	var p Price
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &p))
	assert.Error(t, json.Unmarshal([]byte(`true`), &p))
}

func TestProduct_DecodeRecord(t *testing.T) {
	raw := `{
		"id": "p1",
		"title": "Whey Protein Isolate",
		"subtitle": "1kg, Double Rich Chocolate",
		"currentPrice": "2,499",
		"originalPrice": 3299,
		"discount": "24% off",
		"item": "protein",
		"rating": "4.5"
	}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, Price(2499), p.CurrentPrice)
	assert.Equal(t, Price(3299), p.OriginalPrice)
	assert.Equal(t, "protein", p.Category)
}

func TestProduct_Validate(t *testing.T) {
	valid := Product{ID: "p1", Title: "Creatine", CurrentPrice: 699, OriginalPrice: 999}
	assert.NoError(t, valid.Validate())

	missingTitle := Product{ID: "p1", CurrentPrice: 699}
	assert.Error(t, missingTitle.Validate())

	zeroPrice := Product{ID: "p1", Title: "Creatine"}
	assert.Error(t, zeroPrice.Validate())

	inverted := Product{ID: "p1", Title: "Creatine", CurrentPrice: 999, OriginalPrice: 699}
	assert.Error(t, inverted.Validate())
}
