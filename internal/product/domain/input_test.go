package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		value    float64
		supplied bool
	}{
		{"json number", `{"price": 9.99}`, 9.99, true},
		{"numeric string", `{"price": "9.99"}`, 9.99, true},
		{"integer string", `{"price": "5"}`, 5, true},
		{"null", `{"price": null}`, 0, false},
		{"absent", `{}`, 0, false},
		{"empty string", `{"price": ""}`, 0, false},
		{"non-numeric string", `{"price": "abc"}`, 0, false},
		{"negative number", `{"price": -3}`, -3, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body struct {
				Price Number `json:"price"`
			}
			err := json.Unmarshal([]byte(tc.payload), &body)
			assert.NoError(t, err)
			assert.Equal(t, tc.value, body.Price.Value)
			assert.Equal(t, tc.supplied, body.Price.Supplied)
		})
	}
}

func TestValidateInput(t *testing.T) {
	t.Run("Minimal valid input coerces numerics to zero", func(t *testing.T) {
		p, ve := ValidateInput(ProductInput{Name: "Widget"})
		assert.Nil(t, ve)
		assert.Equal(t, "Widget", p.Name)
		assert.Equal(t, 0.0, p.Price)
		assert.Equal(t, 0, p.Quantity)
		assert.Nil(t, p.Category)
		assert.Nil(t, p.Description)
	})

	t.Run("Full valid input", func(t *testing.T) {
		p, ve := ValidateInput(ProductInput{
			Name:        "  Widget  ",
			Category:    "Tools",
			Price:       Number{Value: 9.99, Supplied: true},
			Quantity:    Number{Value: 5, Supplied: true},
			Description: "A fine widget",
		})
		assert.Nil(t, ve)
		assert.Equal(t, "Widget", p.Name)
		assert.Equal(t, "Tools", *p.Category)
		assert.Equal(t, 9.99, p.Price)
		assert.Equal(t, 5, p.Quantity)
		assert.Equal(t, "A fine widget", *p.Description)
	})

	t.Run("Empty name rejected", func(t *testing.T) {
		p, ve := ValidateInput(ProductInput{Name: "   "})
		assert.Nil(t, p)
		assert.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "name")
	})

	t.Run("Overlong name and category rejected", func(t *testing.T) {
		long := strings.Repeat("x", 256)
		p, ve := ValidateInput(ProductInput{Name: long, Category: long})
		assert.Nil(t, p)
		assert.Contains(t, ve.Fields, "name")
		assert.Contains(t, ve.Fields, "category")
	})

	t.Run("Length 255 accepted", func(t *testing.T) {
		edge := strings.Repeat("x", 255)
		p, ve := ValidateInput(ProductInput{Name: edge, Category: edge})
		assert.Nil(t, ve)
		assert.Equal(t, edge, p.Name)
	})

	t.Run("Negative price rejected", func(t *testing.T) {
		_, ve := ValidateInput(ProductInput{
			Name:  "Widget",
			Price: Number{Value: -1, Supplied: true},
		})
		assert.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "price")
	})

	t.Run("Negative quantity rejected", func(t *testing.T) {
		_, ve := ValidateInput(ProductInput{
			Name:     "Widget",
			Quantity: Number{Value: -2, Supplied: true},
		})
		assert.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "quantity")
	})

	t.Run("Fractional quantity rejected", func(t *testing.T) {
		_, ve := ValidateInput(ProductInput{
			Name:     "Widget",
			Quantity: Number{Value: 2.5, Supplied: true},
		})
		assert.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "quantity")
	})

	t.Run("Empty category stays null, not Uncategorized", func(t *testing.T) {
		p, ve := ValidateInput(ProductInput{Name: "Widget", Category: "  "})
		assert.Nil(t, ve)
		assert.Nil(t, p.Category)
		assert.Equal(t, "Uncategorized", p.CategoryOrDefault())
	})
}
