package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient JSON numeric field. Forms and scripts send prices and
// quantities as numbers, numeric strings, empty strings, or null; anything
// that does not parse is treated as absent and coerced to 0 downstream.
type Number struct {
	Value    float64
	Supplied bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = Number{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = Number{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Non-numeric input coerces to 0 rather than failing the request.
			*n = Number{}
			return nil
		}
		*n = Number{Value: v, Supplied: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*n = Number{}
		return nil
	}
	*n = Number{Value: v, Supplied: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

// IsInteger reports whether the supplied value has no fractional part.
func (n Number) IsInteger() bool {
	return n.Value == math.Trunc(n.Value)
}

// ProductInput carries candidate fields for Create and Update.
type ProductInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       Number `json:"price"`
	Quantity    Number `json:"quantity"`
	Description string `json:"description"`
}

// ValidationError holds per-field messages for a rejected Create/Update.
type ValidationError struct {
	Fields map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

const maxFieldLength = 255

// ValidateInput normalizes candidate fields into a Product (without identity
// or timestamps) or rejects them with per-field errors. This is the single
// coercion point for both Create and Update: absent or non-numeric price and
// quantity become 0, supplied values must be non-negative, quantity must be
// whole.
func ValidateInput(in ProductInput) (*Product, *ValidationError) {
	ve := &ValidationError{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.add("name", "The name field is required.")
	} else if len(name) > maxFieldLength {
		ve.add("name", "The name may not be greater than 255 characters.")
	}

	category := strings.TrimSpace(in.Category)
	if len(category) > maxFieldLength {
		ve.add("category", "The category may not be greater than 255 characters.")
	}

	if in.Price.Supplied && in.Price.Value < 0 {
		ve.add("price", "The price must be at least 0.")
	}
	if in.Quantity.Supplied {
		if !in.Quantity.IsInteger() {
			ve.add("quantity", "The quantity must be an integer.")
		} else if in.Quantity.Value < 0 {
			ve.add("quantity", "The quantity must be at least 0.")
		}
	}

	if len(ve.Fields) > 0 {
		return nil, ve
	}

	p := &Product{
		Name:     name,
		Price:    in.Price.Value,
		Quantity: int(in.Quantity.Value),
	}
	if category != "" {
		p.Category = &category
	}
	if description := strings.TrimSpace(in.Description); description != "" {
		p.Description = &description
	}
	return p, nil
}
