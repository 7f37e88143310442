package domain

import (
	"time"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    *string   `json:"category"` // Pointer agar bisa null
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryOrDefault groups absent/empty categories under one synthetic
// bucket. Counting only, never persisted.
func (p Product) CategoryOrDefault() string {
	if p.Category == nil || *p.Category == "" {
		return "Uncategorized"
	}
	return *p.Category
}

func (p Product) CategoryOrEmpty() string {
	if p.Category == nil {
		return ""
	}
	return *p.Category
}

func (p Product) DescriptionOrEmpty() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}
