// Package derive holds the pure derivations over the product collection:
// free-text filtering, stock predicates, aggregate statistics, and display
// formatting. Everything here is recomputed from its inputs on every call;
// nothing is cached.
package derive

import (
	"strings"

	"github.com/ridloal/inventory-manager/internal/product/domain"
)

// Filter returns the products whose name, category, or description contains
// the query, case-insensitively. An empty query returns the collection
// unchanged, order preserved.
func Filter(products []domain.Product, query string) []domain.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.CategoryOrEmpty()), q) ||
			strings.Contains(strings.ToLower(p.DescriptionOrEmpty()), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

const lowStockThreshold = 10

type StockStatus string

const (
	StockAll StockStatus = "all"
	StockLow StockStatus = "low"
	StockOut StockStatus = "out"
)

// MatchesStock reports whether a product falls under a stock-status filter.
// The interaction surface does not expose these filters yet; the predicates
// exist so a future surface can without re-deriving the thresholds.
func MatchesStock(p domain.Product, status StockStatus) bool {
	switch status {
	case StockLow:
		return p.Quantity < lowStockThreshold
	case StockOut:
		return p.Quantity == 0
	default:
		return true
	}
}

// FilterByStock narrows a collection to one stock status.
func FilterByStock(products []domain.Product, status StockStatus) []domain.Product {
	if status == StockAll || status == "" {
		return products
	}
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if MatchesStock(p, status) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Stats are aggregates over the full, unfiltered collection.
type Stats struct {
	Total      int
	TotalValue float64
	LowStock   int
	Categories int
}

func ComputeStats(products []domain.Product) Stats {
	stats := Stats{Total: len(products)}
	categories := map[string]struct{}{}
	for _, p := range products {
		stats.TotalValue += p.Price * float64(p.Quantity)
		if p.Quantity > 0 && p.Quantity < lowStockThreshold {
			stats.LowStock++
		}
		categories[p.CategoryOrDefault()] = struct{}{}
	}
	stats.Categories = len(categories)
	return stats
}
