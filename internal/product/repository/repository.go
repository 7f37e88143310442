package repository

import (
	"context"
	"errors"

	"github.com/ridloal/inventory-manager/internal/product/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the opaque product store. Identifiers are assigned at
// creation and stable thereafter; listing returns reverse creation order.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}
