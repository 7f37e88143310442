package service

import (
	"context"

	"github.com/ridloal/inventory-manager/internal/platform/logger"
	"github.com/ridloal/inventory-manager/internal/product/domain"
	"github.com/ridloal/inventory-manager/internal/product/repository"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	// Validation happens before any store touch; a rejected create mutates
	// nothing.
	p, ve := domain.ValidateInput(in)
	if ve != nil {
		return nil, ve
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		logger.Error("Svc.CreateProduct: repo error", err)
		return nil, err
	}
	return p, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	p, ve := domain.ValidateInput(in)
	if ve != nil {
		return nil, ve
	}
	// Overwrite in place; identifier is unchanged and the repo reports
	// unresolved ids as ErrProductNotFound.
	p.ID = id
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		if err != repository.ErrProductNotFound {
			logger.Error("Svc.UpdateProduct: repo error", err)
		}
		return nil, err
	}
	return p, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	err := s.repo.DeleteProduct(ctx, id)
	if err != nil && err != repository.ErrProductNotFound {
		logger.Error("Svc.DeleteProduct: repo error", err)
	}
	return err
}
