package mocks

import (
	"context"

	pDomain "github.com/ridloal/inventory-manager/internal/product/domain"

	"github.com/stretchr/testify/mock"
)

type MockInventoryAPI struct {
	mock.Mock
}

func (m *MockInventoryAPI) ListProducts(ctx context.Context) ([]pDomain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) GetProduct(ctx context.Context, id string) (*pDomain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) CreateProduct(ctx context.Context, in pDomain.ProductInput) (*pDomain.Product, error) {
	args := m.Called(ctx, in)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) UpdateProduct(ctx context.Context, id string, in pDomain.ProductInput) (*pDomain.Product, error) {
	args := m.Called(ctx, id, in)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
