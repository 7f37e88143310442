package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ridloal/inventory-manager/internal/inventory/session/mocks"
	"github.com/ridloal/inventory-manager/internal/product/domain"
)

var errTransport = errors.New("connection refused")

func TestController_Refresh(t *testing.T) {
	ctx := context.TODO()

	t.Run("Successful refresh replaces the mirror", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		listed := []domain.Product{{ID: "p2", Name: "Newer"}, {ID: "p1", Name: "Older"}}
		api.On("ListProducts", ctx).Return(listed, nil).Once()

		assert.True(t, ctrl.Refresh(ctx))
		assert.Equal(t, listed, ctrl.Products())
		assert.False(t, ctrl.Loading())
		assert.Empty(t, ctrl.LastError())
		api.AssertExpectations(t)
	})

	t.Run("Failed refresh keeps the previous collection", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		stale := []domain.Product{{ID: "p1", Name: "Widget"}}
		api.On("ListProducts", ctx).Return(stale, nil).Once()
		assert.True(t, ctrl.Refresh(ctx))

		api.On("ListProducts", ctx).Return(nil, errTransport).Once()
		assert.False(t, ctrl.Refresh(ctx))

		assert.Equal(t, stale, ctrl.Products())
		assert.Equal(t, "Failed to load products. Please try again.", ctrl.LastError())
		assert.False(t, ctrl.Loading())
		api.AssertExpectations(t)
	})

	t.Run("Refresh clears a previous error", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		api.On("ListProducts", ctx).Return(nil, errTransport).Once()
		ctrl.Refresh(ctx)
		assert.NotEmpty(t, ctrl.LastError())

		api.On("ListProducts", ctx).Return([]domain.Product{}, nil).Once()
		ctrl.Refresh(ctx)
		assert.Empty(t, ctrl.LastError())
	})
}

func TestController_Submit(t *testing.T) {
	ctx := context.TODO()
	in := domain.ProductInput{
		Name:     "Widget",
		Price:    domain.Number{Value: 9.99, Supplied: true},
		Quantity: domain.Number{Value: 5, Supplied: true},
	}

	t.Run("Create mode triggers full refresh on success", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)
		ctrl.OpenCreateForm()

		created := &domain.Product{ID: "p1", Name: "Widget"}
		api.On("CreateProduct", ctx, in).Return(created, nil).Once()
		api.On("ListProducts", ctx).Return([]domain.Product{*created}, nil).Once()

		assert.True(t, ctrl.Submit(ctx, in))
		assert.Len(t, ctrl.Products(), 1)
		assert.False(t, ctrl.Saving())
		api.AssertExpectations(t)
	})

	t.Run("Edit mode updates the held target", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)
		ctrl.OpenEditForm(domain.Product{ID: "p1", Name: "Widget"})

		updated := &domain.Product{ID: "p1", Name: "Widget", Quantity: 5}
		api.On("UpdateProduct", ctx, "p1", in).Return(updated, nil).Once()
		api.On("ListProducts", ctx).Return([]domain.Product{*updated}, nil).Once()

		assert.True(t, ctrl.Submit(ctx, in))
		api.AssertExpectations(t)
		api.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure leaves form open and edit target intact", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)
		ctrl.OpenEditForm(domain.Product{ID: "p1", Name: "Widget"})

		api.On("UpdateProduct", ctx, "p1", in).Return(nil, errTransport).Once()

		assert.False(t, ctrl.Submit(ctx, in))
		assert.True(t, ctrl.FormOpen())
		assert.NotNil(t, ctrl.Editing())
		assert.Equal(t, "Failed to update product. Please try again.", ctrl.LastError())
		assert.False(t, ctrl.Saving())
		api.AssertNotCalled(t, "ListProducts", mock.Anything)
	})

	t.Run("Subsequent successful submit clears the error", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)
		ctrl.OpenCreateForm()

		api.On("CreateProduct", ctx, in).Return(nil, errTransport).Once()
		assert.False(t, ctrl.Submit(ctx, in))
		assert.NotEmpty(t, ctrl.LastError())

		api.On("CreateProduct", ctx, in).Return(&domain.Product{ID: "p1"}, nil).Once()
		api.On("ListProducts", ctx).Return([]domain.Product{{ID: "p1"}}, nil).Once()
		assert.True(t, ctrl.Submit(ctx, in))
		assert.Empty(t, ctrl.LastError())
	})
}

func TestController_DeleteFlow(t *testing.T) {
	ctx := context.TODO()
	target := domain.Product{ID: "p1", Name: "Widget"}

	t.Run("Request holds the target without side effects", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		ctrl.RequestDelete(target)
		assert.Equal(t, "p1", ctrl.DeleteTarget().ID)
		api.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})

	t.Run("Cancel discards the target without an API call", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		ctrl.RequestDelete(target)
		ctrl.CancelDelete()
		assert.Nil(t, ctrl.DeleteTarget())
		api.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})

	t.Run("Confirm deletes, refreshes, and closes the confirmation", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		api.On("DeleteProduct", ctx, "p1").Return(nil).Once()
		api.On("ListProducts", ctx).Return([]domain.Product{}, nil).Once()

		ctrl.RequestDelete(target)
		assert.True(t, ctrl.ConfirmDelete(ctx))
		assert.Nil(t, ctrl.DeleteTarget())
		assert.Empty(t, ctrl.Products())
		assert.False(t, ctrl.Deleting())
		api.AssertExpectations(t)
	})

	t.Run("Failed confirm keeps the confirmation open for retry", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		api.On("DeleteProduct", ctx, "p1").Return(errTransport).Once()

		ctrl.RequestDelete(target)
		assert.False(t, ctrl.ConfirmDelete(ctx))
		assert.NotNil(t, ctrl.DeleteTarget())
		assert.Equal(t, "Failed to delete product. Please try again.", ctrl.LastError())
		assert.False(t, ctrl.Deleting())

		// Retry succeeds.
		api.On("DeleteProduct", ctx, "p1").Return(nil).Once()
		api.On("ListProducts", ctx).Return([]domain.Product{}, nil).Once()
		assert.True(t, ctrl.ConfirmDelete(ctx))
		assert.Nil(t, ctrl.DeleteTarget())
		api.AssertExpectations(t)
	})

	t.Run("Confirm without a held target is a no-op", func(t *testing.T) {
		api := new(mocks.MockInventoryAPI)
		ctrl := NewController(api)

		assert.False(t, ctrl.ConfirmDelete(ctx))
		api.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})
}

func TestController_Derivations(t *testing.T) {
	ctx := context.TODO()

	api := new(mocks.MockInventoryAPI)
	ctrl := NewController(api)

	category := "Tools"
	api.On("ListProducts", ctx).Return([]domain.Product{
		{ID: "p1", Name: "Widget", Category: &category, Price: 10, Quantity: 2},
		{ID: "p2", Name: "Gadget", Price: 5, Quantity: 0},
		{ID: "p3", Name: "Manual", Quantity: 3},
	}, nil).Once()
	ctrl.Refresh(ctx)

	t.Run("Visible narrows by filter, stats stay global", func(t *testing.T) {
		ctrl.SetFilter("widget")
		assert.Len(t, ctrl.Visible(), 1)

		stats := ctrl.Stats()
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 20.0, stats.TotalValue)
		assert.Equal(t, 1, stats.LowStock)
	})

	t.Run("Clearing the filter restores the full view", func(t *testing.T) {
		ctrl.SetFilter("")
		assert.Len(t, ctrl.Visible(), 3)
	})
}
