// Package session holds the client-side state for one running instance of
// the interaction surface: the mirror of the last fetched collection, the
// transient loading/saving/deleting flags, the free-text filter, the edit
// target, and the pending delete confirmation. The controller is the only
// mutator of this state and drives one API call at a time, so no locking is
// needed for its intended single-actor use.
package session

import (
	"context"

	"github.com/ridloal/inventory-manager/internal/inventory/derive"
	"github.com/ridloal/inventory-manager/internal/product/client"
	"github.com/ridloal/inventory-manager/internal/product/domain"
)

const (
	msgLoadFailed   = "Failed to load products. Please try again."
	msgCreateFailed = "Failed to create product. Please try again."
	msgUpdateFailed = "Failed to update product. Please try again."
	msgDeleteFailed = "Failed to delete product. Please try again."
)

type Controller struct {
	api client.InventoryAPI

	products   []domain.Product
	filterText string

	loading  bool
	saving   bool
	deleting bool
	lastErr  string

	editing      *domain.Product // nil berarti create mode
	formOpen     bool
	deleteTarget *domain.Product
}

func NewController(api client.InventoryAPI) *Controller {
	return &Controller{api: api}
}

// Refresh replaces the collection mirror with the server's current state.
// On failure the previous collection stays as-is: stale but consistent.
func (c *Controller) Refresh(ctx context.Context) bool {
	c.loading = true
	c.lastErr = ""
	defer func() { c.loading = false }()

	products, err := c.api.ListProducts(ctx)
	if err != nil {
		c.lastErr = msgLoadFailed
		return false
	}
	c.products = products
	return true
}

// Submit creates or updates depending on whether an edit target is set. On
// success the full collection is refreshed and true is returned; the caller
// then closes the form. On failure the form state is untouched so typed
// values survive for a retry.
func (c *Controller) Submit(ctx context.Context, in domain.ProductInput) bool {
	c.saving = true
	c.lastErr = ""
	defer func() { c.saving = false }()

	var err error
	if c.editing != nil {
		_, err = c.api.UpdateProduct(ctx, c.editing.ID, in)
		if err != nil {
			c.lastErr = msgUpdateFailed
			return false
		}
	} else {
		_, err = c.api.CreateProduct(ctx, in)
		if err != nil {
			c.lastErr = msgCreateFailed
			return false
		}
	}

	// Always reload rather than merging the returned record; the mirror must
	// match server state exactly after every write.
	c.Refresh(ctx)
	return true
}

// RequestDelete opens the confirmation for a product. No side effect yet.
func (c *Controller) RequestDelete(p domain.Product) {
	c.deleteTarget = &p
}

// CancelDelete discards the held target without an API call.
func (c *Controller) CancelDelete() {
	c.deleteTarget = nil
}

// ConfirmDelete deletes the held target. On failure the confirmation stays
// open for retry.
func (c *Controller) ConfirmDelete(ctx context.Context) bool {
	if c.deleteTarget == nil {
		return false
	}
	c.deleting = true
	defer func() { c.deleting = false }()

	if err := c.api.DeleteProduct(ctx, c.deleteTarget.ID); err != nil {
		c.lastErr = msgDeleteFailed
		return false
	}
	c.Refresh(ctx)
	c.deleteTarget = nil
	return true
}

func (c *Controller) OpenCreateForm() {
	c.editing = nil
	c.formOpen = true
}

func (c *Controller) OpenEditForm(p domain.Product) {
	c.editing = &p
	c.formOpen = true
}

func (c *Controller) CloseForm() {
	c.editing = nil
	c.formOpen = false
}

func (c *Controller) SetFilter(query string) {
	c.filterText = query
}

// Visible derives the filtered view from the current mirror and filter.
func (c *Controller) Visible() []domain.Product {
	return derive.Filter(c.products, c.filterText)
}

// Stats derives aggregates from the full, unfiltered mirror.
func (c *Controller) Stats() derive.Stats {
	return derive.ComputeStats(c.products)
}

func (c *Controller) Products() []domain.Product    { return c.products }
func (c *Controller) FilterText() string            { return c.filterText }
func (c *Controller) Loading() bool                 { return c.loading }
func (c *Controller) Saving() bool                  { return c.saving }
func (c *Controller) Deleting() bool                { return c.deleting }
func (c *Controller) LastError() string             { return c.lastErr }
func (c *Controller) FormOpen() bool                { return c.formOpen }
func (c *Controller) Editing() *domain.Product      { return c.editing }
func (c *Controller) DeleteTarget() *domain.Product { return c.deleteTarget }
