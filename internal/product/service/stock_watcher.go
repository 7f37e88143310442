package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ridloal/inventory-manager/internal/inventory/derive"
	"github.com/ridloal/inventory-manager/internal/platform/logger"
	"github.com/ridloal/inventory-manager/internal/product/repository"
)

const watcherTimeout = 30 * time.Second

// StockWatcher periodically scans the store and logs how many products are
// low or out of stock. Log-only: it never mutates the store.
type StockWatcher struct {
	repo      repository.ProductRepository
	scheduler *cron.Cron
	schedule  string
}

func NewStockWatcher(repo repository.ProductRepository, schedule string) *StockWatcher {
	return &StockWatcher{
		repo:      repo,
		scheduler: cron.New(),
		schedule:  schedule,
	}
}

func (w *StockWatcher) Start() error {
	if _, err := w.scheduler.AddFunc(w.schedule, w.check); err != nil {
		return fmt.Errorf("invalid stock watcher schedule %q: %w", w.schedule, err)
	}
	w.scheduler.Start()
	logger.Info("StockWatcher: started with schedule " + w.schedule)
	return nil
}

func (w *StockWatcher) Stop() {
	ctx := w.scheduler.Stop()
	<-ctx.Done()
}

func (w *StockWatcher) check() {
	ctx, cancel := context.WithTimeout(context.Background(), watcherTimeout)
	defer cancel()

	products, err := w.repo.ListProducts(ctx)
	if err != nil {
		logger.Error("StockWatcher: list failed", err)
		return
	}

	stats := derive.ComputeStats(products)
	outOfStock := 0
	for _, p := range products {
		if derive.MatchesStock(p, derive.StockOut) {
			outOfStock++
		}
	}

	if stats.LowStock > 0 || outOfStock > 0 {
		logger.Warn(fmt.Sprintf("StockWatcher: %d product(s) low on stock, %d out of stock (of %d)",
			stats.LowStock, outOfStock, stats.Total))
		return
	}
	logger.Info(fmt.Sprintf("StockWatcher: stock levels healthy across %d product(s)", stats.Total))
}
