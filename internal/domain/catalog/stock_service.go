package catalog

import (
	"context"

	"github.com/google/uuid"
)

// StockLine is one product/quantity pair to reserve or restore
type StockLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// StockService adjusts product stock levels. All methods operate on the
// caller's transaction-bound repository; products are loaded under row locks
// so concurrent reservations serialize per product.
type StockService struct{}

// NewStockService creates a stock service
func NewStockService() *StockService {
	return &StockService{}
}

// Reserve decrements stock for every line, all or nothing. The first product
// with insufficient stock aborts the whole reservation; the caller's
// transaction rollback undoes any prior decrement.
func (s *StockService) Reserve(ctx context.Context, products ProductRepository, lines []StockLine) error {
	for _, line := range lines {
		product, err := products.FindByIDForUpdate(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if err := product.Decrease(line.Quantity); err != nil {
			return err
		}
		if err := products.Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

// Restore increments stock for every line. Used by the return processor to
// put returned goods back on hand.
func (s *StockService) Restore(ctx context.Context, products ProductRepository, lines []StockLine) error {
	for _, line := range lines {
		product, err := products.FindByIDForUpdate(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if err := product.Increase(line.Quantity); err != nil {
			return err
		}
		if err := products.Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}
