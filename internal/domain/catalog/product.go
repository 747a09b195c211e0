package catalog

import (
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable product with tracked stock.
// Stock is mutated only through Decrease (order reservation) and
// Increase (return restock); prices are decimal throughout.
type Product struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	SalePrice   decimal.Decimal
	Stock       int
	MinStock    int
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string, salePrice decimal.Decimal, stock, minStock int) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if minStock < 0 {
		return nil, shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SalePrice:         salePrice,
		Stock:             stock,
		MinStock:          minStock,
	}, nil
}

// HasStock reports whether the product can cover the requested quantity
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// Decrease removes quantity units from stock.
// Fails with InsufficientStock when the product cannot cover the request;
// the error names the product and the quantity actually available.
func (p *Product) Decrease(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if !p.HasStock(quantity) {
		return NewInsufficientStockError(p.Name, p.Stock)
	}

	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// Increase adds quantity units back to stock (return restock)
func (p *Product) Increase(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// IsBelowMinimum reports whether stock has fallen below the reorder threshold
func (p *Product) IsBelowMinimum() bool {
	return p.Stock < p.MinStock
}

// NewInsufficientStockError builds the user-facing shortage error
func NewInsufficientStockError(productName string, available int) *shared.DomainError {
	return shared.NewDomainError(
		"INSUFFICIENT_STOCK",
		fmt.Sprintf("Insufficient stock for product '%s'. Available: %d", productName, available),
	)
}
