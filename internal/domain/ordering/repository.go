package ordering

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByIDForUpdate loads the order under a row lock. Must run inside a
	// transaction; the lock is held until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Order], error)
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) (*shared.Paginated[Order], error)
	Create(ctx context.Context, order *Order) error
	Save(ctx context.Context, order *Order) error
}

// PaymentRepository defines persistence operations for the payment ledger
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Payment], error)
	Create(ctx context.Context, payment *Payment) error
	// DeleteByOrder removes all ledger entries for an order. Only the return
	// processor uses this, inside the return transaction.
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}

// ReturnRepository defines persistence operations for returns
type ReturnRepository interface {
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Return, error)
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Return], error)
	Create(ctx context.Context, ret *Return) error
}
