package ordering

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/partner"
)

// TxRepositories exposes the repositories bound to one database transaction.
// Everything obtained through it shares the same transaction, so row locks
// taken by one repository are visible to the others.
type TxRepositories interface {
	Orders() OrderRepository
	Payments() PaymentRepository
	Returns() ReturnRepository
	Products() catalog.ProductRepository
	Clients() partner.ClientRepository
}

// UnitOfWork runs a function atomically. The function's error rolls the
// transaction back; nil commits it.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(tx TxRepositories) error) error
}
