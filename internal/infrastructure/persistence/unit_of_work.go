package persistence

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormUnitOfWork implements ordering.UnitOfWork on a gorm transaction.
// Every repository handed to the callback is bound to the same transaction,
// so row locks taken through one are held for all of them.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn inside a database transaction
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(tx ordering.TxRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepositories{tx: tx})
	})
}

type gormTxRepositories struct {
	tx *gorm.DB
}

func (t *gormTxRepositories) Orders() ordering.OrderRepository {
	return NewGormOrderRepository(t.tx)
}

func (t *gormTxRepositories) Payments() ordering.PaymentRepository {
	return NewGormPaymentRepository(t.tx)
}

func (t *gormTxRepositories) Returns() ordering.ReturnRepository {
	return NewGormReturnRepository(t.tx)
}

func (t *gormTxRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(t.tx)
}

func (t *gormTxRepositories) Clients() partner.ClientRepository {
	return NewGormClientRepository(t.tx)
}

var _ ordering.UnitOfWork = (*GormUnitOfWork)(nil)
