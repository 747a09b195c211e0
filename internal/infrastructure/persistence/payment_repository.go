package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements ordering.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Payment, error) {
	var payment ordering.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// ListByOrder lists all payments for an order, oldest first
func (r *GormPaymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]ordering.Payment, error) {
	var payments []ordering.Payment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("paid_at asc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAll finds payments, paginated
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[ordering.Payment], error) {
	query := r.db.WithContext(ctx).Model(&ordering.Payment{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var payments []ordering.Payment
	if err := query.
		Order("paid_at desc").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&payments).Error; err != nil {
		return nil, err
	}

	page := shared.NewPaginated(payments, total, filter.Page, filter.Limit())
	return &page, nil
}

// Create inserts a payment ledger entry
func (r *GormPaymentRepository) Create(ctx context.Context, payment *ordering.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// DeleteByOrder removes all payments for an order
func (r *GormPaymentRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&ordering.Payment{}).Error
}

var _ ordering.PaymentRepository = (*GormPaymentRepository)(nil)
