package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReturnRepository implements ordering.ReturnRepository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GormReturnRepository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// FindByOrder finds the return recorded for an order
func (r *GormReturnRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*ordering.Return, error) {
	var ret ordering.Return
	if err := r.db.WithContext(ctx).First(&ret, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// ExistsForOrder reports whether the order already has a return
func (r *GormReturnRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ordering.Return{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds returns, paginated, newest first
func (r *GormReturnRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[ordering.Return], error) {
	query := r.db.WithContext(ctx).Model(&ordering.Return{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var returns []ordering.Return
	if err := query.
		Order("returned_at desc").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&returns).Error; err != nil {
		return nil, err
	}

	page := shared.NewPaginated(returns, total, filter.Page, filter.Limit())
	return &page, nil
}

// Create inserts a return. The unique index on order_id makes a duplicate
// return fail even if two transactions race past the existence check.
func (r *GormReturnRepository) Create(ctx context.Context, ret *ordering.Return) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

var _ ordering.ReturnRepository = (*GormReturnRepository)(nil)
