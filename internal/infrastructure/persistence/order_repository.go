package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its lines
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByIDForUpdate loads an order under a row-level write lock. The lock
// covers only the orders row; lines are loaded with a separate query.
func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	// id breaks ties between lines created in the same instant
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Order("created_at asc, id asc").
		Find(&order.Lines).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll finds orders matching the filter, paginated
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Model(&ordering.Order{}), filter)
}

// FindByClient finds a client's orders, paginated
func (r *GormOrderRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	query := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Where("client_id = ?", clientID)
	return r.findPage(ctx, query, filter)
}

func (r *GormOrderRepository) findPage(_ context.Context, query *gorm.DB, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := "ordered_at"
	if filter.OrderBy != "" {
		orderBy = filter.OrderBy
	}
	dir := "desc"
	if filter.OrderDir == "asc" {
		dir = "asc"
	}

	var orders []ordering.Order
	if err := query.
		Preload("Lines").
		Order(orderBy + " " + dir).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	page := shared.NewPaginated(orders, total, filter.Page, filter.Limit())
	return &page, nil
}

// Create inserts an order and its lines
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Save persists changes to an order. Lines are immutable, only the order
// row is written.
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).
		Omit("Lines").
		Save(order).Error
}

var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
