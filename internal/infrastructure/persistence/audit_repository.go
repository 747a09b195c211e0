package persistence

import (
	"context"

	"github.com/backoffice/backend/internal/domain/audit"
	"github.com/backoffice/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAuditRepository implements audit.Repository using GORM.
// It only inserts and reads; entries are never updated or deleted.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Create appends an audit entry
func (r *GormAuditRepository) Create(ctx context.Context, entry *audit.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Find retrieves audit entries matching the query, newest first
func (r *GormAuditRepository) Find(ctx context.Context, query audit.Query) (*shared.Paginated[audit.Entry], error) {
	q := r.db.WithContext(ctx).Model(&audit.Entry{})

	if query.UserID != nil {
		q = q.Where("user_id = ?", *query.UserID)
	}
	if query.Endpoint != "" {
		q = q.Where("endpoint LIKE ?", query.Endpoint+"%")
	}
	if query.Method != "" {
		q = q.Where("method = ?", query.Method)
	}
	if query.From != nil {
		q = q.Where("recorded_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("recorded_at <= ?", *query.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var entries []audit.Entry
	if err := q.
		Order("recorded_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(entries, total, page, pageSize)
	return &result, nil
}

var _ audit.Repository = (*GormAuditRepository)(nil)
