package audit

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Query narrows an audit listing. Zero values mean "no filter".
type Query struct {
	UserID   *uuid.UUID
	Endpoint string
	Method   string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// Repository defines persistence operations for audit entries.
// Implementations only ever insert and read.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Find(ctx context.Context, query Query) (*shared.Paginated[Entry], error)
}
