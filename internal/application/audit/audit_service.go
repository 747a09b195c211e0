package audit

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/audit"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service records and queries audit entries. Recording is best effort: a
// failed append is logged and swallowed so it can never fail a business
// request that already succeeded.
type Service struct {
	repo   audit.Repository
	logger *zap.Logger
}

// NewService creates a new audit service
func NewService(repo audit.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends an audit entry
func (s *Service) Record(ctx context.Context, entry *audit.Entry) {
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record audit entry",
			zap.String("endpoint", entry.Endpoint),
			zap.String("method", entry.Method),
			zap.Error(err))
	}
}

// ListFilter narrows the audit listing
type ListFilter struct {
	UserID   *uuid.UUID `form:"user_id"`
	Endpoint string     `form:"endpoint"`
	Method   string     `form:"method" binding:"omitempty,oneof=GET POST PUT PATCH DELETE"`
	From     *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// EntryResponse represents an audit entry in responses
type EntryResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Username       string     `json:"username,omitempty"`
	Endpoint       string     `json:"endpoint"`
	Method         string     `json:"method"`
	Payload        string     `json:"payload,omitempty"`
	IPAddress      string     `json:"ip_address"`
	UserAgent      string     `json:"user_agent"`
	StatusCode     int        `json:"status_code"`
	ResponseTimeMS int64      `json:"response_time_ms"`
	RecordedAt     time.Time  `json:"recorded_at"`
}

// List retrieves audit entries, newest first
func (s *Service) List(ctx context.Context, filter ListFilter) ([]EntryResponse, int64, error) {
	query := audit.Query{
		UserID:   filter.UserID,
		Endpoint: filter.Endpoint,
		Method:   filter.Method,
		From:     filter.From,
		To:       filter.To,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}

	page, err := s.repo.Find(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EntryResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, toEntryResponse(&page.Items[i]))
	}
	return responses, page.Total, nil
}

func toEntryResponse(entry *audit.Entry) EntryResponse {
	return EntryResponse{
		ID:             entry.ID,
		UserID:         entry.UserID,
		Username:       entry.Username,
		Endpoint:       entry.Endpoint,
		Method:         entry.Method,
		Payload:        entry.Payload,
		IPAddress:      entry.IPAddress,
		UserAgent:      entry.UserAgent,
		StatusCode:     entry.StatusCode,
		ResponseTimeMS: entry.ResponseTimeMS,
		RecordedAt:     entry.RecordedAt,
	}
}
