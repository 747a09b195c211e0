package audit

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Entry is an append-only audit record of one mutating HTTP request.
// Entries are never updated or deleted through the application.
type Entry struct {
	shared.BaseEntity
	// UserID is nil for unauthenticated requests (failed logins)
	UserID *uuid.UUID
	// Username is denormalized so the record survives user deletion
	Username string
	Endpoint string
	Method   string
	// Payload holds the redacted request body as JSON text
	Payload        string
	IPAddress      string
	UserAgent      string
	StatusCode     int
	ResponseTimeMS int64
	RecordedAt     time.Time
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "audit_logs"
}

// NewEntry creates an audit entry. The payload must already be redacted and
// size-capped by the caller.
func NewEntry(userID *uuid.UUID, username, endpoint, method, payload, ip, userAgent string, statusCode int, responseTime time.Duration) *Entry {
	return &Entry{
		BaseEntity:     shared.NewBaseEntity(),
		UserID:         userID,
		Username:       username,
		Endpoint:       endpoint,
		Method:         method,
		Payload:        payload,
		IPAddress:      ip,
		UserAgent:      userAgent,
		StatusCode:     statusCode,
		ResponseTimeMS: responseTime.Milliseconds(),
		RecordedAt:     time.Now(),
	}
}
