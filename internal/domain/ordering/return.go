package ordering

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnedLine is a frozen copy of an order line at return time. The snapshot
// keeps the return record stable even if the order or catalog changes later.
type ReturnedLine struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ReturnedLines is stored as a JSON document in a single column
type ReturnedLines []ReturnedLine

// Value implements driver.Valuer
func (l ReturnedLines) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *ReturnedLines) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ReturnedLines", value)
	}
	return json.Unmarshal(data, l)
}

// Return records the full return of an order. At most one return may exist
// per order; the database enforces this with a unique index on OrderID.
type Return struct {
	shared.BaseEntity
	OrderID uuid.UUID `gorm:"uniqueIndex"`
	// UserID is the supervisor or admin who processed the return
	UserID      uuid.UUID
	Reason      string
	Description string
	Lines       ReturnedLines `gorm:"type:jsonb"`
	// TotalAmount is the order total at return time
	TotalAmount decimal.Decimal
	ReturnedAt  time.Time
}

// TableName returns the table name for GORM
func (Return) TableName() string {
	return "returns"
}

// NewReturn creates a return record snapshotting the order's lines and total
func NewReturn(order *Order, userID uuid.UUID, reason, description string) (*Return, error) {
	if order == nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order cannot be nil")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Return reason cannot be empty")
	}

	lines := make(ReturnedLines, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, ReturnedLine{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	return &Return{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     order.ID,
		UserID:      userID,
		Reason:      reason,
		Description: description,
		Lines:       lines,
		TotalAmount: order.Total,
		ReturnedAt:  time.Now(),
	}, nil
}
