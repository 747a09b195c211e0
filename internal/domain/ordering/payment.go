package ordering

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is an append-only ledger entry recording money received against an
// order. Payments are never edited; the order's TotalPaid is the running
// balance and is the only mutable figure.
type Payment struct {
	shared.BaseEntity
	OrderID uuid.UUID
	Amount  decimal.Decimal
	// SourceAccount is the payer account the transfer came from
	SourceAccount string
	// TransferCode is the bank confirmation code (Transfermovil or similar)
	TransferCode string
	PaidAt       time.Time
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a payment ledger entry for an order
func NewPayment(orderID uuid.UUID, amount decimal.Decimal, sourceAccount, transferCode string) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if sourceAccount == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Source account cannot be empty")
	}

	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		Amount:        amount,
		SourceAccount: sourceAccount,
		TransferCode:  transferCode,
		PaidAt:        time.Now(),
	}, nil
}
