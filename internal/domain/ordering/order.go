package ordering

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusReturned OrderStatus = "RETURNED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusReturned:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// OrderLine represents a line item in an order. Lines are immutable once the
// order is created; the unit price is a snapshot taken at order time and is
// independent of later product price changes.
type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	// ProductName is denormalized so line history survives catalog edits
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// NewOrderLine creates an order line with subtotal = quantity * unit price
func NewOrderLine(orderID, productID uuid.UUID, productName string, quantity int, unitPrice valueobject.Money) (*OrderLine, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	price := unitPrice.Amount()
	return &OrderLine{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   price,
		Subtotal:    price.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:   time.Now(),
	}, nil
}

// Order represents an order aggregate root. It owns the invariants
// 0 <= TotalPaid <= Total, sum(line subtotals) == Total, and the
// PENDING -> PAID / -> RETURNED state machine (RETURNED is terminal).
type Order struct {
	shared.BaseAggregateRoot
	ClientID  uuid.UUID
	OrderedAt time.Time
	Status    OrderStatus
	Total     decimal.Decimal
	TotalPaid decimal.Decimal
	// TakeOutOfBusiness records, after a return, whether the goods leave the
	// business; nil until a supervisor decides
	TakeOutOfBusiness *bool
	Lines             []OrderLine `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order for a client
func NewOrder(clientID uuid.UUID) (*Order, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		OrderedAt:         time.Now(),
		Status:            OrderStatusPending,
		Total:             decimal.Zero,
		TotalPaid:         decimal.Zero,
		Lines:             make([]OrderLine, 0),
	}, nil
}

// AddLine appends a line and recomputes the total. Only valid during order
// assembly: once a payment has been recorded or the order left PENDING, the
// line list is frozen.
func (o *Order) AddLine(productID uuid.UUID, productName string, quantity int, unitPrice valueobject.Money) (*OrderLine, error) {
	if o.Status != OrderStatusPending || !o.TotalPaid.IsZero() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add lines to an order after payment or state change")
	}

	line, err := NewOrderLine(o.ID, productID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Lines = append(o.Lines, *line)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()

	return line, nil
}

// Remaining returns the outstanding balance, recomputed from the
// authoritative total and paid amount
func (o *Order) Remaining() decimal.Decimal {
	return valueobject.Remaining(o.Total, o.TotalPaid)
}

// ApplyPayment accumulates a payment amount against the order and promotes
// it to PAID when the remaining balance settles within tolerance.
// The caller must hold the order row lock for the whole check-and-update.
func (o *Order) ApplyPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if o.Status == OrderStatusPaid {
		return ErrOrderAlreadySettled
	}
	if o.Status == OrderStatusReturned {
		return ErrOrderReturned
	}

	remaining := o.Remaining()
	if amount.GreaterThan(remaining) {
		return NewOverPaymentError(remaining)
	}

	o.TotalPaid = o.TotalPaid.Add(amount)
	if valueobject.IsSettled(remaining.Sub(amount)) {
		o.Status = OrderStatusPaid
	}
	o.UpdatedAt = time.Now()

	return nil
}

// MarkReturned transitions the order into its terminal RETURNED state and
// erases the paid amount. Idempotency is enforced by the caller through the
// one-return-per-order invariant.
func (o *Order) MarkReturned() error {
	if o.Status == OrderStatusReturned {
		return ErrAlreadyReturned
	}

	o.Status = OrderStatusReturned
	o.TotalPaid = decimal.Zero
	o.UpdatedAt = time.Now()

	return nil
}

// SetTakeOutOfBusiness records the post-return goods disposition
func (o *Order) SetTakeOutOfBusiness(v bool) {
	o.TakeOutOfBusiness = &v
	o.UpdatedAt = time.Now()
}

// IsPending returns true if the order awaits payment
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsPaid returns true if the order is fully paid
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// IsReturned returns true if the order has been returned
func (o *Order) IsReturned() bool {
	return o.Status == OrderStatusReturned
}

// LineCount returns the number of lines in the order
func (o *Order) LineCount() int {
	return len(o.Lines)
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal)
	}
	o.Total = total
}
