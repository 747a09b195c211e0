package ordering

import (
	"time"

	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Order DTOs ====================

// CreateOrderLineInput is one line of an order creation request
type CreateOrderLineInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	// UnitPrice overrides the catalog price when set (negotiated price)
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// ImmediatePaymentInput is an optional payment recorded atomically with the
// order; it must cover the full order total
type ImmediatePaymentInput struct {
	Amount        decimal.Decimal `json:"amount" binding:"required,dpositive"`
	SourceAccount string          `json:"source_account" binding:"required,min=1,max=64"`
	TransferCode  string          `json:"transfer_code" binding:"omitempty,max=64"`
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	ClientID         uuid.UUID              `json:"client_id" binding:"required"`
	Lines            []CreateOrderLineInput `json:"lines" binding:"required,min=1,dive"`
	ImmediatePayment *ImmediatePaymentInput `json:"immediate_payment"`
}

// UpdateOrderRequest updates the post-return goods disposition flag
type UpdateOrderRequest struct {
	TakeOutOfBusiness *bool `json:"take_out_of_business" binding:"required"`
}

// OrderLineResponse represents an order line in responses
type OrderLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in responses
type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	ClientID          uuid.UUID           `json:"client_id"`
	Status            string              `json:"status"`
	Total             decimal.Decimal     `json:"total"`
	TotalPaid         decimal.Decimal     `json:"total_paid"`
	Remaining         decimal.Decimal     `json:"remaining"`
	TakeOutOfBusiness *bool               `json:"take_out_of_business,omitempty"`
	Lines             []OrderLineResponse `json:"lines"`
	OrderedAt         time.Time           `json:"ordered_at"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=PENDING PAID RETURNED"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToOrderResponse converts an order aggregate to its response DTO
func ToOrderResponse(order *ordering.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}
	return OrderResponse{
		ID:                order.ID,
		ClientID:          order.ClientID,
		Status:            order.Status.String(),
		Total:             order.Total,
		TotalPaid:         order.TotalPaid,
		Remaining:         order.Remaining(),
		TakeOutOfBusiness: order.TakeOutOfBusiness,
		Lines:             lines,
		OrderedAt:         order.OrderedAt,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}

// ==================== Payment DTOs ====================

// RecordPaymentRequest represents a request to record a payment
type RecordPaymentRequest struct {
	OrderID       uuid.UUID       `json:"order_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,dpositive"`
	SourceAccount string          `json:"source_account" binding:"required,min=1,max=64"`
	TransferCode  string          `json:"transfer_code" binding:"omitempty,max=64"`
}

// PaymentResponse represents a payment ledger entry in responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	SourceAccount string          `json:"source_account"`
	TransferCode  string          `json:"transfer_code,omitempty"`
	PaidAt        time.Time       `json:"paid_at"`
}

// PaymentSummaryResponse aggregates the payment state of one order
type PaymentSummaryResponse struct {
	OrderID      uuid.UUID         `json:"order_id"`
	Status       string            `json:"status"`
	Total        decimal.Decimal   `json:"total"`
	TotalPaid    decimal.Decimal   `json:"total_paid"`
	Remaining    decimal.Decimal   `json:"remaining"`
	PaymentCount int               `json:"payment_count"`
	Payments     []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a payment to its response DTO
func ToPaymentResponse(payment *ordering.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Amount:        payment.Amount,
		SourceAccount: payment.SourceAccount,
		TransferCode:  payment.TransferCode,
		PaidAt:        payment.PaidAt,
	}
}

// ==================== Return DTOs ====================

// CreateReturnRequest represents a request to return an order in full
type CreateReturnRequest struct {
	OrderID     uuid.UUID `json:"order_id" binding:"required"`
	Reason      string    `json:"reason" binding:"required,min=1,max=200"`
	Description string    `json:"description" binding:"omitempty,max=1000"`
}

// ReturnedLineResponse is one snapshotted line of a return
type ReturnedLineResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ReturnResponse represents a return in responses
type ReturnResponse struct {
	ID          uuid.UUID              `json:"id"`
	OrderID     uuid.UUID              `json:"order_id"`
	UserID      uuid.UUID              `json:"user_id"`
	Reason      string                 `json:"reason"`
	Description string                 `json:"description,omitempty"`
	Lines       []ReturnedLineResponse `json:"lines"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	ReturnedAt  time.Time              `json:"returned_at"`
}

// ReturnListFilter represents filter options for the return list
type ReturnListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToReturnResponse converts a return to its response DTO
func ToReturnResponse(ret *ordering.Return) ReturnResponse {
	lines := make([]ReturnedLineResponse, 0, len(ret.Lines))
	for _, line := range ret.Lines {
		lines = append(lines, ReturnedLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}
	return ReturnResponse{
		ID:          ret.ID,
		OrderID:     ret.OrderID,
		UserID:      ret.UserID,
		Reason:      ret.Reason,
		Description: ret.Description,
		Lines:       lines,
		TotalAmount: ret.TotalAmount,
		ReturnedAt:  ret.ReturnedAt,
	}
}
