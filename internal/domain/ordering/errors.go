package ordering

import (
	"fmt"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// State-conflict errors: rejected preconditions, never retried automatically.
var (
	ErrOrderAlreadySettled = shared.NewDomainError("ORDER_ALREADY_SETTLED", "Order is already fully paid")
	ErrOrderReturned       = shared.NewDomainError("ORDER_RETURNED", "Order has been returned; payments are no longer accepted")
	ErrAlreadyReturned     = shared.NewDomainError("ALREADY_RETURNED", "This order has already been returned")
	// ErrImmediatePaymentMismatch rejects order creation when the inline
	// payment does not equal the computed order total
	ErrImmediatePaymentMismatch = shared.NewDomainError("IMMEDIATE_PAYMENT_MISMATCH", "Immediate payment must equal the order total")
)

// Not-found errors for the order engine's collaborators and entities.
var (
	ErrOrderNotFound   = shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
	ErrPaymentNotFound = shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")
	ErrReturnNotFound  = shared.NewDomainError("RETURN_NOT_FOUND", "No return found for this order")
	ErrClientNotFound  = shared.NewDomainError("CLIENT_NOT_FOUND", "Client not found")
)

// NewProductNotFoundError names the missing product so the caller can fix
// the request
func NewProductNotFoundError(productID uuid.UUID) *shared.DomainError {
	return shared.NewDomainError("PRODUCT_NOT_FOUND", fmt.Sprintf("Product %s not found", productID))
}

// NewOverPaymentError reports the exact remaining balance the payment
// exceeded
func NewOverPaymentError(remaining decimal.Decimal) *shared.DomainError {
	return shared.NewDomainError("OVER_PAYMENT", fmt.Sprintf("Payment amount exceeds remaining balance. Remaining: %s", remaining.StringFixed(2)))
}
