package ordering

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentService handles payment recording and queries
type PaymentService struct {
	uow         ordering.UnitOfWork
	orderRepo   ordering.OrderRepository
	paymentRepo ordering.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(uow ordering.UnitOfWork, orderRepo ordering.OrderRepository, paymentRepo ordering.PaymentRepository) *PaymentService {
	return &PaymentService{
		uow:         uow,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

// Record appends a payment to the order's ledger. The order row is locked
// for the whole check-and-update, so concurrent payments against one order
// serialize and the second sees the first's balance.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	var resp PaymentResponse

	err := s.uow.Execute(ctx, func(tx ordering.TxRepositories) error {
		order, err := tx.Orders().FindByIDForUpdate(ctx, req.OrderID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return ordering.ErrOrderNotFound
			}
			return err
		}

		payment, err := ordering.NewPayment(order.ID, req.Amount, req.SourceAccount, req.TransferCode)
		if err != nil {
			return err
		}

		if err := order.ApplyPayment(payment.Amount); err != nil {
			return err
		}

		if err := tx.Payments().Create(ctx, payment); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}

		resp = ToPaymentResponse(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByID retrieves one payment ledger entry
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ordering.ErrPaymentNotFound
		}
		return nil, err
	}
	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// ListByOrder retrieves all payments recorded against an order
func (s *PaymentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]PaymentResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ordering.ErrOrderNotFound
		}
		return nil, err
	}

	payments, err := s.paymentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}
	return responses, nil
}

// Summary reports the payment state of an order: totals, outstanding
// balance and the full ledger
func (s *PaymentService) Summary(ctx context.Context, orderID uuid.UUID) (*PaymentSummaryResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ordering.ErrOrderNotFound
		}
		return nil, err
	}

	payments, err := s.paymentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rows := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		rows = append(rows, ToPaymentResponse(&payments[i]))
	}

	return &PaymentSummaryResponse{
		OrderID:      order.ID,
		Status:       order.Status.String(),
		Total:        order.Total,
		TotalPaid:    order.TotalPaid,
		Remaining:    order.Remaining(),
		PaymentCount: len(rows),
		Payments:     rows,
	}, nil
}
