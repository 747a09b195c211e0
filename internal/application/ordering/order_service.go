package ordering

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OrderService handles order creation and queries
type OrderService struct {
	uow       ordering.UnitOfWork
	orderRepo ordering.OrderRepository
	stock     *catalog.StockService
}

// NewOrderService creates a new OrderService
func NewOrderService(uow ordering.UnitOfWork, orderRepo ordering.OrderRepository, stock *catalog.StockService) *OrderService {
	return &OrderService{
		uow:       uow,
		orderRepo: orderRepo,
		stock:     stock,
	}
}

// Create creates an order atomically: client check, line pricing, stock
// reservation and persistence commit or roll back together. An immediate
// payment, when present, must equal the computed total and starts the order
// in the paid state.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	var resp OrderResponse

	err := s.uow.Execute(ctx, func(tx ordering.TxRepositories) error {
		exists, err := tx.Clients().Exists(ctx, req.ClientID)
		if err != nil {
			return err
		}
		if !exists {
			return ordering.ErrClientNotFound
		}

		order, err := ordering.NewOrder(req.ClientID)
		if err != nil {
			return err
		}

		stockLines := make([]catalog.StockLine, 0, len(req.Lines))
		for _, input := range req.Lines {
			product, err := tx.Products().FindByID(ctx, input.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return ordering.NewProductNotFoundError(input.ProductID)
				}
				return err
			}

			price := product.SalePrice
			if input.UnitPrice != nil {
				price = *input.UnitPrice
			}

			if _, err := order.AddLine(product.ID, product.Name, input.Quantity, valueobject.NewMoneyCUP(price)); err != nil {
				return err
			}
			stockLines = append(stockLines, catalog.StockLine{ProductID: product.ID, Quantity: input.Quantity})
		}

		if err := s.stock.Reserve(ctx, tx.Products(), stockLines); err != nil {
			return err
		}

		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}

		if req.ImmediatePayment != nil {
			if !req.ImmediatePayment.Amount.Equal(order.Total) {
				return ordering.ErrImmediatePaymentMismatch
			}

			payment, err := ordering.NewPayment(order.ID, req.ImmediatePayment.Amount, req.ImmediatePayment.SourceAccount, req.ImmediatePayment.TransferCode)
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
		}

		resp = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByID retrieves an order with its lines
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ordering.ErrOrderNotFound
		}
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// List retrieves orders, newest first, with optional client and status filters
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.OrderBy = "ordered_at"
	f.OrderDir = "desc"
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	var (
		page *shared.Paginated[ordering.Order]
		err  error
	)
	if filter.ClientID != nil {
		page, err = s.orderRepo.FindByClient(ctx, *filter.ClientID, f)
	} else {
		page, err = s.orderRepo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, ToOrderResponse(&page.Items[i]))
	}
	return responses, page.Total, nil
}

// Update records the post-return goods disposition on an order
func (s *OrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ordering.ErrOrderNotFound
		}
		return nil, err
	}

	order.SetTakeOutOfBusiness(*req.TakeOutOfBusiness)
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}
