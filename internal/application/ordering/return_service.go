package ordering

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReturnService handles full order returns
type ReturnService struct {
	uow        ordering.UnitOfWork
	returnRepo ordering.ReturnRepository
	stock      *catalog.StockService
}

// NewReturnService creates a new ReturnService
func NewReturnService(uow ordering.UnitOfWork, returnRepo ordering.ReturnRepository, stock *catalog.StockService) *ReturnService {
	return &ReturnService{
		uow:        uow,
		returnRepo: returnRepo,
		stock:      stock,
	}
}

// Create returns an order in full: snapshot the lines, restock every
// product, wipe the payment ledger, zero the paid amount and move the order
// to its terminal returned state. Everything commits or rolls back together.
func (s *ReturnService) Create(ctx context.Context, userID uuid.UUID, req CreateReturnRequest) (*ReturnResponse, error) {
	var resp ReturnResponse

	err := s.uow.Execute(ctx, func(tx ordering.TxRepositories) error {
		order, err := tx.Orders().FindByIDForUpdate(ctx, req.OrderID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return ordering.ErrOrderNotFound
			}
			return err
		}

		exists, err := tx.Returns().ExistsForOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return ordering.ErrAlreadyReturned
		}

		// Snapshot before MarkReturned wipes the paid amount
		ret, err := ordering.NewReturn(order, userID, req.Reason, req.Description)
		if err != nil {
			return err
		}

		if err := order.MarkReturned(); err != nil {
			return err
		}

		stockLines := make([]catalog.StockLine, 0, len(order.Lines))
		for _, line := range order.Lines {
			stockLines = append(stockLines, catalog.StockLine{ProductID: line.ProductID, Quantity: line.Quantity})
		}
		if err := s.stock.Restore(ctx, tx.Products(), stockLines); err != nil {
			return err
		}

		if err := tx.Payments().DeleteByOrder(ctx, order.ID); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}
		if err := tx.Returns().Create(ctx, ret); err != nil {
			return err
		}

		resp = ToReturnResponse(ret)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByOrder retrieves the return recorded for an order
func (s *ReturnService) GetByOrder(ctx context.Context, orderID uuid.UUID) (*ReturnResponse, error) {
	ret, err := s.returnRepo.FindByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ordering.ErrReturnNotFound
		}
		return nil, err
	}
	resp := ToReturnResponse(ret)
	return &resp, nil
}

// List retrieves returns, newest first
func (s *ReturnService) List(ctx context.Context, filter ReturnListFilter) ([]ReturnResponse, int64, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.OrderBy = "returned_at"
	f.OrderDir = "desc"

	page, err := s.returnRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReturnResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, ToReturnResponse(&page.Items[i]))
	}
	return responses, page.Total, nil
}
