package ordering

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/backoffice/backend/internal/domain/catalog"
	domain "github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	store   *fakeStore
	service *OrderService
	client  *partner.Client
	cafe    *catalog.Product
	azucar  *catalog.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	store := newFakeStore()

	client, err := partner.NewClient("Bodega El Sol", "Calle 23", "Plaza", "La Habana")
	require.NoError(t, err)
	store.addClient(client)

	cafe, err := catalog.NewProduct("Cafe", decimal.RequireFromString("25.00"), 10, 2)
	require.NoError(t, err)
	store.addProduct(cafe)

	azucar, err := catalog.NewProduct("Azucar", decimal.RequireFromString("10.00"), 5, 1)
	require.NoError(t, err)
	store.addProduct(azucar)

	uow := &fakeUnitOfWork{store: store}
	return &orderFixture{
		store:   store,
		service: NewOrderService(uow, &fakeOrderRepo{store: store}, catalog.NewStockService()),
		client:  client,
		cafe:    cafe,
		azucar:  azucar,
	}
}

func TestOrderServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending order and reserves stock", func(t *testing.T) {
		fx := newOrderFixture(t)

		resp, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines: []CreateOrderLineInput{
				{ProductID: fx.cafe.ID, Quantity: 2},
				{ProductID: fx.azucar.ID, Quantity: 3},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "80.00", resp.Total.StringFixed(2))
		assert.True(t, resp.TotalPaid.IsZero())
		require.Len(t, resp.Lines, 2)
		assert.Equal(t, "Cafe", resp.Lines[0].ProductName)
		assert.Equal(t, 8, fx.store.productStock(fx.cafe.ID))
		assert.Equal(t, 2, fx.store.productStock(fx.azucar.ID))
	})

	t.Run("price override replaces catalog price", func(t *testing.T) {
		fx := newOrderFixture(t)
		override := decimal.RequireFromString("20.00")

		resp, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: fx.cafe.ID, Quantity: 2, UnitPrice: &override}},
		})
		require.NoError(t, err)
		assert.Equal(t, "40.00", resp.Total.StringFixed(2))
	})

	t.Run("unknown client rejected", func(t *testing.T) {
		fx := newOrderFixture(t)

		_, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: uuid.New(),
			Lines:    []CreateOrderLineInput{{ProductID: fx.cafe.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
		assert.Equal(t, 10, fx.store.productStock(fx.cafe.ID))
	})

	t.Run("unknown product rejected with its id", func(t *testing.T) {
		fx := newOrderFixture(t)
		missing := uuid.New()

		_, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: missing, Quantity: 1}},
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
		assert.Contains(t, domainErr.Message, missing.String())
	})

	t.Run("insufficient stock rolls back whole order", func(t *testing.T) {
		fx := newOrderFixture(t)

		_, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines: []CreateOrderLineInput{
				{ProductID: fx.cafe.ID, Quantity: 2},
				{ProductID: fx.azucar.ID, Quantity: 6},
			},
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Contains(t, domainErr.Message, "Azucar")

		assert.Equal(t, 10, fx.store.productStock(fx.cafe.ID), "first line's reservation must roll back")
		assert.Empty(t, fx.store.orders)
	})

	t.Run("immediate payment covering full total starts order paid", func(t *testing.T) {
		fx := newOrderFixture(t)

		resp, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: fx.cafe.ID, Quantity: 2}},
			ImmediatePayment: &ImmediatePaymentInput{
				Amount:        decimal.RequireFromString("50.00"),
				SourceAccount: "9225-0699-9999-0001",
				TransferCode:  "TM1ABC",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "PAID", resp.Status)
		assert.Equal(t, "50.00", resp.TotalPaid.StringFixed(2))
		assert.Equal(t, 1, fx.store.paymentCount(resp.ID))
	})

	t.Run("partial immediate payment rejected", func(t *testing.T) {
		fx := newOrderFixture(t)

		_, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: fx.cafe.ID, Quantity: 2}},
			ImmediatePayment: &ImmediatePaymentInput{
				Amount:        decimal.RequireFromString("30.00"),
				SourceAccount: "9225-0699-9999-0001",
			},
		})
		assert.ErrorIs(t, err, domain.ErrImmediatePaymentMismatch)
		assert.Equal(t, 10, fx.store.productStock(fx.cafe.ID))
		assert.Empty(t, fx.store.orders)
	})

	t.Run("concurrent orders over shared stock admit exactly one", func(t *testing.T) {
		fx := newOrderFixture(t)

		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = fx.service.Create(ctx, CreateOrderRequest{
					ClientID: fx.client.ID,
					Lines:    []CreateOrderLineInput{{ProductID: fx.azucar.ID, Quantity: 3}},
				})
			}(i)
		}
		wg.Wait()

		var failed []error
		for _, err := range errs {
			if err != nil {
				failed = append(failed, err)
			}
		}
		require.Len(t, failed, 1, "stock of 5 admits only one order of 3")
		var domainErr *shared.DomainError
		require.True(t, errors.As(failed[0], &domainErr))
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)

		assert.Equal(t, 2, fx.store.productStock(fx.azucar.ID))
		assert.Len(t, fx.store.orders, 1)
	})
}

func TestOrderServiceQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("get by id returns order with remaining", func(t *testing.T) {
		fx := newOrderFixture(t)
		created, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: fx.cafe.ID, Quantity: 1}},
		})
		require.NoError(t, err)

		got, err := fx.service.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "25.00", got.Remaining.StringFixed(2))
	})

	t.Run("get unknown order", func(t *testing.T) {
		fx := newOrderFixture(t)
		_, err := fx.service.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("list filters by status", func(t *testing.T) {
		fx := newOrderFixture(t)
		_, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: fx.cafe.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		_, err = fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: fx.azucar.ID, Quantity: 1}},
			ImmediatePayment: &ImmediatePaymentInput{
				Amount:        decimal.RequireFromString("10.00"),
				SourceAccount: "9225-0699-9999-0001",
			},
		})
		require.NoError(t, err)

		pending, total, err := fx.service.List(ctx, OrderListFilter{Status: "PENDING"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, pending, 1)
		assert.Equal(t, "PENDING", pending[0].Status)
	})

	t.Run("update sets disposition flag", func(t *testing.T) {
		fx := newOrderFixture(t)
		created, err := fx.service.Create(ctx, CreateOrderRequest{
			ClientID: fx.client.ID,
			Lines:    []CreateOrderLineInput{{ProductID: fx.cafe.ID, Quantity: 1}},
		})
		require.NoError(t, err)

		flag := true
		updated, err := fx.service.Update(ctx, created.ID, UpdateOrderRequest{TakeOutOfBusiness: &flag})
		require.NoError(t, err)
		require.NotNil(t, updated.TakeOutOfBusiness)
		assert.True(t, *updated.TakeOutOfBusiness)
	})
}
