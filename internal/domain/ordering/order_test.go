package ordering

import (
	"errors"
	"testing"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, lineTotals ...string) *Order {
	t.Helper()
	order, err := NewOrder(uuid.New())
	require.NoError(t, err)
	for i, amount := range lineTotals {
		price, err := valueobject.NewMoneyCUPFromString(amount)
		require.NoError(t, err)
		_, err = order.AddLine(uuid.New(), "product", 1, price)
		require.NoError(t, err, "line %d", i)
	}
	return order
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with zero totals", func(t *testing.T) {
		order, err := NewOrder(uuid.New())
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.True(t, order.Total.IsZero())
		assert.True(t, order.TotalPaid.IsZero())
		assert.Nil(t, order.TakeOutOfBusiness)
		assert.Equal(t, 0, order.LineCount())
	})

	t.Run("rejects empty client", func(t *testing.T) {
		_, err := NewOrder(uuid.Nil)
		assert.Error(t, err)
	})
}

func TestOrderAddLine(t *testing.T) {
	t.Run("accumulates total from subtotals", func(t *testing.T) {
		order := newTestOrder(t)
		price, _ := valueobject.NewMoneyCUPFromString("12.50")

		line, err := order.AddLine(uuid.New(), "Cafe", 4, price)
		require.NoError(t, err)
		assert.Equal(t, "50.00", line.Subtotal.StringFixed(2))
		assert.Equal(t, "50.00", order.Total.StringFixed(2))

		_, err = order.AddLine(uuid.New(), "Azucar", 2, price)
		require.NoError(t, err)
		assert.Equal(t, "75.00", order.Total.StringFixed(2))
		assert.Equal(t, 2, order.LineCount())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		order := newTestOrder(t)
		price, _ := valueobject.NewMoneyCUPFromString("10.00")
		_, err := order.AddLine(uuid.New(), "Cafe", 0, price)
		assert.Error(t, err)
	})

	t.Run("freezes lines after payment", func(t *testing.T) {
		order := newTestOrder(t, "100.00")
		require.NoError(t, order.ApplyPayment(decimal.NewFromInt(30)))

		price, _ := valueobject.NewMoneyCUPFromString("10.00")
		_, err := order.AddLine(uuid.New(), "Cafe", 1, price)
		assert.Error(t, err)
	})
}

func TestOrderApplyPayment(t *testing.T) {
	t.Run("partial payment keeps order pending", func(t *testing.T) {
		order := newTestOrder(t, "100.00")

		err := order.ApplyPayment(decimal.RequireFromString("40.00"))
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, "40.00", order.TotalPaid.StringFixed(2))
		assert.Equal(t, "60.00", order.Remaining().StringFixed(2))
	})

	t.Run("exact payment settles the order", func(t *testing.T) {
		order := newTestOrder(t, "100.00")

		require.NoError(t, order.ApplyPayment(decimal.RequireFromString("100.00")))
		assert.Equal(t, OrderStatusPaid, order.Status)
		assert.True(t, order.Remaining().IsZero())
	})

	t.Run("payment within tolerance settles the order", func(t *testing.T) {
		order := newTestOrder(t, "100.00")

		require.NoError(t, order.ApplyPayment(decimal.RequireFromString("99.99")))
		assert.Equal(t, OrderStatusPaid, order.Status)
		assert.Equal(t, "0.01", order.Remaining().StringFixed(2))
	})

	t.Run("payment leaving more than tolerance stays pending", func(t *testing.T) {
		order := newTestOrder(t, "100.00")

		require.NoError(t, order.ApplyPayment(decimal.RequireFromString("99.98")))
		assert.Equal(t, OrderStatusPending, order.Status)
	})

	t.Run("overpayment rejected with remaining balance", func(t *testing.T) {
		order := newTestOrder(t, "100.00")
		require.NoError(t, order.ApplyPayment(decimal.RequireFromString("60.00")))

		err := order.ApplyPayment(decimal.RequireFromString("40.01"))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "OVER_PAYMENT", domainErr.Code)
		assert.Contains(t, domainErr.Message, "40.00")
		assert.Equal(t, "60.00", order.TotalPaid.StringFixed(2), "failed payment must not change the balance")
	})

	t.Run("settled order rejects further payments", func(t *testing.T) {
		order := newTestOrder(t, "50.00")
		require.NoError(t, order.ApplyPayment(decimal.RequireFromString("50.00")))

		err := order.ApplyPayment(decimal.RequireFromString("1.00"))
		assert.ErrorIs(t, err, ErrOrderAlreadySettled)
	})

	t.Run("returned order rejects payments", func(t *testing.T) {
		order := newTestOrder(t, "50.00")
		require.NoError(t, order.MarkReturned())

		err := order.ApplyPayment(decimal.RequireFromString("10.00"))
		assert.ErrorIs(t, err, ErrOrderReturned)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		order := newTestOrder(t, "50.00")
		assert.Error(t, order.ApplyPayment(decimal.Zero))
		assert.Error(t, order.ApplyPayment(decimal.RequireFromString("-5.00")))
	})

	t.Run("many partial payments settle without drift", func(t *testing.T) {
		order := newTestOrder(t, "100.00")
		for i := 0; i < 3; i++ {
			require.NoError(t, order.ApplyPayment(decimal.RequireFromString("33.33")))
		}
		assert.Equal(t, OrderStatusPaid, order.Status, "0.01 remaining is within tolerance")
		assert.Equal(t, "99.99", order.TotalPaid.StringFixed(2))
	})
}

func TestOrderMarkReturned(t *testing.T) {
	t.Run("returns pending order and zeroes paid amount", func(t *testing.T) {
		order := newTestOrder(t, "80.00")
		require.NoError(t, order.ApplyPayment(decimal.RequireFromString("30.00")))

		require.NoError(t, order.MarkReturned())
		assert.Equal(t, OrderStatusReturned, order.Status)
		assert.True(t, order.TotalPaid.IsZero())
	})

	t.Run("returns settled order", func(t *testing.T) {
		order := newTestOrder(t, "80.00")
		require.NoError(t, order.ApplyPayment(decimal.RequireFromString("80.00")))

		require.NoError(t, order.MarkReturned())
		assert.Equal(t, OrderStatusReturned, order.Status)
	})

	t.Run("second return rejected", func(t *testing.T) {
		order := newTestOrder(t, "80.00")
		require.NoError(t, order.MarkReturned())

		err := order.MarkReturned()
		assert.ErrorIs(t, err, ErrAlreadyReturned)
	})
}

func TestSetTakeOutOfBusiness(t *testing.T) {
	order := newTestOrder(t, "10.00")
	require.Nil(t, order.TakeOutOfBusiness)

	order.SetTakeOutOfBusiness(true)
	require.NotNil(t, order.TakeOutOfBusiness)
	assert.True(t, *order.TakeOutOfBusiness)

	order.SetTakeOutOfBusiness(false)
	assert.False(t, *order.TakeOutOfBusiness)
}
