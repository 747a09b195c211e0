package ordering

import (
	"encoding/json"
	"testing"

	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewReturn(t *testing.T) {
	t.Run("snapshots order lines and total", func(t *testing.T) {
		order := newTestOrder(t)
		price, _ := valueobject.NewMoneyCUPFromString("25.00")
		_, err := order.AddLine(uuid.New(), "Cafe", 2, price)
		require.NoError(t, err)
		_, err = order.AddLine(uuid.New(), "Azucar", 1, price)
		require.NoError(t, err)

		ret, err := NewReturn(order, uuid.New(), "damaged", "box arrived crushed")
		require.NoError(t, err)

		assert.Equal(t, order.ID, ret.OrderID)
		assert.Equal(t, "75.00", ret.TotalAmount.StringFixed(2))
		require.Len(t, ret.Lines, 2)
		assert.Equal(t, "Cafe", ret.Lines[0].ProductName)
		assert.Equal(t, 2, ret.Lines[0].Quantity)
		assert.Equal(t, "50.00", ret.Lines[0].Subtotal.StringFixed(2))
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		order := newTestOrder(t, "10.00")
		_, err := NewReturn(order, uuid.New(), "", "")
		assert.Error(t, err)
	})

	t.Run("rejects missing user", func(t *testing.T) {
		order := newTestOrder(t, "10.00")
		_, err := NewReturn(order, uuid.Nil, "damaged", "")
		assert.Error(t, err)
	})
}

func TestReturnedLinesScan(t *testing.T) {
	t.Run("round trips through JSON column", func(t *testing.T) {
		order := newTestOrder(t, "30.00")
		ret, err := NewReturn(order, uuid.New(), "wrong item", "")
		require.NoError(t, err)

		raw, err := ret.Lines.Value()
		require.NoError(t, err)

		var decoded ReturnedLines
		require.NoError(t, decoded.Scan(raw))
		require.Len(t, decoded, 1)
		assert.Equal(t, ret.Lines[0].ProductID, decoded[0].ProductID)
		assert.True(t, ret.Lines[0].Subtotal.Equal(decoded[0].Subtotal))
	})

	t.Run("scans nil as empty", func(t *testing.T) {
		var lines ReturnedLines
		require.NoError(t, lines.Scan(nil))
		assert.Nil(t, lines)
	})

	t.Run("value is valid JSON array", func(t *testing.T) {
		lines := ReturnedLines{}
		raw, err := lines.Value()
		require.NoError(t, err)
		assert.True(t, json.Valid(raw.([]byte)))
	})
}

func TestNewPayment(t *testing.T) {
	t.Run("creates ledger entry", func(t *testing.T) {
		p, err := NewPayment(uuid.New(), requireDecimal(t, "45.50"), "9225-0699-9999-0001", "TM7XK2")
		require.NoError(t, err)
		assert.Equal(t, "45.50", p.Amount.StringFixed(2))
		assert.Equal(t, "TM7XK2", p.TransferCode)
		assert.False(t, p.PaidAt.IsZero())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), requireDecimal(t, "0"), "9225-0699-9999-0001", "")
		assert.Error(t, err)
	})

	t.Run("rejects empty source account", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), requireDecimal(t, "10.00"), "", "")
		assert.Error(t, err)
	})
}
