package catalog

import (
	"testing"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates valid product", func(t *testing.T) {
		p, err := NewProduct("Rice 1kg", decimal.NewFromInt(250), 10, 5)
		require.NoError(t, err)
		assert.Equal(t, "Rice 1kg", p.Name)
		assert.Equal(t, 10, p.Stock)
		assert.Equal(t, 5, p.MinStock)
		assert.NotEqual(t, p.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("", decimal.NewFromInt(1), 0, 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("X", decimal.NewFromInt(-1), 0, 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct("X", decimal.NewFromInt(1), -1, 0)
		assert.Error(t, err)
	})
}

func TestProductDecrease(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		p, _ := NewProduct("P", decimal.NewFromInt(10), 5, 1)
		require.NoError(t, p.Decrease(2))
		assert.Equal(t, 3, p.Stock)
	})

	t.Run("fails when stock insufficient and leaves stock unchanged", func(t *testing.T) {
		p, _ := NewProduct("P", decimal.NewFromInt(10), 5, 1)
		err := p.Decrease(6)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Contains(t, domainErr.Message, "'P'")
		assert.Contains(t, domainErr.Message, "Available: 5")
		assert.Equal(t, 5, p.Stock)
	})

	t.Run("allows draining stock to zero", func(t *testing.T) {
		p, _ := NewProduct("P", decimal.NewFromInt(10), 5, 1)
		require.NoError(t, p.Decrease(5))
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p, _ := NewProduct("P", decimal.NewFromInt(10), 5, 1)
		assert.Error(t, p.Decrease(0))
		assert.Error(t, p.Decrease(-1))
	})
}

func TestProductIncrease(t *testing.T) {
	t.Run("restores stock", func(t *testing.T) {
		p, _ := NewProduct("P", decimal.NewFromInt(10), 2, 1)
		require.NoError(t, p.Increase(3))
		assert.Equal(t, 5, p.Stock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p, _ := NewProduct("P", decimal.NewFromInt(10), 2, 1)
		assert.Error(t, p.Increase(0))
	})
}

func TestProductIsBelowMinimum(t *testing.T) {
	p, _ := NewProduct("P", decimal.NewFromInt(10), 5, 5)
	assert.False(t, p.IsBelowMinimum())

	require.NoError(t, p.Decrease(1))
	assert.True(t, p.IsBelowMinimum())
}
