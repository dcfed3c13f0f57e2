package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []CartItem{
		{GameID: 1, UnitPrice: 10000, Quantity: 3},
		{GameID: 2, UnitPrice: 5000, Quantity: 2},
	}

	t.Run("regular user pays full price", func(t *testing.T) {
		totals := ComputeTotals(items, RoleUser)
		assert.Equal(t, int64(40000), totals.Subtotal)
		assert.Equal(t, int64(0), totals.Discount)
		assert.Equal(t, int64(40000), totals.Total)
	})

	t.Run("moderator gets 15 percent off", func(t *testing.T) {
		totals := ComputeTotals(items, RoleModerator)
		assert.Equal(t, int64(40000), totals.Subtotal)
		assert.Equal(t, int64(6000), totals.Discount)
		assert.Equal(t, int64(34000), totals.Total)
	})

	t.Run("discount truncates toward zero", func(t *testing.T) {
		totals := ComputeTotals([]CartItem{{UnitPrice: 999, Quantity: 1}}, RoleModerator)
		assert.Equal(t, int64(149), totals.Discount)
		assert.Equal(t, int64(850), totals.Total)
	})

	t.Run("empty cart is all zeros", func(t *testing.T) {
		totals := ComputeTotals(nil, RoleModerator)
		assert.Equal(t, CartTotals{}, totals)
	})
}

func TestItemCount(t *testing.T) {
	items := []CartItem{
		{Quantity: 3},
		{Quantity: 2},
	}
	assert.Equal(t, 5, ItemCount(items))
	assert.Equal(t, 0, ItemCount(nil))
}

func TestFormatCLP(t *testing.T) {
	assert.Equal(t, "$0", FormatCLP(0))
	assert.Equal(t, "$999", FormatCLP(999))
	assert.Equal(t, "$1.000", FormatCLP(1000))
	assert.Equal(t, "$49.990", FormatCLP(49990))
	assert.Equal(t, "$1.234.567", FormatCLP(1234567))
	assert.Equal(t, "-$6.000", FormatCLP(-6000))
}
