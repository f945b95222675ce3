package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add_MergesSameProduct(t *testing.T) {
	cart := NewCart()

	cart.Add(OrderLine{ProductID: 1, Name: "Olive Oil 1L", Price: decimal.RequireFromString("12.50"), Quantity: 1})
	cart.Add(OrderLine{ProductID: 1, Name: "Olive Oil 1L", Price: decimal.RequireFromString("12.50"), Quantity: 2})

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 3, cart.Lines()[0].Quantity)
}

func TestCart_Add_IgnoresNonPositiveQuantity(t *testing.T) {
	cart := NewCart()

	cart.Add(OrderLine{ProductID: 1, Quantity: 0})
	cart.Add(OrderLine{ProductID: 2, Quantity: -3})

	assert.Equal(t, 0, cart.Len())
}

func TestCart_Add_KeepsInsertionOrder(t *testing.T) {
	cart := NewCart()

	cart.Add(OrderLine{ProductID: 5, Quantity: 1})
	cart.Add(OrderLine{ProductID: 2, Quantity: 1})
	cart.Add(OrderLine{ProductID: 9, Quantity: 1})

	var ids []int64
	for _, line := range cart.Lines() {
		ids = append(ids, line.ProductID)
	}
	assert.Equal(t, []int64{5, 2, 9}, ids)
}

func TestCart_Remove_DecrementsQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(OrderLine{ProductID: 1, Quantity: 3})

	cart.Remove(1, 2)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCart_Remove_DropsLineAtZero(t *testing.T) {
	cart := NewCart()
	cart.Add(OrderLine{ProductID: 1, Quantity: 2})

	cart.Remove(1, 2)

	assert.Equal(t, 0, cart.Len())
}

func TestCart_Remove_OverRemovalDropsLine(t *testing.T) {
	cart := NewCart()
	cart.Add(OrderLine{ProductID: 1, Quantity: 1})

	cart.Remove(1, 10)

	assert.Equal(t, 0, cart.Len())
}

func TestCart_Remove_UnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(OrderLine{ProductID: 1, Quantity: 1})

	cart.Remove(99, 1)

	assert.Equal(t, 1, cart.Len())
}

func TestCart_Total_SumsLinesPlusDeliveryFee(t *testing.T) {
	cart := NewCart()
	cart.Add(OrderLine{ProductID: 1, Price: decimal.RequireFromString("12.50"), Quantity: 2})
	cart.Add(OrderLine{ProductID: 2, Price: decimal.RequireFromString("4.25"), Quantity: 1})

	total := cart.Total(decimal.NewFromInt(3))

	// 12.50*2 + 4.25 + 3 = 32.25
	assert.True(t, total.Equal(decimal.RequireFromString("32.25")), "got %s", total)
}

func TestCart_Total_EmptyCartIsJustTheFee(t *testing.T) {
	cart := NewCart()

	total := cart.Total(decimal.NewFromInt(3))

	assert.True(t, total.Equal(decimal.NewFromInt(3)))
}

func TestCart_Total_RoundsToTwoDecimals(t *testing.T) {
	cart := NewCart()
	cart.Add(OrderLine{ProductID: 1, Price: decimal.RequireFromString("0.333"), Quantity: 3})

	total := cart.Total(decimal.Zero)

	assert.True(t, total.Equal(decimal.RequireFromString("1.00")), "got %s", total)
}
