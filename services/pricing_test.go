package services

import (
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
)

func TestPriceOrderSingleLine(t *testing.T) {
	lines := []PricedLine{
		{ItemName: "Trà sữa", Quantity: 2, UnitPrice: 10},
	}

	draft := PriceOrder(lines, 2, models.OrderModeDelivery, 3)

	assert.Equal(t, 20.0, draft.Subtotal)
	assert.Equal(t, 20.0, draft.Lines[0].LineTotal)
	assert.Equal(t, 21.0, draft.Total) // 20 - 2 + 3
}

func TestPriceOrderToppingsPerUnit(t *testing.T) {
	lines := []PricedLine{
		{
			ItemName:  "Trà sữa",
			Quantity:  3,
			UnitPrice: 10,
			Toppings: []PricedTopping{
				{Name: "Trân châu", Price: 1.5},
				{Name: "Pudding", Price: 0.5},
			},
		},
	}

	draft := PriceOrder(lines, 0, models.OrderModeDelivery, 0)

	// LineTotal chỉ gồm giá món, topping cộng riêng vào subtotal theo số lượng
	assert.Equal(t, 30.0, draft.Lines[0].LineTotal)
	assert.Equal(t, 36.0, draft.Subtotal) // 30 + 3*(1.5+0.5)
	assert.Equal(t, 36.0, draft.Total)
}

func TestPriceOrderPickupForcesZeroFee(t *testing.T) {
	lines := []PricedLine{
		{ItemName: "Cơm gà", Quantity: 1, UnitPrice: 15},
	}

	draft := PriceOrder(lines, 0, models.OrderModePickup, 5)

	assert.Equal(t, 0.0, draft.DeliveryFee)
	assert.Equal(t, 15.0, draft.Total)
}

func TestPriceOrderTotalNeverNegative(t *testing.T) {
	lines := []PricedLine{
		{ItemName: "Cà phê", Quantity: 1, UnitPrice: 5},
	}

	// Mã giảm lớn hơn giá trị đơn
	draft := PriceOrder(lines, 100, models.OrderModePickup, 0)

	assert.Equal(t, 0.0, draft.Total)
	assert.Equal(t, 5.0, draft.Subtotal)
}

func TestPriceOrderMultipleLines(t *testing.T) {
	lines := []PricedLine{
		{ItemName: "Trà đào", Quantity: 2, UnitPrice: 8},
		{ItemName: "Bánh mì", Quantity: 1, UnitPrice: 4, Toppings: []PricedTopping{{Name: "Trứng", Price: 1}}},
	}

	draft := PriceOrder(lines, 3, models.OrderModeDelivery, 2)

	assert.Equal(t, 21.0, draft.Subtotal) // 16 + 4 + 1
	assert.Equal(t, 20.0, draft.Total)    // 21 - 3 + 2
	assert.Len(t, draft.Lines, 2)
}
