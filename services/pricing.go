package services

import (
	"storefront/models"
)

// PricedTopping là topping đã chốt giá cho một line
type PricedTopping struct {
	Name  string
	Price float64 // Giá cho 1 đơn vị món
}

// PricedLine là một món đã chốt giá trong draft
type PricedLine struct {
	ItemName    string
	VariantName string
	Quantity    int
	UnitPrice   float64 // Đã gồm chênh lệch biến thể, chưa gồm topping
	LineTotal   float64 // UnitPrice * Quantity
	Note        string
	Toppings    []PricedTopping
}

// OrderDraft là đơn đã tính giá xong, chưa ghi DB
type OrderDraft struct {
	Mode           string
	Lines          []PricedLine
	Subtotal       float64
	DeliveryFee    float64
	DiscountAmount float64
	Total          float64
}

// PriceOrder tính giá cho giỏ hàng: thuần túy, không I/O.
// Server luôn tính lại total, không tin total phía client gửi lên.
// Đơn pickup ép phí giao về 0 bất kể phí truyền vào.
func PriceOrder(lines []PricedLine, discountAmount float64, mode string, deliveryFee float64) OrderDraft {
	subtotal := 0.0
	priced := make([]PricedLine, 0, len(lines))

	for _, line := range lines {
		line.LineTotal = line.UnitPrice * float64(line.Quantity)

		toppingTotal := 0.0
		for _, topping := range line.Toppings {
			toppingTotal += topping.Price
		}

		// Topping tính theo từng đơn vị món
		subtotal += line.LineTotal + toppingTotal*float64(line.Quantity)
		priced = append(priced, line)
	}

	if mode == models.OrderModePickup {
		deliveryFee = 0
	}

	total := subtotal - discountAmount + deliveryFee
	if total < 0 {
		total = 0
	}

	return OrderDraft{
		Mode:           mode,
		Lines:          priced,
		Subtotal:       subtotal,
		DeliveryFee:    deliveryFee,
		DiscountAmount: discountAmount,
		Total:          total,
	}
}
