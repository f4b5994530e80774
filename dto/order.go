package dto

import "time"

// CreateOrderToppingRequest là topping gắn vào một line của giỏ hàng.
// Price là giá client đã tính sẵn (per-variant); nếu bỏ trống thì
// server tra giá biến thể rồi tới giá gốc của topping.
type CreateOrderToppingRequest struct {
	ToppingID uint     `json:"toppingId"`
	Name      string   `json:"name" binding:"required"`
	Price     *float64 `json:"price"`
}

// CreateOrderLineRequest là một món trong giỏ hàng
type CreateOrderLineRequest struct {
	ItemName    string                      `json:"itemName" binding:"required"`
	VariantName string                      `json:"variantName"`
	Quantity    int                         `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64                     `json:"unitPrice" binding:"min=0"` // Đã gồm chênh lệch biến thể, chưa gồm topping
	Note        string                      `json:"note"`
	Toppings    []CreateOrderToppingRequest `json:"toppings"`
}

// CreateOrderRequest là DTO cho yêu cầu tạo đơn từ trang checkout
type CreateOrderRequest struct {
	TenantID       uint                     `json:"tenantId" binding:"required"`
	CustomerName   string                   `json:"customerName" binding:"required"`
	CustomerPhone  string                   `json:"customerPhone" binding:"required"`
	CustomerEmail  string                   `json:"customerEmail"`
	Address        string                   `json:"address"`
	Mode           string                   `json:"mode" binding:"required,oneof=delivery pickup"`
	DeliveryZoneID *uint                    `json:"deliveryZoneId"`
	DeliveryFee    float64                  `json:"deliveryFee" binding:"min=0"` // Phí báo giá theo khu vực đã chọn
	DiscountCode   string                   `json:"discountCode"`
	DiscountAmount float64                  `json:"discountAmount" binding:"min=0"` // Đã validate ở bước áp mã
	ScheduledAt    *time.Time               `json:"scheduledAt"`
	Note           string                   `json:"note"`
	Lines          []CreateOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreateOrderResponse là DTO phản hồi sau khi tạo đơn.
// Chỉ có hai trạng thái nhìn từ phía khách: tạo thành công với số đơn,
// hoặc lỗi tạo đơn; các side-effect degrade không lộ ra ngoài.
type CreateOrderResponse struct {
	Success     bool  `json:"success"`
	OrderID     uint  `json:"orderId"`
	OrderNumber int64 `json:"orderNumber"`
}

// OrderToppingResponse là topping trong chi tiết đơn
type OrderToppingResponse struct {
	ToppingName string  `json:"toppingName"`
	Price       float64 `json:"price"`
}

// OrderLineResponse là một line trong chi tiết đơn
type OrderLineResponse struct {
	ID          uint                   `json:"id"`
	ItemName    string                 `json:"itemName"`
	VariantName string                 `json:"variantName"`
	Quantity    int                    `json:"quantity"`
	UnitPrice   float64                `json:"unitPrice"`
	LineTotal   float64                `json:"lineTotal"`
	Note        string                 `json:"note,omitempty"`
	Toppings    []OrderToppingResponse `json:"toppings"`
}

// OrderResponse là DTO cho response của order
type OrderResponse struct {
	ID             uint                `json:"id"`
	OrderNumber    int64               `json:"orderNumber"`
	TenantID       uint                `json:"tenantId"`
	CustomerName   string              `json:"customerName"`
	CustomerPhone  string              `json:"customerPhone"`
	CustomerEmail  string              `json:"customerEmail,omitempty"`
	Address        string              `json:"address,omitempty"`
	Mode           string              `json:"mode"`
	DeliveryZoneID *uint               `json:"deliveryZoneId"`
	Subtotal       float64             `json:"subtotal"`
	DeliveryFee    float64             `json:"deliveryFee"`
	DiscountAmount float64             `json:"discountAmount"`
	TotalPrice     float64             `json:"totalPrice"`
	DiscountCode   *string             `json:"discountCode"`
	Status         int                 `json:"status"`
	ScheduledAt    *time.Time          `json:"scheduledAt,omitempty"`
	Lines          []OrderLineResponse `json:"lines"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
