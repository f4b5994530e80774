package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusCompleted = 2
	OrderStatusCancelled = 3
)

// Order mode constants
const (
	OrderModeDelivery = "delivery"
	OrderModePickup   = "pickup"
)

type Order struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	TenantID       uint          `json:"tenantId" gorm:"uniqueIndex:idx_tenant_number;not null"`
	Tenant         Tenant        `json:"-" gorm:"foreignKey:TenantID"`
	OrderNumber    int64         `json:"orderNumber" gorm:"uniqueIndex:idx_tenant_number;not null"` // Số thứ tự đơn theo từng tenant
	CustomerName   string        `json:"customerName"`
	CustomerPhone  string        `json:"customerPhone"`
	CustomerEmail  string        `json:"customerEmail,omitempty"`
	Address        string        `json:"address,omitempty"`
	Mode           string        `json:"mode" gorm:"default:delivery"` // delivery | pickup
	DeliveryZoneID *uint         `json:"deliveryZoneId"`               // Đơn pickup không có khu vực giao
	DeliveryZone   *DeliveryZone `json:"deliveryZone,omitempty" gorm:"foreignKey:DeliveryZoneID"`
	Subtotal       float64       `json:"subtotal"`       // Tổng tiền món (đã gồm topping)
	DeliveryFee    float64       `json:"deliveryFee"`    // Phí giao hàng
	DiscountAmount float64       `json:"discountAmount"` // Số tiền được giảm
	TotalPrice     float64       `json:"totalPrice"`     // Subtotal - DiscountAmount + DeliveryFee
	DiscountCode   *string       `json:"discountCode"`
	Status         int           `json:"status"`
	ScheduledAt    *time.Time    `json:"scheduledAt,omitempty"` // Giờ hẹn nhận/giao nếu có
	Note           string        `json:"note,omitempty"`
	Lines          []OrderLine   `json:"lines" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// OrderLine chụp lại thông tin món tại thời điểm đặt,
// sửa menu sau này không làm thay đổi lịch sử đơn.
type OrderLine struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	OrderID     uint               `json:"orderId" gorm:"index;not null"`
	ItemName    string             `json:"itemName" gorm:"not null"`
	VariantName string             `json:"variantName"` // Size/biến thể đã chọn
	Quantity    int                `json:"quantity" gorm:"not null"`
	UnitPrice   float64            `json:"unitPrice"` // Giá theo biến thể, chưa gồm topping
	LineTotal   float64            `json:"lineTotal"` // UnitPrice * Quantity
	Note        string             `json:"note,omitempty"`
	Toppings    []OrderLineTopping `json:"toppings" gorm:"foreignKey:OrderLineID"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"createdAt"`
}

// OrderLineTopping lưu giá topping thực tế đã tính cho line đó.
type OrderLineTopping struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	OrderLineID uint    `json:"orderLineId" gorm:"index;not null"`
	ToppingName string  `json:"toppingName" gorm:"not null"`
	Price       float64 `json:"price"` // Giá đã áp cho 1 đơn vị món
}

// OrderCounter là hàng đếm số đơn theo tenant, tăng nguyên tử
// để hai checkout đồng thời không trùng số.
type OrderCounter struct {
	TenantID   uint  `gorm:"primaryKey" json:"tenantId"`
	LastNumber int64 `gorm:"not null;default:0" json:"lastNumber"`
}
