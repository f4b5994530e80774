package models

import "time"

// Topping thuộc catalog của tenant. Core chỉ đọc giá,
// việc quản lý menu nằm ở phần admin ngoài phạm vi ledger.
type Topping struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TenantID  uint      `json:"tenantId" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	BasePrice float64   `json:"basePrice"` // Giá mặc định khi biến thể không có giá riêng
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ToppingVariantPrice là giá topping theo từng size/biến thể món.
type ToppingVariantPrice struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ToppingID   uint    `json:"toppingId" gorm:"uniqueIndex:idx_topping_variant;not null"`
	Topping     Topping `json:"-" gorm:"foreignKey:ToppingID"`
	VariantName string  `json:"variantName" gorm:"uniqueIndex:idx_topping_variant;size:64"`
	Price       float64 `json:"price"`
}
