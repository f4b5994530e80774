package models

import "time"

type DeliveryZone struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TenantID  uint      `json:"tenantId" gorm:"index;not null"`
	Tenant    Tenant    `json:"-" gorm:"foreignKey:TenantID"`
	Name      string    `json:"name"`                        // Tên khu vực giao hàng
	Fee       float64   `json:"fee" gorm:"default:0"`        // Phí giao hàng cho khu vực
	MinOrder  float64   `json:"minOrder" gorm:"default:0"`   // Giá trị đơn tối thiểu
	Status    int       `json:"status" gorm:"default:1"`     // 1: Active, 0: Inactive
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
