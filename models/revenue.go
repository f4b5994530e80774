package models

import "time"

// TenantRevenue là dòng tổng hợp doanh thu theo (tenant, tháng),
// dùng cho billing. TotalRevenue cộng dồn subtotal của từng đơn
// (không gồm phí giao và giảm giá), FeeAmount là hoa hồng nền tảng.
type TenantRevenue struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID     uint      `gorm:"not null;uniqueIndex:idx_tenant_month" json:"tenantId"`
	Tenant       Tenant    `gorm:"foreignKey:TenantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Month        string    `gorm:"not null;size:7;uniqueIndex:idx_tenant_month" json:"month"` // "2006-01"
	TotalRevenue float64   `gorm:"not null;default:0" json:"totalRevenue"`
	TotalOrders  int       `gorm:"not null;default:0" json:"totalOrders"`
	FeeAmount    float64   `gorm:"not null;default:0" json:"feeAmount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
