package models

import (
	"fmt"
	"time"
)

// Loại mã giảm giá
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Discount struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TenantID   uint      `json:"tenantId" gorm:"uniqueIndex:idx_tenant_code;not null"`
	Code       string    `json:"code" gorm:"uniqueIndex:idx_tenant_code;size:32;not null"` // Mã giảm, duy nhất trong tenant
	Type       string    `json:"type" gorm:"default:percentage"`                           // percentage | fixed
	Value      float64   `json:"value"`                                                    // % hoặc số tiền cố định
	MinOrder   float64   `json:"minOrder" gorm:"default:0"`                                // Giá trị đơn tối thiểu để áp mã
	Status     int       `json:"status" gorm:"default:1"`                                  // 1: Active, 0: Inactive
	UsageCount int       `json:"usageCount" gorm:"default:0"`                              // Số lần đã dùng, chỉ tăng
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *Discount) ValidateStatusDiscount() error {
	if d.Status < 0 || d.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", d.Status)
	}
	return nil
}

func (d *Discount) ValidateTypeDiscount() error {
	if d.Type != DiscountTypePercentage && d.Type != DiscountTypeFixed {
		return fmt.Errorf("invalid Type: %s, must be percentage or fixed", d.Type)
	}
	if d.Type == DiscountTypePercentage && (d.Value < 0 || d.Value > 100) {
		return fmt.Errorf("invalid Value: %f, percentage must be between 0 and 100", d.Value)
	}
	return nil
}

// AmountFor tính số tiền được giảm cho một subtotal.
func (d *Discount) AmountFor(subtotal float64) float64 {
	if d.Type == DiscountTypePercentage {
		return subtotal * d.Value / 100
	}
	if d.Value > subtotal {
		return subtotal
	}
	return d.Value
}
