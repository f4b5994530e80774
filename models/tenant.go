package models

import (
	"fmt"
	"time"
)

// Loại phí hoa hồng của tenant
const (
	FeeTypePercentage = "percentage"
	FeeTypeFixed      = "fixed"
)

type Tenant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"unique;size:64"` // Định danh storefront trên URL
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FeeType   string    `json:"feeType" gorm:"default:percentage"` // percentage | fixed
	FeeValue  float64   `json:"feeValue" gorm:"default:0"`         // % hoa hồng nếu là percentage
	Status    int       `json:"status" gorm:"default:1"`           // 1: Active, 0: Inactive
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (t *Tenant) ValidateFeeConfig() error {
	if t.FeeType != FeeTypePercentage && t.FeeType != FeeTypeFixed {
		return fmt.Errorf("invalid FeeType: %s, must be percentage or fixed", t.FeeType)
	}
	if t.FeeValue < 0 {
		return fmt.Errorf("invalid FeeValue: %f, must be >= 0", t.FeeValue)
	}
	if t.FeeType == FeeTypePercentage && t.FeeValue > 100 {
		return fmt.Errorf("invalid FeeValue: %f, percentage must be between 0 and 100", t.FeeValue)
	}
	return nil
}
