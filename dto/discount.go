package dto

import "time"

// DiscountResponse là DTO cho response của discount
type DiscountResponse struct {
	ID         uint      `json:"id"`
	TenantID   uint      `json:"tenantId"`
	Code       string    `json:"code"`
	Type       string    `json:"type"`
	Value      float64   `json:"value"`
	MinOrder   float64   `json:"minOrder"`
	Status     int       `json:"status"`
	UsageCount int       `json:"usageCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateDiscountRequest là DTO cho yêu cầu tạo mới discount
type CreateDiscountRequest struct {
	TenantID uint    `json:"tenantId" binding:"required"`
	Code     string  `json:"code" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=percentage fixed"`
	Value    float64 `json:"value" binding:"required"`
	MinOrder float64 `json:"minOrder"`
}

// UpdateDiscountRequest là DTO cho yêu cầu cập nhật discount
type UpdateDiscountRequest struct {
	ID       uint    `json:"id" binding:"required"`
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	MinOrder float64 `json:"minOrder"`
}

// ChangeDiscountStatusRequest là DTO cho yêu cầu thay đổi trạng thái discount
type ChangeDiscountStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// ValidateDiscountRequest là DTO kiểm tra mã cho một giỏ hàng
type ValidateDiscountRequest struct {
	TenantID uint    `json:"tenantId" binding:"required"`
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"min=0"`
}

// ValidateDiscountResponse trả về số tiền giảm, kèm gợi ý mã gần đúng
// khi mã không tồn tại.
type ValidateDiscountResponse struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discountAmount"`
	Suggestion     string  `json:"suggestion,omitempty"`
	Reason         string  `json:"reason,omitempty"`
}
