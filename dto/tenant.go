package dto

// CreateTenantRequest là DTO cho yêu cầu tạo tenant
type CreateTenantRequest struct {
	Name     string  `json:"name" binding:"required"`
	Slug     string  `json:"slug" binding:"required"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	FeeType  string  `json:"feeType" binding:"required,oneof=percentage fixed"`
	FeeValue float64 `json:"feeValue" binding:"min=0"`
}

// CreateZoneRequest là DTO cho yêu cầu tạo khu vực giao hàng
type CreateZoneRequest struct {
	TenantID uint    `json:"tenantId" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Fee      float64 `json:"fee" binding:"min=0"`
	MinOrder float64 `json:"minOrder"`
}
