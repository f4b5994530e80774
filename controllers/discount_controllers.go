package controllers

import (
	"errors"
	"strconv"
	"time"

	"storefront/config"
	"storefront/dto"
	apperrors "storefront/errors"
	"storefront/models"
	"storefront/response"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

func convertToDiscountResponse(discount models.Discount) dto.DiscountResponse {
	return dto.DiscountResponse{
		ID:         discount.ID,
		TenantID:   discount.TenantID,
		Code:       discount.Code,
		Type:       discount.Type,
		Value:      discount.Value,
		MinOrder:   discount.MinOrder,
		Status:     discount.Status,
		UsageCount: discount.UsageCount,
		CreatedAt:  discount.CreatedAt,
		UpdatedAt:  discount.UpdatedAt,
	}
}

// GetDiscounts trả danh sách mã giảm giá của tenant đang đăng nhập
func GetDiscounts(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	codeFilter := c.Query("code")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Discount{}).Where("tenant_id = ?", tenantID)
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if codeFilter != "" {
		tx = tx.Where("code LIKE ?", "%"+services.NormalizeCode(codeFilter)+"%")
	}

	var totalDiscounts int64
	if err := tx.Count(&totalDiscounts).Error; err != nil {
		response.ServerError(c)
		return
	}

	var discounts []models.Discount
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&discounts).Error; err != nil {
		response.ServerError(c)
		return
	}

	var discountResponses []dto.DiscountResponse
	for _, discount := range discounts {
		discountResponses = append(discountResponses, convertToDiscountResponse(discount))
	}

	response.SuccessWithPagination(c, discountResponses, page, limit, int(totalDiscounts))
}

func GetDiscountDetail(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	var discount models.Discount
	discountId := c.Param("id")
	if err := config.DB.Where("id = ? AND tenant_id = ?", discountId, tenantID).First(&discount).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, convertToDiscountResponse(discount))
}

func CreateDiscount(c *gin.Context) {
	var request dto.CreateDiscountRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Type == models.DiscountTypePercentage && (request.Value <= 0 || request.Value > 100) {
		response.BadRequest(c, "Mức giảm giá phải nằm trong khoảng từ 0 đến 100")
		return
	}
	if request.Type == models.DiscountTypeFixed && request.Value <= 0 {
		response.BadRequest(c, "Số tiền giảm phải lớn hơn 0")
		return
	}

	code := services.NormalizeCode(request.Code)
	if code == "" {
		response.BadRequest(c, "Mã giảm giá không hợp lệ")
		return
	}

	var existing models.Discount
	if err := config.DB.Where("tenant_id = ? AND code = ?", request.TenantID, code).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	discount := models.Discount{
		TenantID:  request.TenantID,
		Code:      code,
		Type:      request.Type,
		Value:     request.Value,
		MinOrder:  request.MinOrder,
		Status:    1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := config.DB.Create(&discount).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToDiscountResponse(discount))
}

func UpdateDiscount(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	var request dto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var discount models.Discount
	if err := config.DB.Where("tenant_id = ?", tenantID).First(&discount, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Type != "" {
		discount.Type = request.Type
	}
	if request.Value > 0 {
		discount.Value = request.Value
	}
	if request.MinOrder > 0 {
		discount.MinOrder = request.MinOrder
	}
	if err := discount.ValidateTypeDiscount(); err != nil {
		response.BadRequest(c, "Loại giảm giá không hợp lệ")
		return
	}
	discount.UpdatedAt = time.Now()

	if err := config.DB.Save(&discount).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToDiscountResponse(discount))
}

func DeleteDiscount(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	id := c.Param("id")
	result := config.DB.Where("tenant_id = ?", tenantID).Delete(&models.Discount{}, id)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}
	response.Success(c, nil)
}

func ChangeDiscountStatus(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	var request dto.ChangeDiscountStatusRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var discount models.Discount
	if err := config.DB.Where("tenant_id = ?", tenantID).First(&discount, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	discount.Status = request.Status
	if err := discount.ValidateStatusDiscount(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}
	discount.UpdatedAt = time.Now()
	if err := config.DB.Save(&discount).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToDiscountResponse(discount))
}

// ValidateDiscount kiểm tra mã cho một giỏ hàng trước khi checkout.
// Mã không tồn tại thì gợi ý mã gần đúng thay vì chỉ báo lỗi.
func ValidateDiscount(c *gin.Context) {
	var request dto.ValidateDiscountRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	discountService := services.NewDiscountService(config.DB)
	amount, err := discountService.Validate(request.TenantID, request.Code, request.Subtotal)
	if err != nil {
		result := dto.ValidateDiscountResponse{Valid: false}
		switch {
		case errors.Is(err, apperrors.ErrDiscountNotFound):
			result.Reason = "Mã giảm giá không tồn tại"
			result.Suggestion = discountService.Suggest(request.TenantID, request.Code)
		case errors.Is(err, apperrors.ErrDiscountInactive):
			result.Reason = "Mã giảm giá đã bị khóa"
		case errors.Is(err, apperrors.ErrBelowMinOrder):
			result.Reason = "Đơn hàng chưa đạt giá trị tối thiểu"
		default:
			response.ServerError(c)
			return
		}
		response.Success(c, result)
		return
	}

	response.Success(c, dto.ValidateDiscountResponse{
		Valid:          true,
		DiscountAmount: amount,
	})
}
