package controllers

import (
	"strconv"
	"time"

	"storefront/config"
	"storefront/dto"
	apperrors "storefront/errors"
	"storefront/models"
	"storefront/response"
	"storefront/validator"

	"github.com/gin-gonic/gin"
)

// CreateTenant tạo cửa hàng mới, chỉ super admin được gọi
func CreateTenant(c *gin.Context) {
	var request dto.CreateTenantRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	tenant := models.Tenant{
		Name:      request.Name,
		Slug:      request.Slug,
		Email:     request.Email,
		Phone:     request.Phone,
		FeeType:   request.FeeType,
		FeeValue:  request.FeeValue,
		Status:    1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := validator.ValidateTenant(&tenant); err != nil {
		if appErr, ok := apperrors.GetAppError(err); ok {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.Tenant
	if err := config.DB.Where("slug = ?", tenant.Slug).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	if err := config.DB.Create(&tenant).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, tenant)
}

// GetTenantDetail trả thông tin một cửa hàng theo slug hoặc id
func GetTenantDetail(c *gin.Context) {
	idOrSlug := c.Param("id")

	var tenant models.Tenant
	if tenantID, err := strconv.ParseUint(idOrSlug, 10, 32); err == nil {
		if err := config.DB.First(&tenant, uint(tenantID)).Error; err != nil {
			response.NotFound(c)
			return
		}
	} else {
		if err := config.DB.Where("slug = ?", idOrSlug).First(&tenant).Error; err != nil {
			response.NotFound(c)
			return
		}
	}

	response.Success(c, tenant)
}

// CreateZone thêm khu vực giao hàng cho tenant
func CreateZone(c *gin.Context) {
	var request dto.CreateZoneRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var tenant models.Tenant
	if err := config.DB.First(&tenant, request.TenantID).Error; err != nil {
		response.NotFound(c)
		return
	}

	zone := models.DeliveryZone{
		TenantID:  request.TenantID,
		Name:      request.Name,
		Fee:       request.Fee,
		MinOrder:  request.MinOrder,
		Status:    1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := config.DB.Create(&zone).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, zone)
}

// GetZones trả danh sách khu vực giao hàng đang hoạt động của tenant
func GetZones(c *gin.Context) {
	tenantIDStr := c.Query("tenantId")
	tenantID, err := strconv.ParseUint(tenantIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "ID tenant không hợp lệ")
		return
	}

	var zones []models.DeliveryZone
	if err := config.DB.Where("tenant_id = ? AND status = 1", uint(tenantID)).Order("fee asc").Find(&zones).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, zones)
}
