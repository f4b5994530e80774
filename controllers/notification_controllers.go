package controllers

import (
	"strconv"

	"storefront/config"
	"storefront/models"
	"storefront/response"

	"github.com/gin-gonic/gin"
)

// GetNotifications trả thông báo của tenant đang đăng nhập, mới nhất trước
func GetNotifications(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	pageStr := c.Query("page")
	limitStr := c.Query("limit")

	page := 0
	limit := 20
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

	tx := config.DB.Model(&models.Notification{}).Where("tenant_id = ?", tenantID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var notifications []models.Notification
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, notifications, page, limit, int(total))
}
