package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"storefront/config"
	"storefront/dto"
	apperrors "storefront/errors"
	"storefront/models"
	"storefront/response"
	"storefront/services"
	"storefront/validator"

	"github.com/gin-gonic/gin"
)

var checkoutFacade *services.CheckoutFacade

// SetCheckoutFacade gắn facade đã wire sẵn từ main
func SetCheckoutFacade(f *services.CheckoutFacade) {
	checkoutFacade = f
}

func convertToOrderResponse(order models.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		toppings := make([]dto.OrderToppingResponse, 0, len(line.Toppings))
		for _, topping := range line.Toppings {
			toppings = append(toppings, dto.OrderToppingResponse{
				ToppingName: topping.ToppingName,
				Price:       topping.Price,
			})
		}
		lines = append(lines, dto.OrderLineResponse{
			ID:          line.ID,
			ItemName:    line.ItemName,
			VariantName: line.VariantName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
			Note:        line.Note,
			Toppings:    toppings,
		})
	}
	return dto.OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		TenantID:       order.TenantID,
		CustomerName:   order.CustomerName,
		CustomerPhone:  order.CustomerPhone,
		CustomerEmail:  order.CustomerEmail,
		Address:        order.Address,
		Mode:           order.Mode,
		DeliveryZoneID: order.DeliveryZoneID,
		Subtotal:       order.Subtotal,
		DeliveryFee:    order.DeliveryFee,
		DiscountAmount: order.DiscountAmount,
		TotalPrice:     order.TotalPrice,
		DiscountCode:   order.DiscountCode,
		Status:         order.Status,
		ScheduledAt:    order.ScheduledAt,
		Lines:          lines,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

// CreateOrder nhận request từ trang checkout công khai, không cần auth
func CreateOrder(c *gin.Context) {
	var request dto.CreateOrderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCreateOrder(&request); err != nil {
		if appErr, ok := apperrors.GetAppError(err); ok {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result, err := checkoutFacade.CreateOrder(c.Request.Context(), request)
	if err != nil {
		if appErr, ok := apperrors.GetAppError(err); ok {
			switch appErr.Code {
			case apperrors.ErrCodeTenantNotFound:
				response.NotFound(c)
			case apperrors.ErrCodeInvalidTenant, apperrors.ErrCodeInvalidOrder, apperrors.ErrCodeInvalidAmount:
				response.BadRequest(c, appErr.Message)
			default:
				response.ServerError(c)
			}
			return
		}
		response.ServerError(c)
		return
	}

	// Xóa cache danh sách đơn của tenant
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		cacheKey := fmt.Sprintf("orders:tenant:%d", request.TenantID)
		_ = services.DeleteFromRedis(config.Ctx, rdb, cacheKey)
	}

	response.Success(c, result)
}

// GetOrders trả danh sách đơn của tenant đang đăng nhập
func GetOrders(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")

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

	cacheKey := fmt.Sprintf("orders:tenant:%d", tenantID)
	rdb, err := config.ConnectRedis()
	if err != nil {
		// Redis chết thì đọc thẳng DB, không chặn màn hình đơn
		orderService := services.NewOrderService(config.DB, services.NewCatalogToppingPricer(config.DB))
		orders, total, err := orderService.ListByTenant(tenantID, page, limit)
		if err != nil {
			response.ServerError(c)
			return
		}
		orderResponses := make([]dto.OrderResponse, 0, len(orders))
		for _, order := range orders {
			orderResponses = append(orderResponses, convertToOrderResponse(order))
		}
		response.SuccessWithPagination(c, orderResponses, page, limit, int(total))
		return
	}

	var allOrders []models.Order

	// Lấy dữ liệu từ Redis Cache
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allOrders); err != nil || len(allOrders) == 0 {
		tx := config.DB.Model(&models.Order{}).
			Preload("Lines.Toppings").
			Where("tenant_id = ?", tenantID).
			Order("order_number desc")

		if err := tx.Find(&allOrders).Error; err != nil {
			response.ServerError(c)
			return
		}

		// Lưu vào Redis Cache
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allOrders, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách đơn hàng vào Redis: %v", err)
		}
	}

	filtered := make([]models.Order, 0, len(allOrders))
	for _, order := range allOrders {
		if statusFilter != "" {
			status, err := strconv.Atoi(statusFilter)
			if err != nil || order.Status != status {
				continue
			}
		}
		filtered = append(filtered, order)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	orderResponses := make([]dto.OrderResponse, 0, end-start)
	for _, order := range filtered[start:end] {
		orderResponses = append(orderResponses, convertToOrderResponse(order))
	}

	response.SuccessWithPagination(c, orderResponses, page, limit, total)
}

// GetOrderDetail trả chi tiết một đơn kèm lines và toppings
func GetOrderDetail(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	orderIDStr := c.Param("id")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "ID đơn hàng không hợp lệ")
		return
	}

	orderService := services.NewOrderService(config.DB, services.NewCatalogToppingPricer(config.DB))
	order, err := orderService.GetByID(tenantID, uint(orderID))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToOrderResponse(*order))
}

// ChangeOrderStatus cập nhật trạng thái đơn (pending → confirmed → completed/cancelled)
func ChangeOrderStatus(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	var request struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Status < models.OrderStatusPending || request.Status > models.OrderStatusCancelled {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	var order models.Order
	if err := config.DB.Where("tenant_id = ?", tenantID).First(&order, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	order.Status = request.Status
	if err := config.DB.Save(&order).Error; err != nil {
		response.ServerError(c)
		return
	}

	//Xóa redis
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		cacheKey := fmt.Sprintf("orders:tenant:%d", order.TenantID)
		_ = services.DeleteFromRedis(context.Background(), rdb, cacheKey)
	}

	response.Success(c, convertToOrderResponse(order))
}
