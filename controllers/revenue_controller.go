package controllers

import (
	"time"

	"storefront/config"
	"storefront/dto"
	"storefront/response"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// GetTenantRevenue trả doanh thu theo tháng của tenant đang đăng nhập.
// Query fromMonth/toMonth dạng "2006-01", mặc định 12 tháng gần nhất.
func GetTenantRevenue(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	fromMonth := c.Query("fromMonth")
	toMonth := c.Query("toMonth")
	now := time.Now()
	if toMonth == "" {
		toMonth = now.Format("2006-01")
	}
	if fromMonth == "" {
		fromMonth = now.AddDate(0, -11, 0).Format("2006-01")
	}
	if _, err := time.Parse("2006-01", fromMonth); err != nil {
		response.BadRequest(c, "Sai định dạng fromMonth")
		return
	}
	if _, err := time.Parse("2006-01", toMonth); err != nil {
		response.BadRequest(c, "Sai định dạng toMonth")
		return
	}

	revenueService := services.NewRevenueService(config.DB)
	rows, err := revenueService.ListMonths(tenantID, fromMonth, toMonth)
	if err != nil {
		response.ServerError(c)
		return
	}

	monthly := make([]dto.MonthRevenue, 0, len(rows))
	for _, row := range rows {
		monthly = append(monthly, dto.MonthRevenue{
			Month:        row.Month,
			TotalRevenue: row.TotalRevenue,
			TotalOrders:  row.TotalOrders,
			FeeAmount:    row.FeeAmount,
		})
	}

	response.Success(c, monthly)
}

// GetRevenueSummary cộng dồn toàn bộ ledger của tenant
func GetRevenueSummary(c *gin.Context) {
	tenantIDVal, exists := c.Get("tenantID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	tenantID := tenantIDVal.(uint)

	revenueService := services.NewRevenueService(config.DB)
	rows, err := revenueService.ListMonths(tenantID, "", "")
	if err != nil {
		response.ServerError(c)
		return
	}

	lastNumber, err := services.NewOrderSequencer(config.DB).Peek(tenantID)
	if err != nil {
		response.ServerError(c)
		return
	}

	summary := dto.RevenueSummaryResponse{TenantID: tenantID, LastOrderNumber: lastNumber}
	for _, row := range rows {
		summary.TotalRevenue += row.TotalRevenue
		summary.TotalOrders += row.TotalOrders
		summary.TotalFee += row.FeeAmount
		summary.Monthly = append(summary.Monthly, dto.MonthRevenue{
			Month:        row.Month,
			TotalRevenue: row.TotalRevenue,
			TotalOrders:  row.TotalOrders,
			FeeAmount:    row.FeeAmount,
		})
	}

	response.Success(c, summary)
}
