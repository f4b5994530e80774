package dto

// MonthRevenue là một dòng tổng hợp doanh thu theo tháng
type MonthRevenue struct {
	Month        string  `json:"month"` // "2006-01"
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
	FeeAmount    float64 `json:"feeAmount"`
}

// RevenueSummaryResponse là DTO tổng hợp doanh thu của một tenant
type RevenueSummaryResponse struct {
	TenantID        uint           `json:"tenantId"`
	TotalRevenue    float64        `json:"totalRevenue"`
	TotalOrders     int            `json:"totalOrders"`
	TotalFee        float64        `json:"totalFee"`
	LastOrderNumber int64          `json:"lastOrderNumber"`
	Monthly         []MonthRevenue `json:"monthly"`
}
