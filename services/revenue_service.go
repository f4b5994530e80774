package services

import (
	"time"

	"storefront/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevenueService cộng dồn doanh thu theo (tenant, tháng) cho billing.
// Cơ sở tính phí là subtotal của đơn, không gồm phí giao và giảm giá.
type RevenueService struct {
	db *gorm.DB
}

func NewRevenueService(db *gorm.DB) *RevenueService {
	return &RevenueService{db: db}
}

// FeeFor tính hoa hồng nền tảng cho một đơn.
// Tenant trả phí cố định hàng tháng thì từng đơn không đóng góp gì,
// phần đó được tính ở chỗ khác.
func FeeFor(tenant *models.Tenant, subtotal float64) float64 {
	if tenant.FeeType == models.FeeTypePercentage {
		return subtotal * tenant.FeeValue / 100
	}
	return 0
}

// Record upsert dòng (tenant, tháng): chưa có thì tạo với đơn này,
// có rồi thì cộng dồn bằng MỘT câu nguyên tử, không đọc-rồi-ghi,
// để các đơn đồng thời trong cùng tháng không dẫm lên nhau.
func (s *RevenueService) Record(tenant *models.Tenant, subtotal float64, at time.Time) error {
	fee := FeeFor(tenant, subtotal)

	entry := models.TenantRevenue{
		TenantID:     tenant.ID,
		Month:        at.Format("2006-01"),
		TotalRevenue: subtotal,
		TotalOrders:  1,
		FeeAmount:    fee,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_revenue": gorm.Expr("tenant_revenues.total_revenue + ?", subtotal),
			"total_orders":  gorm.Expr("tenant_revenues.total_orders + ?", 1),
			"fee_amount":    gorm.Expr("tenant_revenues.fee_amount + ?", fee),
			"updated_at":    time.Now(),
		}),
	}).Create(&entry).Error
}

// GetMonth đọc dòng tổng hợp của một tháng
func (s *RevenueService) GetMonth(tenantID uint, month string) (*models.TenantRevenue, error) {
	var entry models.TenantRevenue
	err := s.db.Where("tenant_id = ? AND month = ?", tenantID, month).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListMonths đọc các dòng tổng hợp trong khoảng [fromMonth, toMonth],
// bỏ trống thì lấy tất cả, mới nhất trước.
func (s *RevenueService) ListMonths(tenantID uint, fromMonth, toMonth string) ([]models.TenantRevenue, error) {
	tx := s.db.Where("tenant_id = ?", tenantID)
	if fromMonth != "" {
		tx = tx.Where("month >= ?", fromMonth)
	}
	if toMonth != "" {
		tx = tx.Where("month <= ?", toMonth)
	}

	var entries []models.TenantRevenue
	if err := tx.Order("month desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
