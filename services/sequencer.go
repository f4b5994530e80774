package services

import (
	"storefront/models"

	"gorm.io/gorm"
)

// OrderSequencer cấp số đơn tuần tự theo từng tenant.
// Không quét max(order_number) rồi +1 vì hai checkout đồng thời
// sẽ đọc cùng một max; thay vào đó dùng một hàng đếm riêng và
// một câu upsert nguyên tử trả luôn số mới.
type OrderSequencer struct {
	db *gorm.DB
}

func NewOrderSequencer(db *gorm.DB) *OrderSequencer {
	return &OrderSequencer{db: db}
}

// Next cấp số đơn tiếp theo cho tenant, bắt đầu từ 1.
func (s *OrderSequencer) Next(tenantID uint) (int64, error) {
	var next int64
	err := s.db.Raw(`
		INSERT INTO order_counters (tenant_id, last_number)
		VALUES (?, 1)
		ON CONFLICT (tenant_id)
		DO UPDATE SET last_number = order_counters.last_number + 1
		RETURNING last_number`, tenantID).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Peek đọc số đơn đã cấp gần nhất mà không cấp số mới,
// phục vụ màn hình tổng quan doanh thu.
func (s *OrderSequencer) Peek(tenantID uint) (int64, error) {
	var counter models.OrderCounter
	if err := s.db.First(&counter, "tenant_id = ?", tenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return counter.LastNumber, nil
}
