package jobs

import (
	"log"
	"time"

	apperrors "storefront/errors"
	"storefront/models"
	"storefront/services/notification"
	"storefront/utils"

	"github.com/robfig/cron/v3"
)

// OrphanOrderFinder định nghĩa interface tìm các đơn ghi thiếu lines.
// Ghi đơn chạy trong một transaction nên bình thường không có đơn mồ côi,
// job này là lưới an toàn để phát hiện dữ liệu hỏng từ nguồn khác.
type OrphanOrderFinder interface {
	FindOrdersWithoutLines() ([]models.Order, error)
}

var orphanOrderFinder OrphanOrderFinder
var reconcileDispatcher notification.Dispatcher

// SetOrphanOrderFinder thiết lập implementation cho OrphanOrderFinder
func SetOrphanOrderFinder(finder OrphanOrderFinder) {
	orphanOrderFinder = finder
}

// SetReconcileDispatcher thiết lập dispatcher cho thông báo reconcile
func SetReconcileDispatcher(d notification.Dispatcher) {
	reconcileDispatcher = d
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Đang chạy kiểm tra đơn hàng thiếu lines lúc: %v", now)
		if orphanOrderFinder == nil {
			utils.LogError("Lỗi: OrphanOrderFinder chưa được thiết lập")
			return
		}
		orders, err := orphanOrderFinder.FindOrdersWithoutLines()
		if err != nil {
			utils.LogError("Lỗi khi kiểm tra đơn hàng thiếu lines: %v", err)
			return
		}
		if len(orders) == 0 {
			return
		}
		utils.LogError("Phát hiện %d đơn hàng thiếu lines: %v", len(orders), apperrors.ErrOrderPartial)
		if reconcileDispatcher == nil {
			return
		}
		for _, order := range orders {
			reconcileDispatcher.Notify(notification.Event{
				TenantID: order.TenantID,
				Title:    "Đơn hàng thiếu dữ liệu",
				Body:     notification.OrphanOrderMessage(order.OrderNumber),
				Link:     "/admin/orders",
				Key:      notification.OrphanOrderKey(order.ID, now),
			})
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
