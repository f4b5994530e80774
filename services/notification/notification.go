package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront/models"
	"storefront/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// Event là sự kiện "có đơn mới" gửi cho tenant.
// Key là token idempotency ổn định theo đơn, transport có retry
// nội bộ thì dựa vào đó để không push trùng.
type Event struct {
	TenantID uint
	Title    string
	Body     string
	Link     string
	Key      string
}

// Result đếm số kênh gửi được và số kênh hỏng
type Result struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

// Dispatcher là capability duy nhất mà ledger core cần:
// best-effort, at-least-once, không bao giờ làm hỏng request tạo đơn.
type Dispatcher interface {
	Notify(event Event) Result
}

// Service fan-out sự kiện ra bản ghi in-app và broadcast websocket
type Service struct {
	db     *gorm.DB
	m      *melody.Melody
	logger logger.Logger
}

func NewService(db *gorm.DB, m *melody.Melody, log logger.Logger) *Service {
	return &Service{db: db, m: m, logger: log}
}

// Notify gửi sự kiện trên mọi kênh. Mọi lỗi đều chỉ được log,
// kết quả trả về mang tính thông tin cho caller.
func (s *Service) Notify(event Event) Result {
	var result Result

	record := models.Notification{
		TenantID: event.TenantID,
		Title:    event.Title,
		Body:     event.Body,
		Link:     event.Link,
		Key:      event.Key,
	}
	if err := s.db.Create(&record).Error; err != nil {
		s.logger.Error("Lỗi ghi notification cho tenant %d: %v", event.TenantID, err)
		result.Failed++
	} else {
		result.Delivered++
	}

	if s.m != nil {
		payload, err := json.Marshal(map[string]interface{}{
			"tenantId": event.TenantID,
			"title":    event.Title,
			"body":     event.Body,
			"link":     event.Link,
			"key":      event.Key,
		})
		if err == nil {
			err = s.m.Broadcast(payload)
		}
		if err != nil {
			s.logger.Error("Lỗi broadcast notification cho tenant %d: %v", event.TenantID, err)
			result.Failed++
		} else {
			result.Delivered++
		}
	}

	return result
}

// MessageBuilder dựng nội dung thông báo đơn mới
type MessageBuilder struct {
	orderNumber int64
	total       float64
}

func NewMessageBuilder(orderNumber int64, total float64) *MessageBuilder {
	return &MessageBuilder{
		orderNumber: orderNumber,
		total:       total,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đơn hàng mới #%d, tổng tiền %.2f.", b.orderNumber, b.total)
}

// OrphanOrderMessage dựng nội dung cảnh báo đơn thiếu lines
func OrphanOrderMessage(orderNumber int64) string {
	return fmt.Sprintf("⚠️ Đơn hàng #%d không có món nào, cần kiểm tra lại dữ liệu.", orderNumber)
}

// OrphanOrderKey tạo key idempotency theo ngày để mỗi đơn hỏng
// chỉ sinh một thông báo cho một lần quét trong ngày
func OrphanOrderKey(orderID uint, at time.Time) string {
	return fmt.Sprintf("orphan-%d-%s", orderID, at.Format("2006-01-02"))
}
