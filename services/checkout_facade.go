package services

import (
	"context"
	"fmt"

	"storefront/constants"
	"storefront/dto"
	apperrors "storefront/errors"
	"storefront/models"
	"storefront/services/logger"
	"storefront/services/notification"
	"storefront/validator"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// CheckoutFacade nối các bước của pipeline tạo đơn theo đúng thứ tự:
// tính giá → cấp số → ghi đơn → tăng usage mã giảm → cộng doanh thu
// → thông báo. Chỉ lỗi ghi đơn mới làm request thất bại; các bước
// phía sau lỗi thì log rồi bỏ qua: mất một dòng ledger có thể
// reconcile sau, mất một đơn là mất một phiếu bếp thật.
type CheckoutFacade struct {
	db         *gorm.DB
	orders     *OrderService
	sequencer  *OrderSequencer
	discounts  *DiscountService
	revenue    *RevenueService
	dispatcher notification.Dispatcher
	logger     logger.Logger
	retryOpts  RetryOptions
}

// CheckoutFacadeOptions cho phép test thay từng collaborator
type CheckoutFacadeOptions struct {
	DB         *gorm.DB
	Orders     *OrderService
	Sequencer  *OrderSequencer
	Discounts  *DiscountService
	Revenue    *RevenueService
	Dispatcher notification.Dispatcher
	Logger     logger.Logger
	RetryOpts  RetryOptions
}

func NewCheckoutFacadeWithOptions(opts CheckoutFacadeOptions) *CheckoutFacade {
	return &CheckoutFacade{
		db:         opts.DB,
		orders:     opts.Orders,
		sequencer:  opts.Sequencer,
		discounts:  opts.Discounts,
		revenue:    opts.Revenue,
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger,
		retryOpts:  opts.RetryOpts,
	}
}

// NewCheckoutFacade tạo facade với các service mặc định trên cùng DB
func NewCheckoutFacade(db *gorm.DB, m *melody.Melody, log logger.Logger) *CheckoutFacade {
	return NewCheckoutFacadeWithOptions(CheckoutFacadeOptions{
		DB:         db,
		Orders:     NewOrderService(db, NewCatalogToppingPricer(db)),
		Sequencer:  NewOrderSequencer(db),
		Discounts:  NewDiscountService(db),
		Revenue:    NewRevenueService(db),
		Dispatcher: notification.NewService(db, m, log),
		Logger:     log,
	})
}

// CreateOrder chạy pipeline checkout cho một request.
// Response chỉ có hai dạng nhìn từ phía khách: thành công kèm số đơn,
// hoặc lỗi tạo đơn; side-effect degrade chỉ thấy được trong log.
func (f *CheckoutFacade) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	var tenant models.Tenant
	if err := f.db.First(&tenant, req.TenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeTenantNotFound, "Không tìm thấy tenant", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn tenant", err)
	}
	if tenant.Status != constants.TenantStatusActive {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidTenant, "Tenant đang tạm ngưng", apperrors.ErrTenantInactive)
	}

	if req.Mode == models.OrderModeDelivery && req.DeliveryZoneID != nil {
		var zone models.DeliveryZone
		err := f.db.Where("id = ? AND tenant_id = ?", *req.DeliveryZoneID, req.TenantID).First(&zone).Error
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOrder, "Khu vực giao hàng không hợp lệ", err)
		}
	}

	// Bước 1: chốt giá từng line (giá topping override > giá catalog)
	lines, err := f.orders.ResolveLines(req.TenantID, req.Lines)
	if err != nil {
		return nil, err
	}

	// Bước 2: tính giá, server tự tính lại total
	draft := PriceOrder(lines, req.DiscountAmount, req.Mode, req.DeliveryFee)
	if err := validator.ValidateDiscountAmount(req.DiscountAmount, draft.Subtotal, draft.DeliveryFee); err != nil {
		return nil, err
	}

	// Bước 3: cấp số đơn tuần tự theo tenant
	numberResult := WithRetry(ctx, func() (int64, error) {
		return f.sequencer.Next(req.TenantID)
	}, 0, f.retryOpts)
	if numberResult.State != RetryOk {
		return nil, apperrors.NewAppError(apperrors.ErrCodeOrderWrite, "Không cấp được số đơn", numberResult.Err)
	}

	var discountCode *string
	if req.DiscountCode != "" {
		normalized := NormalizeCode(req.DiscountCode)
		discountCode = &normalized
	}

	// Bước 4: ghi đơn. Đây là bước duy nhất được phép làm request thất bại.
	writeResult := WithRetry(ctx, func() (*models.Order, error) {
		return f.orders.Create(OrderWriteInput{
			TenantID:       req.TenantID,
			OrderNumber:    numberResult.Value,
			CustomerName:   req.CustomerName,
			CustomerPhone:  req.CustomerPhone,
			CustomerEmail:  req.CustomerEmail,
			Address:        req.Address,
			DeliveryZoneID: req.DeliveryZoneID,
			DiscountCode:   discountCode,
			ScheduledAt:    req.ScheduledAt,
			Note:           req.Note,
			Draft:          draft,
		})
	}, nil, f.retryOpts)
	if writeResult.State != RetryOk {
		return nil, apperrors.NewAppError(apperrors.ErrCodeOrderWrite, "Ghi đơn hàng thất bại", writeResult.Err)
	}
	order := writeResult.Value

	// Bước 5: tăng usage mã giảm, lỗi thì log rồi bỏ qua
	if discountCode != nil {
		usageResult := RunWithRetry(ctx, func() error {
			return f.discounts.IncrementUsage(req.TenantID, *discountCode)
		}, f.retryOpts)
		if usageResult.State != RetryOk {
			f.logger.Error("Lỗi tăng usage mã %s cho đơn %d: %v", *discountCode, order.ID, usageResult.Err)
		}
	}

	// Bước 6: cộng doanh thu tháng, lỗi thì log rồi bỏ qua
	revenueResult := RunWithRetry(ctx, func() error {
		return f.revenue.Record(&tenant, draft.Subtotal, order.CreatedAt)
	}, f.retryOpts)
	if revenueResult.State != RetryOk {
		f.logger.Error("Lỗi cộng doanh thu tenant %d cho đơn %d: %v", tenant.ID, order.ID, revenueResult.Err)
	}

	// Bước 7: thông báo đơn mới, kết quả chỉ mang tính thông tin
	dispatchResult := f.dispatcher.Notify(notification.Event{
		TenantID: tenant.ID,
		Title:    fmt.Sprintf("Đơn hàng mới #%d", order.OrderNumber),
		Body:     notification.NewMessageBuilder(order.OrderNumber, order.TotalPrice).Build(),
		Link:     fmt.Sprintf("/admin/orders/%d", order.ID),
		Key:      fmt.Sprintf("order-%d-%d", tenant.ID, order.ID),
	})
	f.logger.Info("Thông báo đơn %d: delivered=%d failed=%d", order.ID, dispatchResult.Delivered, dispatchResult.Failed)

	return &dto.CreateOrderResponse{
		Success:     true,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
	}, nil
}
