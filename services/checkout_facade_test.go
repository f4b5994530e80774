package services

import (
	"context"
	"testing"
	"time"

	"storefront/dto"
	apperrors "storefront/errors"
	"storefront/models"
	"storefront/services/logger"
	"storefront/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dispatcher giả ghi lại sự kiện và trả kết quả dựng sẵn
type recordingDispatcher struct {
	events []notification.Event
	result notification.Result
}

func (d *recordingDispatcher) Notify(event notification.Event) notification.Result {
	d.events = append(d.events, event)
	return d.result
}

func newTestFacade(t *testing.T, db *gorm.DB, opts CheckoutFacadeOptions) (*CheckoutFacade, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{result: notification.Result{Delivered: 1}}
	if opts.DB == nil {
		opts.DB = db
	}
	if opts.Orders == nil {
		opts.Orders = NewOrderService(db, NewCatalogToppingPricer(db))
	}
	if opts.Sequencer == nil {
		opts.Sequencer = NewOrderSequencer(db)
	}
	if opts.Discounts == nil {
		opts.Discounts = NewDiscountService(db)
	}
	if opts.Revenue == nil {
		opts.Revenue = NewRevenueService(db)
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = dispatcher
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.ErrorLevel)
	}
	if opts.RetryOpts.BaseDelay == 0 {
		opts.RetryOpts = RetryOptions{MaxAttempts: 2, BaseDelay: time.Millisecond}
	}
	return NewCheckoutFacadeWithOptions(opts), dispatcher
}

func checkoutRequest(tenantID uint) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		TenantID:      tenantID,
		CustomerName:  "Nguyễn Văn A",
		CustomerPhone: "0901234567",
		Mode:          models.OrderModePickup,
		Lines: []dto.CreateOrderLineRequest{
			{ItemName: "Trà sữa", Quantity: 2, UnitPrice: 10},
			{ItemName: "Bánh mì", Quantity: 1, UnitPrice: 5},
		},
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	seedDiscount(t, db, tenant.ID, "SUMMER25", models.DiscountTypePercentage, 25, 0, 1)
	facade, dispatcher := newTestFacade(t, db, CheckoutFacadeOptions{})

	request := checkoutRequest(tenant.ID)
	request.DiscountCode = "Summer 25"
	request.DiscountAmount = 6.25 // 25% của subtotal 25

	result, err := facade.CreateOrder(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(1), result.OrderNumber)

	var order models.Order
	require.NoError(t, db.First(&order, result.OrderID).Error)
	assert.Equal(t, 25.0, order.Subtotal)
	assert.Equal(t, 18.75, order.TotalPrice)
	require.NotNil(t, order.DiscountCode)
	assert.Equal(t, "SUMMER25", *order.DiscountCode)

	// Side-effect đã chạy đủ: usage, doanh thu, thông báo
	var discount models.Discount
	require.NoError(t, db.Where("code = ?", "SUMMER25").First(&discount).Error)
	assert.Equal(t, 1, discount.UsageCount)

	entry, err := NewRevenueService(db).GetMonth(tenant.ID, time.Now().Format("2006-01"))
	require.NoError(t, err)
	assert.Equal(t, 25.0, entry.TotalRevenue)
	assert.Equal(t, 2.5, entry.FeeAmount)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, tenant.ID, dispatcher.events[0].TenantID)
	assert.NotEmpty(t, dispatcher.events[0].Key)
}

func TestCheckoutSequentialNumbers(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	facade, _ := newTestFacade(t, db, CheckoutFacadeOptions{})

	for want := int64(1); want <= 3; want++ {
		result, err := facade.CreateOrder(context.Background(), checkoutRequest(tenant.ID))
		require.NoError(t, err)
		assert.Equal(t, want, result.OrderNumber)
	}
}

func TestCheckoutDiscountFailureSwallowed(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	facade, _ := newTestFacade(t, db, CheckoutFacadeOptions{})

	// Mã đã bị xóa giữa lúc khách checkout: tăng usage thất bại
	request := checkoutRequest(tenant.ID)
	request.DiscountCode = "DAXOA"
	request.DiscountAmount = 5

	result, err := facade.CreateOrder(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.Success)

	var order models.Order
	require.NoError(t, db.First(&order, result.OrderID).Error)
	assert.Equal(t, 5.0, order.DiscountAmount)
}

func TestCheckoutRevenueFailureSwallowed(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)

	// Ledger doanh thu trên một DB không có bảng: Record luôn lỗi
	brokenDB, err := gorm.Open(sqlite.Open("file:broken_revenue?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	facade, _ := newTestFacade(t, db, CheckoutFacadeOptions{
		Revenue: NewRevenueService(brokenDB),
	})

	result, err := facade.CreateOrder(context.Background(), checkoutRequest(tenant.ID))
	require.NoError(t, err)
	assert.True(t, result.Success)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)
}

func TestCheckoutNotifyFailureSwallowed(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	dispatcher := &recordingDispatcher{result: notification.Result{Failed: 1}}
	facade, _ := newTestFacade(t, db, CheckoutFacadeOptions{Dispatcher: dispatcher})

	result, err := facade.CreateOrder(context.Background(), checkoutRequest(tenant.ID))
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, dispatcher.events, 1)
}

func TestCheckoutWriteFailureFailsRequest(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	facade, dispatcher := newTestFacade(t, db, CheckoutFacadeOptions{})

	// Chiếm trước số đơn 1 mà không qua sequencer: ghi đơn sẽ đụng unique index
	occupied := models.Order{TenantID: tenant.ID, OrderNumber: 1, CustomerName: "X", Mode: models.OrderModePickup}
	require.NoError(t, db.Create(&occupied).Error)

	_, err := facade.CreateOrder(context.Background(), checkoutRequest(tenant.ID))
	require.Error(t, err)
	appErr, ok := apperrors.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeOrderWrite, appErr.Code)

	// Không có side-effect nào chạy sau khi ghi thất bại
	assert.Empty(t, dispatcher.events)
	var revenueCount int64
	require.NoError(t, db.Model(&models.TenantRevenue{}).Count(&revenueCount).Error)
	assert.Equal(t, int64(0), revenueCount)
}

func TestCheckoutRejectsInactiveTenant(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	require.NoError(t, db.Model(tenant).Update("status", 0).Error)
	facade, _ := newTestFacade(t, db, CheckoutFacadeOptions{})

	_, err := facade.CreateOrder(context.Background(), checkoutRequest(tenant.ID))
	require.Error(t, err)
	appErr, ok := apperrors.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidTenant, appErr.Code)
}

func TestCheckoutRejectsOversizedDiscount(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	facade, _ := newTestFacade(t, db, CheckoutFacadeOptions{})

	request := checkoutRequest(tenant.ID)
	request.DiscountAmount = 1000

	_, err := facade.CreateOrder(context.Background(), request)
	require.Error(t, err)
	appErr, ok := apperrors.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidAmount, appErr.Code)
}

func TestCheckoutRejectsNegativeDiscount(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	facade, _ := newTestFacade(t, db, CheckoutFacadeOptions{})

	request := checkoutRequest(tenant.ID)
	request.DiscountAmount = -1

	_, err := facade.CreateOrder(context.Background(), request)
	require.Error(t, err)
	appErr, ok := apperrors.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidAmount, appErr.Code)
}
