package validator

import (
	"testing"
	"time"

	"storefront/dto"
	"storefront/models"

	"github.com/stretchr/testify/assert"
)

func validRequest() dto.CreateOrderRequest {
	zoneID := uint(1)
	return dto.CreateOrderRequest{
		TenantID:       1,
		CustomerName:   "Nguyễn Văn A",
		CustomerPhone:  "0901234567",
		Mode:           models.OrderModeDelivery,
		DeliveryZoneID: &zoneID,
		Address:        "12 Lý Thường Kiệt",
		Lines: []dto.CreateOrderLineRequest{
			{ItemName: "Trà sữa", Quantity: 1, UnitPrice: 10},
		},
	}
}

func TestValidateCreateOrderOK(t *testing.T) {
	req := validRequest()
	assert.NoError(t, ValidateCreateOrder(&req))
}

func TestValidateCreateOrderPhone(t *testing.T) {
	req := validRequest()
	req.CustomerPhone = "123"
	assert.Error(t, ValidateCreateOrder(&req))
}

func TestValidateCreateOrderDeliveryNeedsZoneAndAddress(t *testing.T) {
	req := validRequest()
	req.DeliveryZoneID = nil
	assert.Error(t, ValidateCreateOrder(&req))

	req = validRequest()
	req.Address = ""
	assert.Error(t, ValidateCreateOrder(&req))

	// Pickup thì không cần cả hai
	req = validRequest()
	req.Mode = models.OrderModePickup
	req.DeliveryZoneID = nil
	req.Address = ""
	assert.NoError(t, ValidateCreateOrder(&req))
}

func TestValidateCreateOrderScheduledAtMustBeFuture(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	req := validRequest()
	req.ScheduledAt = &past
	assert.Error(t, ValidateCreateOrder(&req))

	future := time.Now().Add(time.Hour)
	req.ScheduledAt = &future
	assert.NoError(t, ValidateCreateOrder(&req))
}

func TestValidateDiscountAmount(t *testing.T) {
	assert.NoError(t, ValidateDiscountAmount(5, 20, 3))
	assert.NoError(t, ValidateDiscountAmount(23, 20, 3))
	assert.Error(t, ValidateDiscountAmount(24, 20, 3))
	assert.Error(t, ValidateDiscountAmount(-1, 20, 3))
}

func TestValidateTenantFeeConfig(t *testing.T) {
	tenant := models.Tenant{Name: "Quán A", FeeType: models.FeeTypePercentage, FeeValue: 10}
	assert.NoError(t, ValidateTenant(&tenant))

	tenant.FeeValue = 150
	assert.Error(t, ValidateTenant(&tenant))

	tenant = models.Tenant{Name: "Quán B", FeeType: "per-order"}
	assert.Error(t, ValidateTenant(&tenant))
}
