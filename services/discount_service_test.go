package services

import (
	"testing"

	apperrors "storefront/errors"
	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDiscount(t *testing.T, db *gorm.DB, tenantID uint, code string, discountType string, value, minOrder float64, status int) *models.Discount {
	t.Helper()
	discount := models.Discount{
		TenantID: tenantID,
		Code:     code,
		Type:     discountType,
		Value:    value,
		MinOrder: minOrder,
		Status:   status,
	}
	if err := db.Create(&discount).Error; err != nil {
		t.Fatalf("seed discount: %v", err)
	}
	return &discount
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "GIAMGIA10", NormalizeCode("  giảm giá 10 "))
	assert.Equal(t, "SUMMER25", NormalizeCode("summer25"))
	assert.Equal(t, "TRASUA", NormalizeCode("Trà Sữa"))
}

func TestValidateHappyPath(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	seedDiscount(t, db, tenant.ID, "SUMMER25", models.DiscountTypePercentage, 25, 0, 1)

	service := NewDiscountService(db)
	amount, err := service.Validate(tenant.ID, "summer25", 100)
	require.NoError(t, err)
	assert.Equal(t, 25.0, amount)
}

func TestValidateFixedCappedAtSubtotal(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	seedDiscount(t, db, tenant.ID, "GIAM50", models.DiscountTypeFixed, 50, 0, 1)

	service := NewDiscountService(db)
	amount, err := service.Validate(tenant.ID, "GIAM50", 30)
	require.NoError(t, err)
	assert.Equal(t, 30.0, amount)
}

func TestValidateRejections(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	seedDiscount(t, db, tenant.ID, "LOCKED", models.DiscountTypePercentage, 10, 0, 0)
	seedDiscount(t, db, tenant.ID, "BIGORDER", models.DiscountTypePercentage, 10, 200, 1)

	service := NewDiscountService(db)

	_, err := service.Validate(tenant.ID, "KHONGCO", 100)
	assert.ErrorIs(t, err, apperrors.ErrDiscountNotFound)

	_, err = service.Validate(tenant.ID, "LOCKED", 100)
	assert.ErrorIs(t, err, apperrors.ErrDiscountInactive)

	_, err = service.Validate(tenant.ID, "BIGORDER", 100)
	assert.ErrorIs(t, err, apperrors.ErrBelowMinOrder)
}

func TestValidateScopedToTenant(t *testing.T) {
	db := setupTestDB(t)
	tenantA := seedTenant(t, db, "percentage", 10)
	tenantB := seedTenant(t, db, "fixed", 50)
	seedDiscount(t, db, tenantA.ID, "SUMMER25", models.DiscountTypePercentage, 25, 0, 1)

	service := NewDiscountService(db)
	_, err := service.Validate(tenantB.ID, "SUMMER25", 100)
	assert.ErrorIs(t, err, apperrors.ErrDiscountNotFound)
}

func TestIncrementUsage(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	discount := seedDiscount(t, db, tenant.ID, "SUMMER25", models.DiscountTypePercentage, 25, 0, 1)

	service := NewDiscountService(db)
	require.NoError(t, service.IncrementUsage(tenant.ID, "Summer 25"))
	require.NoError(t, service.IncrementUsage(tenant.ID, "SUMMER25"))

	var loaded models.Discount
	require.NoError(t, db.First(&loaded, discount.ID).Error)
	assert.Equal(t, 2, loaded.UsageCount)

	err := service.IncrementUsage(tenant.ID, "KHONGCO")
	assert.ErrorIs(t, err, apperrors.ErrDiscountNotFound)
}

func TestSuggestClosestCode(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	seedDiscount(t, db, tenant.ID, "SUMMER25", models.DiscountTypePercentage, 25, 0, 1)
	seedDiscount(t, db, tenant.ID, "FREESHIP", models.DiscountTypeFixed, 3, 0, 1)

	service := NewDiscountService(db)

	assert.Equal(t, "SUMMER25", service.Suggest(tenant.ID, "sumer25"))
	assert.Equal(t, "FREESHIP", service.Suggest(tenant.ID, "freship"))

	// Quá khác thì không gợi ý
	assert.Equal(t, "", service.Suggest(tenant.ID, "xyzabc99"))
}
