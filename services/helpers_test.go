package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"storefront/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB sqlite in-memory dùng chung cho test trong package.
// MaxOpenConns = 1 để các câu upsert đồng thời xếp hàng trên
// một connection thay vì dính SQLITE_BUSY.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.DeliveryZone{},
		&models.Topping{},
		&models.ToppingVariantPrice{},
		&models.Discount{},
		&models.Order{},
		&models.OrderLine{},
		&models.OrderLineTopping{},
		&models.OrderCounter{},
		&models.TenantRevenue{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var tenantSeq int64

func seedTenant(t *testing.T, db *gorm.DB, feeType string, feeValue float64) *models.Tenant {
	t.Helper()
	tenant := models.Tenant{
		Name:     "Quán Test",
		Slug:     fmt.Sprintf("quan-%d", atomic.AddInt64(&tenantSeq, 1)),
		FeeType:  feeType,
		FeeValue: feeValue,
		Status:   1,
	}
	if err := db.Create(&tenant).Error; err != nil {
		t.Fatalf("seed tenant: %v", err)
	}
	return &tenant
}
