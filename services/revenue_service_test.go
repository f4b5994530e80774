package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeFor(t *testing.T) {
	db := setupTestDB(t)
	percentTenant := seedTenant(t, db, "percentage", 10)
	fixedTenant := seedTenant(t, db, "fixed", 50)

	assert.Equal(t, 10.0, FeeFor(percentTenant, 100))
	assert.Equal(t, 0.0, FeeFor(fixedTenant, 100))
}

func TestRecordAggregatesPerMonth(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	service := NewRevenueService(db)

	at := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	subtotals := []float64{100, 50, 30}
	for _, subtotal := range subtotals {
		require.NoError(t, service.Record(tenant, subtotal, at))
	}

	entry, err := service.GetMonth(tenant.ID, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 180.0, entry.TotalRevenue)
	assert.Equal(t, 3, entry.TotalOrders)
	assert.Equal(t, 18.0, entry.FeeAmount)
}

func TestRecordSplitsMonthBoundary(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	service := NewRevenueService(db)

	require.NoError(t, service.Record(tenant, 100, time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)))
	require.NoError(t, service.Record(tenant, 40, time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC)))

	august, err := service.GetMonth(tenant.ID, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 100.0, august.TotalRevenue)

	september, err := service.GetMonth(tenant.ID, "2026-09")
	require.NoError(t, err)
	assert.Equal(t, 40.0, september.TotalRevenue)
}

func TestRecordConcurrentOrders(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	service := NewRevenueService(db)

	at := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := service.Record(tenant, 10, at); err != nil {
				t.Errorf("record: %v", err)
			}
		}()
	}
	wg.Wait()

	entry, err := service.GetMonth(tenant.ID, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 100.0, entry.TotalRevenue)
	assert.Equal(t, workers, entry.TotalOrders)
}

func TestListMonthsRange(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	service := NewRevenueService(db)

	for month := 1; month <= 5; month++ {
		at := time.Date(2026, time.Month(month), 10, 0, 0, 0, 0, time.UTC)
		require.NoError(t, service.Record(tenant, 100, at))
	}

	entries, err := service.ListMonths(tenant.ID, "2026-02", "2026-04")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Mới nhất trước
	assert.Equal(t, "2026-04", entries[0].Month)
	assert.Equal(t, "2026-02", entries[2].Month)
}
