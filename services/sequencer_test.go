package services

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencerStartsAtOne(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	sequencer := NewOrderSequencer(db)

	first, err := sequencer.Next(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := sequencer.Next(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
}

func TestSequencerIsolatedPerTenant(t *testing.T) {
	db := setupTestDB(t)
	tenantA := seedTenant(t, db, "percentage", 10)
	tenantB := seedTenant(t, db, "fixed", 50)
	sequencer := NewOrderSequencer(db)

	for i := 0; i < 3; i++ {
		_, err := sequencer.Next(tenantA.ID)
		require.NoError(t, err)
	}

	first, err := sequencer.Next(tenantB.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	last, err := sequencer.Peek(tenantA.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), last)
}

func TestSequencerConcurrentCheckouts(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	sequencer := NewOrderSequencer(db)

	const workers = 20
	numbers := make([]int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			n, err := sequencer.Next(tenant.ID)
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}
			numbers[slot] = n
		}(i)
	}
	wg.Wait()

	// Không trùng, không lủng lỗ: đúng dãy 1..workers
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	for i := 0; i < workers; i++ {
		assert.Equal(t, int64(i+1), numbers[i])
	}
}

func TestSequencerPeekWithoutAllocation(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "percentage", 10)
	sequencer := NewOrderSequencer(db)

	last, err := sequencer.Peek(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), last)
}
