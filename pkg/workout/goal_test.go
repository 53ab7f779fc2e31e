package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoalProgress(t *testing.T) {
	assert.Equal(t, 0.0, Goal{Target: 10, Count: 0}.Progress())
	assert.Equal(t, 0.5, Goal{Target: 10, Count: 5}.Progress())
	assert.Equal(t, 1.0, Goal{Target: 10, Count: 12}.Progress())
	assert.Equal(t, 0.0, Goal{Target: 0, Count: 12}.Progress())
	assert.True(t, Goal{Target: 10, Count: 10}.Done())
	assert.False(t, Goal{Target: 0, Count: 10}.Done())
}

func TestBestRecords(t *testing.T) {
	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	records := []Record{
		{ID: 1, Name: "Pull up", Count: 10, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, Name: "Pull up", Count: 12, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 3, Name: "Pull up", Count: 12, CreatedAt: now},
		{ID: 4, Name: "Handstand", Count: 30, Units: "s", CreatedAt: now},
	}
	best := Best(records)
	assert.Len(t, best, 2)
	assert.Equal(t, int64(2), best["Pull up"].ID)
	assert.Equal(t, int64(4), best["Handstand"].ID)
}

func TestSortRecordsNewestFirst(t *testing.T) {
	now := time.Now()
	records := []Record{
		{ID: 1, CreatedAt: now.Add(-time.Hour)},
		{ID: 2, CreatedAt: now},
	}
	SortRecords(records)
	assert.Equal(t, int64(2), records[0].ID)
}
