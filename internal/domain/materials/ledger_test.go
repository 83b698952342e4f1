package materials

import (
	"sync"
	"testing"
	"time"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*Ledger, *clock.Fake) {
	t.Helper()
	c := clock.NewFake(testNow)
	mats, usage := Seed(testNow)
	return NewLedger(c, mats, usage), c
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		max     float64
		want    Status
	}{
		{"empty", 0, 1000, StatusCritical},
		{"exactly 15%", 150, 1000, StatusCritical},
		{"just above 15%", 150.1, 1000, StatusLow},
		{"exactly 30%", 300, 1000, StatusLow},
		{"just above 30%", 300.1, 1000, StatusOptimal},
		{"exactly 80%", 800, 1000, StatusOptimal},
		{"just above 80%", 800.1, 1000, StatusHigh},
		{"full", 1000, 1000, StatusHigh},
		{"overfill", 2500, 1000, StatusHigh},
		{"odd max 15%", 45, 300, StatusCritical},
		{"odd max 30%", 90, 300, StatusLow},
		{"zero max with stock", 10, 0, StatusHigh},
		{"zero max empty", 0, 0, StatusCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.current, tt.max))
		})
	}
}

func TestClassifyMonotonic(t *testing.T) {
	severity := map[Status]int{StatusHigh: 0, StatusOptimal: 1, StatusLow: 2, StatusCritical: 3}
	const max = 1200.0

	prev := severity[Classify(1.5*max, max)]
	for stock := 1.5 * max; stock >= 0; stock -= 0.5 {
		s := Classify(stock, max)
		require.True(t, s.Valid(), "stock %v", stock)
		require.GreaterOrEqual(t, severity[s], prev, "stock %v", stock)
		prev = severity[s]
	}
}

func TestNewLedgerDerivesSeedStatus(t *testing.T) {
	l := NewLedger(clock.NewFake(testNow), []Material{
		{ID: 1, Name: "ADIC", CurrentStock: 10, MaxStock: 300, Status: StatusHigh},
	}, nil)

	m, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, StatusCritical, m.Status)
}

func TestNewLedgerDuplicateIDPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLedger(clock.NewFake(testNow), []Material{{ID: 1}, {ID: 1}}, nil)
	})
}

func TestUpdateStock(t *testing.T) {
	l, _ := newTestLedger(t)

	m, err := l.UpdateStock(4, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, m.CurrentStock)
	assert.Equal(t, StatusCritical, m.Status)

	got, err := l.Get(4)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	// overfill is accepted
	m, err = l.UpdateStock(4, 5000)
	require.NoError(t, err)
	assert.Equal(t, StatusHigh, m.Status)
}

func TestUpdateStockUnknownLeavesLedgerUntouched(t *testing.T) {
	l, _ := newTestLedger(t)
	before := l.All()

	_, err := l.UpdateStock(999, 100)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, l.All())
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	l, _ := newTestLedger(t)
	before := l.All()

	_, err := l.UpdateStock(1, -1)
	assert.ErrorIs(t, err, ErrNegativeStock)
	assert.Equal(t, before, l.All())
}

func TestGetReturnsCopy(t *testing.T) {
	l, _ := newTestLedger(t)

	m, err := l.Get(1)
	require.NoError(t, err)
	m.CurrentStock = 0
	m.Status = StatusCritical

	again, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1250.5, again.CurrentStock)
	assert.Equal(t, StatusHigh, again.Status)
}

func TestByStatusKeepsInsertionOrder(t *testing.T) {
	l, _ := newTestLedger(t)

	var names []string
	for _, m := range l.ByStatus(StatusHigh) {
		names = append(names, m.Name)
	}
	// ARENA 83%, ADT1 85%, GRAVA 81.6%
	assert.Equal(t, []string{"ARENA", "ADT1", "GRAVA"}, names)
	assert.Empty(t, l.ByStatus(StatusCritical))
}

func TestSummary(t *testing.T) {
	l, _ := newTestLedger(t)

	s := l.Summary()
	assert.Equal(t, 7, s.TotalMaterials)
	assert.Equal(t, 3, s.HighMaterials)
	assert.Equal(t, 4, s.OptimalMaterials)
	assert.Equal(t, 0, s.NeedsRestock)

	_, err := l.UpdateStock(6, 30)
	require.NoError(t, err)
	_, err = l.UpdateStock(2, 250)
	require.NoError(t, err)

	s = l.Summary()
	assert.Equal(t, 1, s.CriticalMaterials)
	assert.Equal(t, 1, s.LowMaterials)
	assert.Equal(t, 2, s.NeedsRestock)
	assert.Equal(t, s.TotalMaterials, s.CriticalMaterials+s.LowMaterials+s.OptimalMaterials+s.HighMaterials)
}

func TestSummaryInventoryValue(t *testing.T) {
	l := NewLedger(clock.NewFake(testNow), []Material{
		{ID: 1, CurrentStock: 10, MaxStock: 100, CostPerUnit: 2.5},
		{ID: 2, CurrentStock: 3, MaxStock: 100, CostPerUnit: 1.333},
	}, nil)
	assert.Equal(t, 29.0, l.Summary().TotalInventoryValue)

	empty := NewLedger(clock.NewFake(testNow), nil, nil)
	assert.Equal(t, Summary{}, empty.Summary())
}

func TestUsageStats(t *testing.T) {
	l, c := newTestLedger(t)

	st, err := l.UsageStats(5)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, st.TotalUsedWeek)
	assert.InDelta(t, 1200.0/7, st.AvgDailyUsage, 1e-9)
	require.NotNil(t, st.DaysRemaining)
	assert.InDelta(t, 3200/(1200.0/7), *st.DaysRemaining, 1e-9)

	// no usage: unbounded
	st, err = l.UsageStats(3)
	require.NoError(t, err)
	assert.Zero(t, st.AvgDailyUsage)
	assert.Nil(t, st.DaysRemaining)
	assert.Empty(t, st.RecentUsage)

	// usage falls out of the window after a week
	c.Advance(8 * 24 * time.Hour)
	st, err = l.UsageStats(5)
	require.NoError(t, err)
	assert.Zero(t, st.TotalUsedWeek)

	_, err = l.UsageStats(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordUsage(t *testing.T) {
	l, c := newTestLedger(t)

	require.NoError(t, l.RecordUsage(Usage{MaterialID: 3, QuantityUsed: 70, Project: "Torre Norte", MixType: "C-30"}))
	st, err := l.UsageStats(3)
	require.NoError(t, err)
	require.Len(t, st.RecentUsage, 1)
	assert.Equal(t, c.Now(), st.RecentUsage[0].Date)
	assert.Equal(t, 10.0, st.AvgDailyUsage)

	assert.ErrorIs(t, l.RecordUsage(Usage{MaterialID: 99, QuantityUsed: 1}), ErrNotFound)
	assert.ErrorIs(t, l.RecordUsage(Usage{MaterialID: 3, QuantityUsed: 0}), ErrInvalidUsage)
}

func TestConcurrentUpdatesStayConsistent(t *testing.T) {
	l, _ := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = l.UpdateStock(1, float64(i*30))
			_ = l.Summary()
		}(i)
	}
	wg.Wait()

	m, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Classify(m.CurrentStock, m.MaxStock), m.Status)
}
