package materials

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/summary"
)

var (
	ErrNotFound      = errors.New("material not found")
	ErrNegativeStock = errors.New("stock must be >= 0")
	ErrInvalidUsage  = errors.New("quantity used must be > 0")
)

const usageWindowDays = 7

// Ledger owns the material records. Stock and status are only ever written
// together, under the ledger lock.
type Ledger struct {
	clock clock.Clock

	mu    sync.RWMutex
	items []*Material
	byID  map[int64]*Material
	usage []Usage
}

// NewLedger builds a ledger from seed records. Seed statuses are ignored and
// re-derived from stock. A duplicate id panics.
func NewLedger(c clock.Clock, seed []Material, usage []Usage) *Ledger {
	l := &Ledger{
		clock: c,
		items: make([]*Material, 0, len(seed)),
		byID:  make(map[int64]*Material, len(seed)),
	}
	for _, m := range seed {
		if _, dup := l.byID[m.ID]; dup {
			panic(fmt.Sprintf("materials: duplicate id %d", m.ID))
		}
		m := m
		m.Status = Classify(m.CurrentStock, m.MaxStock)
		l.items = append(l.items, &m)
		l.byID[m.ID] = &m
	}
	l.usage = append(l.usage, usage...)
	return l
}

func (l *Ledger) All() []Material {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Material, 0, len(l.items))
	for _, m := range l.items {
		out = append(out, *m)
	}
	return out
}

func (l *Ledger) Get(id int64) (Material, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	m, ok := l.byID[id]
	if !ok {
		return Material{}, ErrNotFound
	}
	return *m, nil
}

// ByStatus keeps insertion order.
func (l *Ledger) ByStatus(s Status) []Material {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Material
	for _, m := range l.items {
		if m.Status == s {
			out = append(out, *m)
		}
	}
	return out
}

// UpdateStock sets the current stock and re-derives the status band.
// No upper bound is enforced.
func (l *Ledger) UpdateStock(id int64, newStock float64) (Material, error) {
	if newStock < 0 {
		return Material{}, ErrNegativeStock
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.byID[id]
	if !ok {
		return Material{}, ErrNotFound
	}
	m.CurrentStock = newStock
	m.Status = Classify(newStock, m.MaxStock)
	return *m, nil
}

func (l *Ledger) RecordUsage(u Usage) error {
	if u.QuantityUsed <= 0 {
		return ErrInvalidUsage
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byID[u.MaterialID]; !ok {
		return ErrNotFound
	}
	if u.Date.IsZero() {
		u.Date = l.clock.Now()
	}
	l.usage = append(l.usage, u)
	return nil
}

// UsageStats reports consumption over the last week and how long the
// current stock lasts at that pace.
func (l *Ledger) UsageStats(id int64) (UsageStats, error) {
	now := l.clock.Now()
	y, mo, d := now.AddDate(0, 0, -usageWindowDays).Date()
	cutoff := time.Date(y, mo, d, 0, 0, 0, 0, now.Location())

	l.mu.RLock()
	defer l.mu.RUnlock()

	m, ok := l.byID[id]
	if !ok {
		return UsageStats{}, ErrNotFound
	}

	st := UsageStats{Material: *m, RecentUsage: []Usage{}}
	for _, u := range l.usage {
		if u.MaterialID == id && !u.Date.Before(cutoff) {
			st.RecentUsage = append(st.RecentUsage, u)
			st.TotalUsedWeek += u.QuantityUsed
		}
	}
	if len(st.RecentUsage) > 0 {
		st.AvgDailyUsage = st.TotalUsedWeek / usageWindowDays
	}
	if st.AvgDailyUsage > 0 {
		days := m.CurrentStock / st.AvgDailyUsage
		st.DaysRemaining = &days
	}
	return st, nil
}

// Summary folds the current snapshot; nothing is cached between calls.
func (l *Ledger) Summary() Summary {
	s := summary.Fold(l.All(), Summary{}, func(acc Summary, m Material) Summary {
		acc.TotalMaterials++
		switch m.Status {
		case StatusCritical:
			acc.CriticalMaterials++
		case StatusLow:
			acc.LowMaterials++
		case StatusOptimal:
			acc.OptimalMaterials++
		case StatusHigh:
			acc.HighMaterials++
		}
		acc.TotalInventoryValue += m.CurrentStock * m.CostPerUnit
		return acc
	})
	s.TotalInventoryValue = summary.Round(s.TotalInventoryValue, 2)
	s.NeedsRestock = s.CriticalMaterials + s.LowMaterials
	return s
}
