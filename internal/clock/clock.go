package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// System returns wall-clock time in Loc (UTC when Loc is nil).
type System struct {
	Loc *time.Location
}

func (s System) Now() time.Time {
	if s.Loc == nil {
		return time.Now().UTC()
	}
	return time.Now().In(s.Loc)
}

// Fake is a settable clock for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

func NewFake(now time.Time) *Fake { return &Fake{now: now} }

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	f.now = now
	f.mu.Unlock()
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// SameDay reports whether a and b fall on the same calendar date in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
