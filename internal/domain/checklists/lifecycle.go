package checklists

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Spok95/concretrack/internal/clock"
)

var (
	ErrNotFound     = errors.New("checklist not found")
	ErrItemNotFound = errors.New("checklist item not found")
)

type Lifecycle struct {
	clock clock.Clock

	mu     sync.RWMutex
	items  []*Checklist
	byID   map[int64]*Checklist
	nextID int64
}

// NewLifecycle takes ownership of seed checklists. A duplicate checklist id
// or item id panics.
func NewLifecycle(c clock.Clock, seed []Checklist) *Lifecycle {
	l := &Lifecycle{clock: c, byID: make(map[int64]*Checklist, len(seed)), nextID: 1}
	for _, cl := range seed {
		if _, dup := l.byID[cl.ID]; dup {
			panic(fmt.Sprintf("checklists: duplicate id %d", cl.ID))
		}
		mustUniqueItems(cl)
		owned := deepCopy(&cl)
		switch {
		case owned.Status != StatusCompleted:
			owned.CompletedAt = nil
		case owned.CompletedAt == nil:
			now := c.Now()
			owned.CompletedAt = &now
		}
		l.items = append(l.items, &owned)
		l.byID[owned.ID] = &owned
		if owned.ID >= l.nextID {
			l.nextID = owned.ID + 1
		}
	}
	return l
}

// Create builds a pending checklist from the template catalog filtered by
// req.Categories. Unknown categories select nothing.
func (l *Lifecycle) Create(req CreateRequest) Checklist {
	items := buildItems(req.Categories)

	l.mu.Lock()
	defer l.mu.Unlock()

	cl := &Checklist{
		ID:            l.nextID,
		OrderID:       req.OrderID,
		ProjectName:   req.ProjectName,
		Supervisor:    req.Supervisor,
		ScheduledTime: req.ScheduledTime,
		Status:        StatusPending,
		CreatedAt:     l.clock.Now(),
		Items:         items,
	}
	l.nextID++
	l.items = append(l.items, cl)
	l.byID[cl.ID] = cl
	return deepCopy(cl)
}

func (l *Lifecycle) All() []Checklist {
	return l.filter(func(*Checklist) bool { return true })
}

func (l *Lifecycle) Get(id int64) (Checklist, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cl, ok := l.byID[id]
	if !ok {
		return Checklist{}, ErrNotFound
	}
	return deepCopy(cl), nil
}

func (l *Lifecycle) ByStatus(s Status) []Checklist {
	return l.filter(func(cl *Checklist) bool { return cl.Status == s })
}

func (l *Lifecycle) Today() []Checklist {
	now := l.clock.Now()
	return l.filter(func(cl *Checklist) bool { return clock.SameDay(cl.ScheduledTime, now) })
}

// Categories returns the template catalog, in order.
func (l *Lifecycle) Categories() []Category {
	return slices.Clone(Categories)
}

// SetItemCompletion flips one item. It never changes the checklist status.
func (l *Lifecycle) SetItemCompletion(checklistID int64, itemID int, completed bool) (Checklist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.byID[checklistID]
	if !ok {
		return Checklist{}, ErrNotFound
	}
	for i := range cl.Items {
		it := &cl.Items[i]
		if it.ID != itemID {
			continue
		}
		it.Completed = completed
		if completed {
			now := l.clock.Now()
			it.CompletedAt = &now
		} else {
			it.CompletedAt = nil
		}
		return deepCopy(cl), nil
	}
	return Checklist{}, ErrItemNotFound
}

// Complete closes the checklist whether or not every item is done.
func (l *Lifecycle) Complete(id int64) (Checklist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.byID[id]
	if !ok {
		return Checklist{}, ErrNotFound
	}
	now := l.clock.Now()
	cl.Status = StatusCompleted
	cl.CompletedAt = &now
	return deepCopy(cl), nil
}

func (l *Lifecycle) filter(keep func(*Checklist) bool) []Checklist {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []Checklist{}
	for _, cl := range l.items {
		if keep(cl) {
			out = append(out, deepCopy(cl))
		}
	}
	return out
}

func mustUniqueItems(cl Checklist) {
	seen := make(map[int]bool, len(cl.Items))
	for _, it := range cl.Items {
		if seen[it.ID] {
			panic(fmt.Sprintf("checklists: checklist %d has duplicate item id %d", cl.ID, it.ID))
		}
		seen[it.ID] = true
	}
}

func deepCopy(cl *Checklist) Checklist {
	c := *cl
	if cl.CompletedAt != nil {
		t := *cl.CompletedAt
		c.CompletedAt = &t
	}
	c.Items = make([]Item, len(cl.Items))
	for i, it := range cl.Items {
		if it.CompletedAt != nil {
			t := *it.CompletedAt
			it.CompletedAt = &t
		}
		c.Items[i] = it
	}
	return c
}
