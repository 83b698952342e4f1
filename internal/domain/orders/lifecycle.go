package orders

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/projects"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrUnsupportedMix  = errors.New("unsupported mix type")
	ErrInvalidVolume   = errors.New("volume must be > 0")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidPriority = errors.New("invalid order priority")
)

// MixCatalog tells which mix types can be produced.
type MixCatalog interface {
	Supported(mixType string) bool
}

type Lifecycle struct {
	clock    clock.Clock
	projects projects.Registry
	mixes    MixCatalog

	mu     sync.RWMutex
	items  []*Order
	byID   map[int64]*Order
	nextID int64
}

// NewLifecycle takes ownership of seed orders. CompletedAt is normalised so
// that it is present exactly on completed orders.
func NewLifecycle(c clock.Clock, reg projects.Registry, mixes MixCatalog, seed []Order) *Lifecycle {
	l := &Lifecycle{
		clock:    c,
		projects: reg,
		mixes:    mixes,
		byID:     make(map[int64]*Order, len(seed)),
		nextID:   1,
	}
	for _, o := range seed {
		if _, dup := l.byID[o.ID]; dup {
			panic(fmt.Sprintf("orders: duplicate id %d", o.ID))
		}
		o := o
		switch {
		case o.Status != StatusCompleted:
			o.CompletedAt = nil
		case o.CompletedAt == nil:
			now := c.Now()
			o.CompletedAt = &now
		}
		l.items = append(l.items, &o)
		l.byID[o.ID] = &o
		if o.ID >= l.nextID {
			l.nextID = o.ID + 1
		}
	}
	return l
}

// Create validates the request, resolves the project and appends a new
// scheduled order.
func (l *Lifecycle) Create(ctx context.Context, req CreateRequest) (Order, error) {
	if req.Volume <= 0 {
		return Order{}, ErrInvalidVolume
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if !req.Priority.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidPriority, req.Priority)
	}
	if !l.mixes.Supported(req.MixType) {
		return Order{}, fmt.Errorf("%w: %q", ErrUnsupportedMix, req.MixType)
	}

	p, err := l.projects.Resolve(ctx, req.ProjectID)
	if errors.Is(err, projects.ErrNotFound) {
		return Order{}, fmt.Errorf("%w: %d", ErrProjectNotFound, req.ProjectID)
	}
	if err != nil {
		return Order{}, fmt.Errorf("resolve project %d: %w", req.ProjectID, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	o := &Order{
		ID:                l.nextID,
		ProjectID:         req.ProjectID,
		ProjectName:       p.Name,
		Client:            p.Client,
		MixType:           req.MixType,
		Volume:            req.Volume,
		Status:            StatusScheduled,
		ScheduledTime:     req.ScheduledTime,
		Address:           req.Address,
		Priority:          req.Priority,
		AssignedPlant:     req.AssignedPlant,
		EstimatedDuration: req.EstimatedDuration,
		CreatedAt:         l.clock.Now(),
		Notes:             req.Notes,
	}
	l.nextID++
	l.items = append(l.items, o)
	l.byID[o.ID] = o
	return clone(o), nil
}

// AvailableProjects lists the projects orders can currently be placed for.
func (l *Lifecycle) AvailableProjects(ctx context.Context) ([]projects.Project, error) {
	ps, err := l.projects.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return ps, nil
}

func (l *Lifecycle) All() []Order {
	return l.filter(func(*Order) bool { return true })
}

func (l *Lifecycle) Get(id int64) (Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	o, ok := l.byID[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return clone(o), nil
}

func (l *Lifecycle) ByStatus(s Status) []Order {
	return l.filter(func(o *Order) bool { return o.Status == s })
}

// Today returns orders scheduled on the clock's current date.
func (l *Lifecycle) Today() []Order {
	now := l.clock.Now()
	return l.filter(func(o *Order) bool { return clock.SameDay(o.ScheduledTime, now) })
}

// UpdateStatus accepts any known status. Entering completed stamps
// CompletedAt with the current time, every time; leaving it clears the stamp.
func (l *Lifecycle) UpdateStatus(id int64, s Status) (Order, error) {
	if !s.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	o, ok := l.byID[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	o.Status = s
	if s == StatusCompleted {
		now := l.clock.Now()
		o.CompletedAt = &now
	} else {
		o.CompletedAt = nil
	}
	return clone(o), nil
}

func (l *Lifecycle) filter(keep func(*Order) bool) []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []Order{}
	for _, o := range l.items {
		if keep(o) {
			out = append(out, clone(o))
		}
	}
	return out
}

func clone(o *Order) Order {
	c := *o
	if o.CompletedAt != nil {
		t := *o.CompletedAt
		c.CompletedAt = &t
	}
	return c
}
