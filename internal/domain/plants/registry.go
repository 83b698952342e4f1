package plants

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/summary"
)

var (
	ErrNotFound           = errors.New("plant not found")
	ErrInvalidStatus      = errors.New("invalid plant status")
	ErrNoProductionRecord = errors.New("no production record for plant")
)

type Registry struct {
	clock clock.Clock

	mu         sync.RWMutex
	items      []*Plant
	byID       map[int64]*Plant
	production []Production
}

func NewRegistry(c clock.Clock, seed []Plant, production []Production) *Registry {
	r := &Registry{clock: c, byID: make(map[int64]*Plant, len(seed))}
	for _, p := range seed {
		if _, dup := r.byID[p.ID]; dup {
			panic(fmt.Sprintf("plants: duplicate id %d", p.ID))
		}
		p := p
		p.MixesAvailable = append([]string(nil), p.MixesAvailable...)
		r.items = append(r.items, &p)
		r.byID[p.ID] = &p
	}
	r.production = append(r.production, production...)
	return r
}

func (r *Registry) All() []Plant {
	return r.filter(func(*Plant) bool { return true })
}

func (r *Registry) Active() []Plant {
	return r.ByStatus(StatusActive)
}

func (r *Registry) ByStatus(s Status) []Plant {
	return r.filter(func(p *Plant) bool { return p.Status == s })
}

func (r *Registry) Get(id int64) (Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return Plant{}, ErrNotFound
	}
	return clone(p), nil
}

func (r *Registry) UpdateStatus(id int64, s Status) (Plant, error) {
	if !s.Valid() {
		return Plant{}, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return Plant{}, ErrNotFound
	}
	p.Status = s
	if s == StatusMaintenance {
		p.LastMaintenance = r.clock.Now()
	}
	return clone(p), nil
}

// Production returns the most recent production record of a plant.
func (r *Registry) Production(id int64) (Production, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.byID[id]; !ok {
		return Production{}, ErrNotFound
	}
	var (
		latest Production
		found  bool
	)
	for _, pr := range r.production {
		if pr.PlantID == id && (!found || pr.Date.After(latest.Date)) {
			latest, found = pr, true
		}
	}
	if !found {
		return Production{}, ErrNoProductionRecord
	}
	mixes := make(map[string]float64, len(latest.MixesProduced))
	for k, v := range latest.MixesProduced {
		mixes[k] = v
	}
	latest.MixesProduced = mixes
	return latest, nil
}

// Summary folds plants and today's production records.
func (r *Registry) Summary() Summary {
	now := r.clock.Now()

	s := summary.Fold(r.All(), Summary{}, func(s Summary, p Plant) Summary {
		s.TotalPlants++
		s.TotalCapacity += p.Capacity
		switch p.Status {
		case StatusActive:
			s.ActivePlants++
			s.ActiveCapacity += p.Capacity
		case StatusMaintenance:
			s.MaintenancePlants++
		case StatusInactive:
			s.InactivePlants++
		}
		return s
	})

	r.mu.RLock()
	prod := append([]Production(nil), r.production...)
	r.mu.RUnlock()

	return summary.Fold(prod, s, func(s Summary, pr Production) Summary {
		if clock.SameDay(pr.Date, now) {
			s.TrucksDispatchedToday += pr.TrucksDispatched
			s.ProductionToday += pr.TotalProduction
		}
		return s
	})
}

func (r *Registry) filter(keep func(*Plant) bool) []Plant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Plant{}
	for _, p := range r.items {
		if keep(p) {
			out = append(out, clone(p))
		}
	}
	return out
}

func clone(p *Plant) Plant {
	c := *p
	c.MixesAvailable = append([]string(nil), p.MixesAvailable...)
	return c
}
