package projects

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("project not found")

// Registry resolves projects referenced by orders.
type Registry interface {
	Resolve(ctx context.Context, id int64) (Project, error)
	ListActive(ctx context.Context) ([]Project, error)
}

// MemRegistry is the in-process registry used when no database is configured.
type MemRegistry struct {
	mu    sync.RWMutex
	items []Project
}

func NewMemRegistry(seed []Project) *MemRegistry {
	return &MemRegistry{items: append([]Project(nil), seed...)}
}

func (r *MemRegistry) Resolve(_ context.Context, id int64) (Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}

func (r *MemRegistry) ListActive(_ context.Context) ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Project{}
	for _, p := range r.items {
		if p.Status == StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// Put inserts or replaces a project.
func (r *MemRegistry) Put(p Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = p
			return
		}
	}
	r.items = append(r.items, p)
}

func Seed(now time.Time) []Project {
	return []Project{
		{ID: 101, Name: "Torre Norte", Client: "Constructora ABC", Location: "Zona Industrial", StartDate: now.AddDate(0, 0, -30), Status: StatusActive},
		{ID: 102, Name: "Centro Comercial Plaza", Client: "Desarrolladora XYZ", Location: "Centro Ciudad", StartDate: now.AddDate(0, 0, -15), Status: StatusActive},
		{ID: 103, Name: "Residencial Jardines", Client: "Inmobiliaria Sur", Location: "Sector Residencial", StartDate: now.AddDate(0, 0, -7), Status: StatusActive},
		{ID: 104, Name: "Hospital Regional", Client: "Gobierno Estatal", Location: "Zona Médica", StartDate: now.AddDate(0, 0, -45), Status: StatusActive},
		{ID: 105, Name: "Edificio Corporativo", Client: "Empresa Global S.A.", Location: "Distrito Financiero", StartDate: now.AddDate(0, 0, -10), Status: StatusOnHold},
	}
}
