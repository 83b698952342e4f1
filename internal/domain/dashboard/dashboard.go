// Package dashboard combines the per-domain summaries into one read.
package dashboard

import (
	"time"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/checklists"
	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/domain/orders"
	"github.com/Spok95/concretrack/internal/domain/plants"
)

type (
	MaterialSummarizer  interface{ Summary() materials.Summary }
	OrderSummarizer     interface{ Summary() orders.Summary }
	ChecklistSummarizer interface{ Summary() checklists.Summary }
	PlantSummarizer     interface{ Summary() plants.Summary }
)

type View struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Inventory   materials.Summary  `json:"inventory"`
	Orders      orders.Summary     `json:"orders"`
	Checklists  checklists.Summary `json:"checklists"`
	Plants      plants.Summary     `json:"plants"`
}

type Service struct {
	clock      clock.Clock
	materials  MaterialSummarizer
	orders     OrderSummarizer
	checklists ChecklistSummarizer
	plants     PlantSummarizer
}

func NewService(c clock.Clock, m MaterialSummarizer, o OrderSummarizer, cl ChecklistSummarizer, p PlantSummarizer) *Service {
	return &Service{clock: c, materials: m, orders: o, checklists: cl, plants: p}
}

// Get recomputes every summary on each call.
func (s *Service) Get() View {
	return View{
		GeneratedAt: s.clock.Now(),
		Inventory:   s.materials.Summary(),
		Orders:      s.orders.Summary(),
		Checklists:  s.checklists.Summary(),
		Plants:      s.plants.Summary(),
	}
}
