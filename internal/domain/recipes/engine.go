package recipes

import (
	"errors"

	"github.com/Spok95/concretrack/internal/domain/materials"
)

var ErrInvalidVolume = errors.New("volume must be > 0")

// StockSource is the read side of the material ledger.
type StockSource interface {
	All() []materials.Material
}

// Engine answers requirement and availability queries. It never writes stock.
type Engine struct {
	book  *Book
	stock StockSource
}

func NewEngine(book *Book, stock StockSource) *Engine {
	return &Engine{book: book, stock: stock}
}

func (e *Engine) Book() *Book { return e.book }

// ComputeRequirements returns ok=false for an unknown mix type.
func (e *Engine) ComputeRequirements(mixType string, volume float64) ([]Requirement, bool, error) {
	if volume <= 0 {
		return nil, false, ErrInvalidVolume
	}
	reqs, ok := e.book.Requirements(mixType, volume)
	return reqs, ok, nil
}

// CheckAvailability compares requirements against one snapshot of the ledger.
// Materials are matched by name; repeated names are summed first.
func (e *Engine) CheckAvailability(reqs []Requirement) Availability {
	byName := make(map[string]materials.Material)
	for _, m := range e.stock.All() {
		if _, seen := byName[m.Name]; !seen {
			byName[m.Name] = m
		}
	}

	res := Availability{Available: true, Missing: []Line{}, Materials: []Line{}}
	for _, req := range merge(reqs) {
		m, found := byName[req.Material]
		switch {
		case !found:
			res.Available = false
			res.Missing = append(res.Missing, Line{
				Name: req.Material, Required: req.Quantity, Deficit: req.Quantity, Status: LineNotFound,
			})
		case m.CurrentStock < req.Quantity:
			res.Available = false
			res.Missing = append(res.Missing, Line{
				Name: req.Material, Required: req.Quantity, Available: m.CurrentStock,
				Deficit: req.Quantity - m.CurrentStock, Status: LineInsufficient,
			})
		default:
			res.Materials = append(res.Materials, Line{
				Name: req.Material, Required: req.Quantity, Available: m.CurrentStock, Status: LineAvailable,
			})
		}
	}
	return res
}

func merge(reqs []Requirement) []Requirement {
	out := make([]Requirement, 0, len(reqs))
	idx := make(map[string]int, len(reqs))
	for _, r := range reqs {
		if i, ok := idx[r.Material]; ok {
			out[i].Quantity += r.Quantity
			continue
		}
		idx[r.Material] = len(out)
		out = append(out, r)
	}
	return out
}
