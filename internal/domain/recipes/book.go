package recipes

import "fmt"

// Book is the static recipe table keyed by mix type.
type Book struct {
	order   []string
	recipes map[string]Recipe
}

func NewBook(rs ...Recipe) *Book {
	b := &Book{recipes: make(map[string]Recipe, len(rs))}
	for _, r := range rs {
		if _, dup := b.recipes[r.MixType]; dup {
			panic(fmt.Sprintf("recipes: duplicate mix type %q", r.MixType))
		}
		b.order = append(b.order, r.MixType)
		b.recipes[r.MixType] = r
	}
	return b
}

// DefaultBook holds kg of each material per m³ of concrete.
func DefaultBook() *Book {
	return NewBook(
		Recipe{MixType: "C-20", PerM3: []Requirement{
			{"ARENA", 800}, {"AGUA", 180}, {"ADT1", 2}, {"CMTO", 300}, {"GRAVA", 1100},
		}},
		Recipe{MixType: "C-25", PerM3: []Requirement{
			{"ARENA", 750}, {"AGUA", 175}, {"ADT1", 3}, {"CMTO", 350}, {"GRAVA", 1050},
		}},
		Recipe{MixType: "C-30", PerM3: []Requirement{
			{"ARENA", 700}, {"AGUA", 170}, {"ADT1", 4}, {"ADT2", 2}, {"CMTO", 400}, {"GRAVA", 1000},
		}},
		Recipe{MixType: "C-35", PerM3: []Requirement{
			{"ARENA", 650}, {"AGUA", 165}, {"ADT1", 5}, {"ADT2", 3}, {"ADIC", 1}, {"CMTO", 450}, {"GRAVA", 950},
		}},
	)
}

func (b *Book) Supported(mixType string) bool {
	_, ok := b.recipes[mixType]
	return ok
}

func (b *Book) MixTypes() []string {
	return append([]string(nil), b.order...)
}

// Requirements scales the recipe of mixType to volume m³. ok is false when
// the mix type has no recipe, which is distinct from an empty result.
func (b *Book) Requirements(mixType string, volume float64) (reqs []Requirement, ok bool) {
	r, ok := b.recipes[mixType]
	if !ok {
		return nil, false
	}
	reqs = make([]Requirement, 0, len(r.PerM3))
	for _, q := range r.PerM3 {
		reqs = append(reqs, Requirement{Material: q.Material, Quantity: q.Quantity * volume})
	}
	return reqs, true
}
