package recipes

// Requirement is a quantity of one material, by material name.
type Requirement struct {
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
}

// Recipe lists per-m³ material quantities of a mix, in dosing order.
type Recipe struct {
	MixType string
	PerM3   []Requirement
}

type LineStatus string

const (
	LineAvailable    LineStatus = "available"
	LineInsufficient LineStatus = "insufficient"
	LineNotFound     LineStatus = "not_found"
)

type Line struct {
	Name      string     `json:"name"`
	Required  float64    `json:"required"`
	Available float64    `json:"available"`
	Deficit   float64    `json:"deficit,omitempty"`
	Status    LineStatus `json:"status"`
}

// Availability partitions requirements: every material lands in exactly one
// of Missing or Materials.
type Availability struct {
	Available bool   `json:"available"`
	Missing   []Line `json:"missing_materials"`
	Materials []Line `json:"available_materials"`
}
