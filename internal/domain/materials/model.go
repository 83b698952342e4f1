package materials

import "time"

type Unit string

const (
	UnitM3 Unit = "m³"
	UnitKg Unit = "kg"
)

// Status is the stock band of a material, derived from current/max stock.
type Status string

const (
	StatusCritical Status = "critical"
	StatusLow      Status = "low"
	StatusOptimal  Status = "optimal"
	StatusHigh     Status = "high"
)

var Statuses = []Status{StatusCritical, StatusLow, StatusOptimal, StatusHigh}

func (s Status) Valid() bool {
	switch s {
	case StatusCritical, StatusLow, StatusOptimal, StatusHigh:
		return true
	}
	return false
}

type Material struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CurrentStock float64   `json:"current_stock"`
	MinStock     float64   `json:"min_stock"`
	MaxStock     float64   `json:"max_stock"`
	Unit         Unit      `json:"unit"`
	CostPerUnit  float64   `json:"cost_per_unit"`
	Supplier     string    `json:"supplier"`
	LastRestock  time.Time `json:"last_restock"`
	Status       Status    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
}

// Usage is one consumption record of a material.
type Usage struct {
	MaterialID   int64     `json:"material_id"`
	Date         time.Time `json:"date"`
	QuantityUsed float64   `json:"quantity_used"`
	Project      string    `json:"project"`
	MixType      string    `json:"mix_type"`
}

type UsageStats struct {
	Material      Material `json:"material"`
	TotalUsedWeek float64  `json:"total_used_week"`
	AvgDailyUsage float64  `json:"avg_daily_usage"`
	// DaysRemaining is nil when nothing was consumed during the window.
	DaysRemaining *float64 `json:"days_remaining"`
	RecentUsage   []Usage  `json:"recent_usage"`
}

type Summary struct {
	TotalMaterials      int     `json:"total_materials"`
	CriticalMaterials   int     `json:"critical_materials"`
	LowMaterials        int     `json:"low_materials"`
	OptimalMaterials    int     `json:"optimal_materials"`
	HighMaterials       int     `json:"high_materials"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	NeedsRestock        int     `json:"needs_restock"`
}
