package plants

import "time"

type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusMaintenance || s == StatusInactive
}

type Plant struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Capacity        float64   `json:"capacity"` // m³ per hour
	Status          Status    `json:"status"`
	Manager         string    `json:"manager"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	MixesAvailable  []string  `json:"mixes_available"`
	Transport       string    `json:"transport,omitempty"`
	LastMaintenance time.Time `json:"last_maintenance"`
	Notes           string    `json:"notes,omitempty"`
}

// Production is one day of output of a plant.
type Production struct {
	PlantID          int64              `json:"plant_id"`
	Date             time.Time          `json:"date"`
	TotalProduction  float64            `json:"total_production"`
	MixesProduced    map[string]float64 `json:"mixes_produced"`
	TrucksDispatched int                `json:"trucks_dispatched"`
}

type Summary struct {
	TotalPlants           int     `json:"total_plants"`
	ActivePlants          int     `json:"active_plants"`
	MaintenancePlants     int     `json:"maintenance_plants"`
	InactivePlants        int     `json:"inactive_plants"`
	TotalCapacity         float64 `json:"total_capacity"`
	ActiveCapacity        float64 `json:"active_capacity"`
	TrucksDispatchedToday int     `json:"trucks_dispatched_today"`
	ProductionToday       float64 `json:"production_today"`
}
