package projects

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
)

type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date"`
	Status    Status    `json:"status"`
}
