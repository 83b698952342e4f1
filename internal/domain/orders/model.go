package orders

import "time"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusPreparing  Status = "preparing"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusScheduled, StatusPreparing, StatusInProgress, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusPreparing, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether the order still has a pour ahead of it.
func (s Status) Active() bool {
	return s == StatusScheduled || s == StatusPreparing || s == StatusInProgress
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Order is a concrete delivery. ProjectName and Client are copied from the
// project registry when the order is created and never refreshed.
type Order struct {
	ID                int64      `json:"id"`
	ProjectID         int64      `json:"project_id"`
	ProjectName       string     `json:"project_name"`
	Client            string     `json:"client"`
	MixType           string     `json:"mix_type"`
	Volume            float64    `json:"volume"`
	Status            Status     `json:"status"`
	ScheduledTime     time.Time  `json:"scheduled_time"`
	Address           string     `json:"address"`
	Priority          Priority   `json:"priority"`
	AssignedPlant     string     `json:"assigned_plant"`
	EstimatedDuration float64    `json:"estimated_duration"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

type CreateRequest struct {
	ProjectID         int64     `json:"project_id"`
	MixType           string    `json:"mix_type"`
	Volume            float64   `json:"volume"`
	ScheduledTime     time.Time `json:"scheduled_time"`
	Address           string    `json:"address"`
	Priority          Priority  `json:"priority"`
	AssignedPlant     string    `json:"assigned_plant"`
	EstimatedDuration float64   `json:"estimated_duration"`
	Notes             string    `json:"notes"`
}

type Summary struct {
	TotalOrders       int              `json:"total_orders"`
	ActiveOrders      int              `json:"active_orders"`
	TodaysOrders      int              `json:"todays_orders"`
	TotalVolumeToday  float64          `json:"total_volume_today"`
	TotalVolumeActive float64          `json:"total_volume_active"`
	Completed         int              `json:"completed"`
	CompletedToday    int              `json:"completed_today"`
	UrgentOrders      int              `json:"urgent_orders"`
	ByStatus          map[Status]int   `json:"by_status"`
	ByPriority        map[Priority]int `json:"by_priority"`
}
