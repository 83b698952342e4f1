package checklists

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

type Category string

const (
	CategoryPrePour  Category = "pre_vaciado"
	CategorySafety   Category = "seguridad"
	CategoryQuality  Category = "calidad"
	CategoryPostPour Category = "post_vaciado"
)

// Categories is the fixed catalog, in template order.
var Categories = []Category{CategoryPrePour, CategorySafety, CategoryQuality, CategoryPostPour}

type Item struct {
	ID          int        `json:"id"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Notes       string     `json:"notes,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Checklist is the pour checklist of one order. The order is referenced by id only.
type Checklist struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order_id"`
	ProjectName   string     `json:"project_name"`
	Supervisor    string     `json:"supervisor"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Items         []Item     `json:"items"`
}

type CreateRequest struct {
	OrderID       int64      `json:"order_id"`
	ProjectName   string     `json:"project_name"`
	Supervisor    string     `json:"supervisor"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	Categories    []Category `json:"categories"`
}

type Summary struct {
	TotalChecklists int     `json:"total_checklists"`
	TodaysChecklist int     `json:"todays_checklists"`
	CompletedToday  int     `json:"completed_today"`
	InProgress      int     `json:"in_progress"`
	Pending         int     `json:"pending"`
	Completed       int     `json:"completed"`
	CompletionRate  float64 `json:"completion_rate"`
	TotalItems      int     `json:"total_items"`
	CompletedItems  int     `json:"completed_items"`
}
