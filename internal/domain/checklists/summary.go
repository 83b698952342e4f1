package checklists

import (
	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/summary"
)

// Summary folds the live collection. CompletionRate is the percentage of
// completed items across all checklists, 0 when there are none.
func (l *Lifecycle) Summary() Summary {
	now := l.clock.Now()

	s := summary.Fold(l.All(), Summary{}, func(s Summary, cl Checklist) Summary {
		s.TotalChecklists++
		switch cl.Status {
		case StatusPending:
			s.Pending++
		case StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
		}
		if clock.SameDay(cl.ScheduledTime, now) {
			s.TodaysChecklist++
			if cl.Status == StatusCompleted {
				s.CompletedToday++
			}
		}
		for _, it := range cl.Items {
			s.TotalItems++
			if it.Completed {
				s.CompletedItems++
			}
		}
		return s
	})
	s.CompletionRate = summary.Round(summary.Percent(s.CompletedItems, s.TotalItems), 1)
	return s
}
