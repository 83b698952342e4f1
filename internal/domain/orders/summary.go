package orders

import (
	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/summary"
)

// Summary is recomputed from the live collection on every call.
func (l *Lifecycle) Summary() Summary {
	now := l.clock.Now()
	init := Summary{ByStatus: map[Status]int{}, ByPriority: map[Priority]int{}}

	return summary.Fold(l.All(), init, func(s Summary, o Order) Summary {
		s.TotalOrders++
		s.ByStatus[o.Status]++
		s.ByPriority[o.Priority]++
		if o.Status.Active() {
			s.ActiveOrders++
			s.TotalVolumeActive += o.Volume
			if o.Priority == PriorityHigh {
				s.UrgentOrders++
			}
		}
		if clock.SameDay(o.ScheduledTime, now) {
			s.TodaysOrders++
			s.TotalVolumeToday += o.Volume
		}
		if o.Status == StatusCompleted {
			s.Completed++
			if o.CompletedAt != nil && clock.SameDay(*o.CompletedAt, now) {
				s.CompletedToday++
			}
		}
		return s
	})
}
