package analytics

import "time"

// Event types understood by MergeUpdate.
const (
	EventWorkOrderCompleted = "work_order_completed"
	EventTechnicianCheckIn  = "technician_check_in"
	EventCustomerFeedback   = "customer_feedback"
)

// Event is a typed realtime update delivered by the update feed.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// MergeUpdate returns a new metrics value incorporating the event. The
// merge is incremental: it touches only the fields the event names, using
// the counts carried in the snapshots, and never recomputes from the raw
// record arrays. The previous metrics value is left unmodified so consumers
// can diff old against new state.
//
// Unrecognized event types return the metrics unchanged.
func MergeUpdate(m Metrics, ev Event) Metrics {
	switch ev.Type {
	case EventWorkOrderCompleted:
		m.Completion = mergeCompletedOrder(m.Completion)
	case EventTechnicianCheckIn:
		m.Utilization = mergeCheckIn(m.Utilization, ev)
	case EventCustomerFeedback:
		m.Satisfaction = mergeFeedback(m.Satisfaction, ev)
	}
	return m
}

func mergeCompletedOrder(c CompletionSnapshot) CompletionSnapshot {
	if c.TotalOrders == 0 {
		// The completed order was never part of the baseline.
		c.TotalOrders = 1
		c.CompletedOrders = 1
	} else if c.CompletedOrders < c.TotalOrders {
		c.CompletedOrders++
	}
	c.CompletionRate = percent(float64(c.CompletedOrders), float64(c.TotalOrders))
	return c
}

func mergeCheckIn(util map[string]UtilizationSnapshot, ev Event) map[string]UtilizationSnapshot {
	tech := eventString(ev.Data, "technician")
	hours := eventFloat(ev.Data, "hours")
	if tech == "" || hours <= 0 {
		return util
	}

	next := make(map[string]UtilizationSnapshot, len(util)+1)
	for k, v := range util {
		next[k] = v
	}

	snap := next[tech]
	snap.TotalHours += hours
	if eventBool(ev.Data, "billable") {
		snap.BillableHours += hours
	}
	snap.Efficiency = percent(snap.BillableHours, snap.TotalHours)
	snap.Productivity = percent(snap.TotalHours, snap.ScheduledHours)
	// A zero capacity means the technician was never in the baseline;
	// overtime stays unknown until the next full recompute.
	if snap.CapacityHours > 0 && snap.TotalHours > snap.CapacityHours {
		snap.OvertimeHours = snap.TotalHours - snap.CapacityHours
	}
	next[tech] = snap
	return next
}

func mergeFeedback(s SatisfactionSnapshot, ev Event) SatisfactionSnapshot {
	rating := eventFloat(ev.Data, "rating")
	if rating <= 0 {
		return s
	}

	count := float64(s.RatedCount)
	s.AverageRating = (s.AverageRating*count + rating) / (count + 1)
	s.RatedCount++

	nps := (rating - 1) * 2.5
	switch {
	case nps >= 9:
		s.Promoters++
	case nps <= 6:
		s.Detractors++
	}
	s.NPSScore = float64(s.Promoters-s.Detractors) / float64(s.RatedCount) * 100
	return s
}

func eventString(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func eventFloat(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func eventBool(data map[string]any, key string) bool {
	if b, ok := data[key].(bool); ok {
		return b
	}
	return false
}
