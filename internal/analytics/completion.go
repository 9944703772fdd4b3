package analytics

import "time"

// CompletionTrends aggregates work orders into completion metrics plus a
// daily trend series for the window ending at now.
//
// Completed orders missing either the created or the completion date stay in
// the completed count but are excluded from the average-completion-time and
// on-time numerators.
func CompletionTrends(orders []WorkOrder, w Window, now time.Time) CompletionSnapshot {
	snap := CompletionSnapshot{
		TotalOrders:       len(orders),
		CategoryBreakdown: make(map[string]CategoryStats),
		Trends:            DailyTrend(orders, w, now),
	}

	var (
		completionDaysSum float64
		timedCompleted    int
		onTime            int
		withoutFollowUp   int
		ratingSums        = make(map[string]float64)
	)

	for _, o := range orders {
		cat := o.CategoryOrDefault()
		stats := snap.CategoryBreakdown[cat]
		stats.Count++
		stats.Revenue += o.TotalAmount
		ratingSums[cat] += o.CustomerRating
		snap.CategoryBreakdown[cat] = stats

		if !o.Completed() {
			continue
		}
		snap.CompletedOrders++
		if !o.FollowUpRequired {
			withoutFollowUp++
		}

		if o.CreatedAt.IsZero() || o.CompletedAt.IsZero() {
			continue
		}
		days := o.CompletedAt.Sub(o.CreatedAt).Hours() / 24
		completionDaysSum += days
		timedCompleted++
		if days <= o.EstimatedOrDefault() {
			onTime++
		}
	}

	for cat, stats := range snap.CategoryBreakdown {
		stats.AvgRating = ratingSums[cat] / float64(stats.Count)
		snap.CategoryBreakdown[cat] = stats
	}

	snap.CompletionRate = percent(float64(snap.CompletedOrders), float64(snap.TotalOrders))
	if timedCompleted > 0 {
		snap.AverageCompletionTime = completionDaysSum / float64(timedCompleted)
	}
	snap.OnTimeRate = percent(float64(onTime), float64(snap.CompletedOrders))
	snap.FirstTimeFixRate = percent(float64(withoutFollowUp), float64(snap.CompletedOrders))
	return snap
}
