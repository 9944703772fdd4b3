package analytics

import "time"

// Compute runs every calculator over the input bundle and returns one
// aggregated metrics value. It holds no state and is safe to call
// concurrently; each invocation is a fresh computation over its arguments.
func Compute(in Input, now time.Time) Metrics {
	dr := in.Window.RangeEnding(now)
	schedule := ScheduleFromOrders(in.WorkOrders)

	return Metrics{
		Utilization:  TechnicianUtilization(in.TimeEntries, schedule, dr),
		Completion:   CompletionTrends(in.WorkOrders, in.Window, now),
		Revenue:      RevenueMetrics(in.WorkOrders, in.Expenses, in.TimeEntries),
		Satisfaction: SatisfactionMetrics(in.WorkOrders, in.Feedback),
		Equipment:    EquipmentMetrics(in.WorkOrders, in.WarehouseItems),
	}
}
