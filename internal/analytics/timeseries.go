package analytics

import "time"

// DailyTrend buckets work orders into calendar-day trend points across the
// trailing window ending at now. The series always has exactly
// window.Days+1 points, oldest day first, with days of no activity
// zero-filled.
//
// Orders are matched on their created date, falling back to the scheduled
// date; orders with neither are excluded.
func DailyTrend(orders []WorkOrder, w Window, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, w.Days+1)

	for i := w.Days; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		point := TrendPoint{Date: day.Format(dayLayout)}

		for _, o := range orders {
			at := trendDate(o)
			if at.IsZero() || !sameDay(at, day) {
				continue
			}
			point.Count++
			if o.Completed() {
				point.CompletedCount++
			}
			point.Value += o.TotalAmount
		}

		points = append(points, point)
	}
	return points
}

func trendDate(o WorkOrder) time.Time {
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt
	}
	return o.ScheduledAt
}
