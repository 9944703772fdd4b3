package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompletionTrends(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	window := Window{Days: 30}

	t.Run("empty input returns zero snapshot with full series", func(t *testing.T) {
		snap := CompletionTrends(nil, window, now)

		assert.Zero(t, snap.CompletionRate)
		assert.Zero(t, snap.AverageCompletionTime)
		assert.Zero(t, snap.OnTimeRate)
		assert.Zero(t, snap.FirstTimeFixRate)
		assert.Empty(t, snap.CategoryBreakdown)
		assert.Len(t, snap.Trends, 31)
	})

	t.Run("completion rate over all orders", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted},
			{Status: StatusCompleted},
			{Status: StatusPending},
			{Status: StatusInProgress},
		}

		snap := CompletionTrends(orders, window, now)

		assert.Equal(t, 4, snap.TotalOrders)
		assert.Equal(t, 2, snap.CompletedOrders)
		assert.Equal(t, 50.0, snap.CompletionRate)
	})

	t.Run("average completion time and on-time delivery", func(t *testing.T) {
		created := now.AddDate(0, 0, -10)
		orders := []WorkOrder{
			// Half a day, default estimate of one day: on time.
			{Status: StatusCompleted, CreatedAt: created, CompletedAt: created.Add(12 * time.Hour)},
			// Three days against a two-day estimate: late.
			{Status: StatusCompleted, CreatedAt: created, CompletedAt: created.AddDate(0, 0, 3), EstimatedDays: 2},
		}

		snap := CompletionTrends(orders, window, now)

		assert.InDelta(t, 1.75, snap.AverageCompletionTime, 0.001)
		assert.Equal(t, 50.0, snap.OnTimeRate)
	})

	t.Run("completed orders without dates stay in the rate", func(t *testing.T) {
		created := now.AddDate(0, 0, -5)
		orders := []WorkOrder{
			{Status: StatusCompleted, CreatedAt: created, CompletedAt: created.Add(6 * time.Hour)},
			{Status: StatusCompleted}, // no dates
		}

		snap := CompletionTrends(orders, window, now)

		assert.Equal(t, 2, snap.CompletedOrders)
		assert.Equal(t, 100.0, snap.CompletionRate)
		assert.InDelta(t, 0.25, snap.AverageCompletionTime, 0.001)
		// Only the dated order can count as on time.
		assert.Equal(t, 50.0, snap.OnTimeRate)
	})

	t.Run("first-time-fix rate", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted},
			{Status: StatusCompleted, FollowUpRequired: true},
			{Status: StatusCompleted},
			{Status: StatusPending, FollowUpRequired: true},
		}

		snap := CompletionTrends(orders, window, now)

		assert.InDelta(t, 66.67, snap.FirstTimeFixRate, 0.01)
	})

	t.Run("category breakdown covers all orders", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted, Category: "HVAC", TotalAmount: 1000, CustomerRating: 5},
			{Status: StatusPending, Category: "HVAC", TotalAmount: 500, CustomerRating: 3},
			{Status: StatusCompleted, TotalAmount: 200},
		}

		snap := CompletionTrends(orders, window, now)

		assert.Len(t, snap.CategoryBreakdown, 2)

		hvac := snap.CategoryBreakdown["HVAC"]
		assert.Equal(t, 2, hvac.Count)
		assert.Equal(t, 1500.0, hvac.Revenue)
		assert.Equal(t, 4.0, hvac.AvgRating)

		other := snap.CategoryBreakdown[DefaultCategory]
		assert.Equal(t, 1, other.Count)
		assert.Equal(t, 200.0, other.Revenue)
	})
}
