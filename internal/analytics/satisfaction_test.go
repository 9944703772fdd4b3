package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSatisfactionMetrics(t *testing.T) {
	t.Run("no rated orders yields an all-zero snapshot", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted},
			{Status: StatusPending},
		}

		snap := SatisfactionMetrics(orders, nil)

		assert.Zero(t, snap.AverageRating)
		assert.Zero(t, snap.NPSScore)
		assert.Zero(t, snap.ResponseRate)
		assert.NotNil(t, snap.Trends)
		assert.Empty(t, snap.Trends)
		assert.NotNil(t, snap.ImprovementAreas)
		assert.NotNil(t, snap.TopPerformers)
	})

	t.Run("all five-star ratings score NPS 100", func(t *testing.T) {
		orders := make([]WorkOrder, 5)
		for i := range orders {
			orders[i] = WorkOrder{Status: StatusCompleted, CustomerRating: 5}
		}

		snap := SatisfactionMetrics(orders, nil)

		assert.Equal(t, 5.0, snap.AverageRating)
		assert.Equal(t, 100.0, snap.NPSScore)
		assert.Equal(t, 100.0, snap.ResponseRate)
		assert.Equal(t, 5, snap.Promoters)
		assert.Zero(t, snap.Detractors)
	})

	t.Run("promoters and detractors on the rescaled band", func(t *testing.T) {
		orders := []WorkOrder{
			{CustomerRating: 5}, // 10 -> promoter
			{CustomerRating: 4}, // 7.5 -> passive
			{CustomerRating: 3}, // 5 -> detractor
			{CustomerRating: 1}, // 0 -> detractor
		}

		snap := SatisfactionMetrics(orders, nil)

		assert.Equal(t, 1, snap.Promoters)
		assert.Equal(t, 2, snap.Detractors)
		assert.Equal(t, -25.0, snap.NPSScore)
	})

	t.Run("response rate is clamped to 100", func(t *testing.T) {
		// Rated but not completed orders can push the raw ratio over 100%.
		orders := []WorkOrder{
			{Status: StatusCompleted, CustomerRating: 5},
			{Status: StatusPending, CustomerRating: 4},
		}

		snap := SatisfactionMetrics(orders, nil)

		assert.Equal(t, 100.0, snap.ResponseRate)
	})

	t.Run("monthly rating trends", func(t *testing.T) {
		feb := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
		jan := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
		orders := []WorkOrder{
			{CustomerRating: 4, CompletedAt: feb},
			{CustomerRating: 2, CompletedAt: feb},
			{CustomerRating: 5, CompletedAt: jan},
			{CustomerRating: 3}, // undated, excluded from trends
		}

		snap := SatisfactionMetrics(orders, nil)

		assert.Len(t, snap.Trends, 2)
		assert.Equal(t, "2025-01", snap.Trends[0].Month)
		assert.Equal(t, 5.0, snap.Trends[0].AverageRating)
		assert.Equal(t, "2025-02", snap.Trends[1].Month)
		assert.Equal(t, 3.0, snap.Trends[1].AverageRating)
	})

	t.Run("feedback categorization", func(t *testing.T) {
		orders := []WorkOrder{{CustomerRating: 5}}
		feedback := []Feedback{
			{Rating: 5},
			{Rating: 4, Type: FeedbackSuggestion},
			{Rating: 2, Type: FeedbackComplaint},
			{Rating: 1},
			{Rating: 0}, // unrated, neither positive nor negative
		}

		snap := SatisfactionMetrics(orders, feedback)

		assert.Equal(t, 2, snap.Feedback.Positive)
		assert.Equal(t, 2, snap.Feedback.Negative)
		assert.Equal(t, 1, snap.Feedback.Suggestions)
		assert.Equal(t, 1, snap.Feedback.Complaints)
	})

	t.Run("improvement areas ranked by priority", func(t *testing.T) {
		orders := []WorkOrder{
			// Plumbing: two low ratings averaging 1.5 -> priority 5.
			{CustomerRating: 1, Category: "Plumbing"},
			{CustomerRating: 2, Category: "Plumbing"},
			// Electrical: one rating of 3 -> priority 1.
			{CustomerRating: 3, Category: "Electrical"},
			// High ratings never become improvement areas.
			{CustomerRating: 5, Category: "HVAC"},
		}

		snap := SatisfactionMetrics(orders, nil)

		assert.Len(t, snap.ImprovementAreas, 2)
		assert.Equal(t, "Plumbing", snap.ImprovementAreas[0].Category)
		assert.Equal(t, 5.0, snap.ImprovementAreas[0].Priority)
		assert.Equal(t, "Electrical", snap.ImprovementAreas[1].Category)
	})

	t.Run("top performers need five rated jobs", func(t *testing.T) {
		var orders []WorkOrder
		for i := 0; i < 5; i++ {
			orders = append(orders, WorkOrder{Technician: "t1", CustomerRating: 4})
		}
		for i := 0; i < 6; i++ {
			orders = append(orders, WorkOrder{Technician: "t2", CustomerRating: 5})
		}
		orders = append(orders, WorkOrder{Technician: "t3", CustomerRating: 5})

		snap := SatisfactionMetrics(orders, nil)

		assert.Len(t, snap.TopPerformers, 2)
		assert.Equal(t, "t2", snap.TopPerformers[0].Technician)
		assert.Equal(t, 6, snap.TopPerformers[0].JobCount)
		assert.Equal(t, "t1", snap.TopPerformers[1].Technician)
	})

	t.Run("top performers capped at five", func(t *testing.T) {
		var orders []WorkOrder
		techs := []string{"a", "b", "c", "d", "e", "f"}
		for _, tech := range techs {
			for i := 0; i < 5; i++ {
				orders = append(orders, WorkOrder{Technician: tech, CustomerRating: 4})
			}
		}

		snap := SatisfactionMetrics(orders, nil)

		assert.Len(t, snap.TopPerformers, 5)
	})
}
