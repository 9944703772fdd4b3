package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevenueMetrics(t *testing.T) {
	t.Run("empty input is all zero", func(t *testing.T) {
		snap := RevenueMetrics(nil, nil, nil)

		assert.Zero(t, snap.TotalRevenue)
		assert.Zero(t, snap.TotalExpenses)
		assert.Zero(t, snap.GrossProfit)
		assert.Zero(t, snap.ProfitMargin)
		assert.Zero(t, snap.AverageJobValue)
		assert.Zero(t, snap.RevenuePerTechnician)
		assert.Empty(t, snap.MonthlyTrends)
	})

	t.Run("only completed orders count as revenue", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted, TotalAmount: 1000},
			{Status: StatusCompleted, TotalAmount: 500},
			{Status: StatusPending, TotalAmount: 9999},
		}
		expenses := []Expense{
			{Amount: 300},
		}

		snap := RevenueMetrics(orders, expenses, nil)

		assert.Equal(t, 1500.0, snap.TotalRevenue)
		assert.Equal(t, 300.0, snap.TotalExpenses)
		assert.Equal(t, 1200.0, snap.GrossProfit)
		assert.Equal(t, 80.0, snap.ProfitMargin)
		assert.Equal(t, 750.0, snap.AverageJobValue)
		assert.Equal(t, 150.0, snap.CostPerJob)
	})

	t.Run("labor cost uses the default hourly rate", func(t *testing.T) {
		entries := []TimeEntry{
			{Technician: "t1", Hours: 10},               // 10 * 50
			{Technician: "t2", Hours: 4, HourlyRate: 75}, // 4 * 75
		}

		snap := RevenueMetrics(nil, nil, entries)

		assert.Equal(t, 800.0, snap.TotalExpenses)
		assert.Equal(t, -800.0, snap.GrossProfit)
	})

	t.Run("revenue per technician over distinct technicians", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted, TotalAmount: 900},
		}
		entries := []TimeEntry{
			{Technician: "t1", Hours: 1, HourlyRate: 10},
			{Technician: "t1", Hours: 1, HourlyRate: 10},
			{Technician: "t2", Hours: 1, HourlyRate: 10},
			{Technician: "", Hours: 1, HourlyRate: 10},
		}

		snap := RevenueMetrics(orders, nil, entries)

		assert.Equal(t, 450.0, snap.RevenuePerTechnician)
	})

	t.Run("profitability by category", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted, Category: "HVAC", TotalAmount: 1000},
			{Status: StatusCompleted, Category: "HVAC", TotalAmount: 250},
			{Status: StatusCompleted, TotalAmount: 100},
		}

		snap := RevenueMetrics(orders, nil, nil)

		assert.Equal(t, 1250.0, snap.ProfitabilityByCategory["HVAC"])
		assert.Equal(t, 100.0, snap.ProfitabilityByCategory[DefaultCategory])
	})

	t.Run("monthly trends sorted chronologically", func(t *testing.T) {
		march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		january := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
		orders := []WorkOrder{
			{Status: StatusCompleted, TotalAmount: 200, CompletedAt: march},
			{Status: StatusCompleted, TotalAmount: 100, CompletedAt: january},
		}
		expenses := []Expense{
			{Amount: 40, Date: march},
		}

		snap := RevenueMetrics(orders, expenses, nil)

		assert.Len(t, snap.MonthlyTrends, 2)
		assert.Equal(t, "2025-01", snap.MonthlyTrends[0].Month)
		assert.Equal(t, 100.0, snap.MonthlyTrends[0].Revenue)
		assert.Equal(t, "2025-03", snap.MonthlyTrends[1].Month)
		assert.Equal(t, 200.0, snap.MonthlyTrends[1].Revenue)
		assert.Equal(t, 40.0, snap.MonthlyTrends[1].Expenses)
		assert.Equal(t, 160.0, snap.MonthlyTrends[1].Profit)
	})

	t.Run("undated records stay out of monthly trends", func(t *testing.T) {
		orders := []WorkOrder{
			{Status: StatusCompleted, TotalAmount: 100},
		}
		expenses := []Expense{
			{Amount: 10},
		}

		snap := RevenueMetrics(orders, expenses, nil)

		assert.Empty(t, snap.MonthlyTrends)
		assert.Equal(t, 100.0, snap.TotalRevenue)
		assert.Equal(t, 10.0, snap.TotalExpenses)
	})
}
