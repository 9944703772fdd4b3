package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utilizationRange() DateRange {
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: end.AddDate(0, 0, -7), End: end}
}

func TestTechnicianUtilization(t *testing.T) {
	dr := utilizationRange()

	t.Run("billable ratio and productivity", func(t *testing.T) {
		entries := []TimeEntry{
			{Technician: "t1", Hours: 10, Billable: true},
			{Technician: "t1", Hours: 5, Billable: false},
		}
		schedule := []ScheduleEvent{
			{Technician: "t1", Start: dr.Start, End: dr.Start.Add(10 * time.Hour)},
		}

		result := TechnicianUtilization(entries, schedule, dr)

		assert.Len(t, result, 1)
		snap := result["t1"]
		assert.Equal(t, 15.0, snap.TotalHours)
		assert.Equal(t, 10.0, snap.BillableHours)
		assert.Equal(t, 10.0, snap.ScheduledHours)
		assert.InDelta(t, 66.67, snap.Efficiency, 0.01)
		assert.InDelta(t, 150.0, snap.Productivity, 0.001)
	})

	t.Run("overtime above working-day capacity", func(t *testing.T) {
		// 7 calendar days -> 5 working days -> 40h capacity.
		entries := []TimeEntry{
			{Technician: "t1", Hours: 46, Billable: true},
		}

		result := TechnicianUtilization(entries, nil, dr)

		assert.InDelta(t, 6.0, result["t1"].OvertimeHours, 0.001)
		assert.Equal(t, 40.0, result["t1"].CapacityHours)
	})

	t.Run("no overtime under capacity", func(t *testing.T) {
		entries := []TimeEntry{
			{Technician: "t1", Hours: 20, Billable: true},
		}

		result := TechnicianUtilization(entries, nil, dr)

		assert.Zero(t, result["t1"].OvertimeHours)
	})

	t.Run("schedule-only technician is omitted", func(t *testing.T) {
		entries := []TimeEntry{
			{Technician: "t1", Hours: 8, Billable: true},
		}
		schedule := []ScheduleEvent{
			{Technician: "t2", Start: dr.Start, End: dr.Start.Add(8 * time.Hour)},
		}

		result := TechnicianUtilization(entries, schedule, dr)

		assert.Contains(t, result, "t1")
		assert.NotContains(t, result, "t2")
	})

	t.Run("entries without technician are skipped", func(t *testing.T) {
		entries := []TimeEntry{
			{Technician: "", Hours: 8, Billable: true},
			{Technician: "t1", Hours: 4},
		}

		result := TechnicianUtilization(entries, nil, dr)

		assert.Len(t, result, 1)
	})

	t.Run("zero hours produce zero ratios", func(t *testing.T) {
		entries := []TimeEntry{
			{Technician: "t1", Hours: 0},
		}

		result := TechnicianUtilization(entries, nil, dr)

		snap := result["t1"]
		assert.Zero(t, snap.Efficiency)
		assert.Zero(t, snap.Productivity)
	})

	t.Run("empty input", func(t *testing.T) {
		result := TechnicianUtilization(nil, nil, dr)
		assert.Empty(t, result)
	})
}

func TestScheduleFromOrders(t *testing.T) {
	scheduled := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	t.Run("estimated end from duration", func(t *testing.T) {
		orders := []WorkOrder{
			{Technician: "t1", ScheduledAt: scheduled, EstimatedDays: 0.5},
		}

		events := ScheduleFromOrders(orders)

		assert.Len(t, events, 1)
		assert.Equal(t, scheduled.Add(12*time.Hour), events[0].End)
	})

	t.Run("missing duration defaults to one day", func(t *testing.T) {
		orders := []WorkOrder{
			{Technician: "t1", ScheduledAt: scheduled},
		}

		events := ScheduleFromOrders(orders)

		assert.Equal(t, scheduled.AddDate(0, 0, 1), events[0].End)
	})

	t.Run("unscheduled or unassigned orders are excluded", func(t *testing.T) {
		orders := []WorkOrder{
			{Technician: "t1"},
			{ScheduledAt: scheduled},
		}

		assert.Empty(t, ScheduleFromOrders(orders))
	})
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		name     string
		days     int
		expected float64
	}{
		{name: "one week", days: 7, expected: 5},
		{name: "thirty days", days: 30, expected: 21},
		{name: "single day", days: 1, expected: 0},
		{name: "zero range", days: 0, expected: 0},
	}

	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dr := DateRange{Start: end.AddDate(0, 0, -tc.days), End: end}
			assert.Equal(t, tc.expected, dr.WorkingDays())
		})
	}
}
