// Package analytics contains the pure calculators that turn raw field-service
// records (time entries, work orders, expenses, feedback, warehouse items)
// into derived dashboard metrics.
//
// Every calculator is total: any well-typed input, including empty slices and
// records with missing fields, produces a finite zero-valued result rather
// than an error. Missing numerics resolve to 0 (hourly rate to a documented
// default), missing strings to a documented literal, and records with a zero
// date are excluded from date-keyed aggregation.
package analytics

import (
	"math"
	"time"
)

const (
	// DefaultHourlyRate is assumed for time entries without a rate.
	DefaultHourlyRate = 50.0

	// DefaultCategory keeps category groupings meaningful for
	// uncategorized work orders and expenses.
	DefaultCategory = "Other"

	// DefaultFeedbackType is used for feedback records without a type.
	DefaultFeedbackType = "general"

	StatusCompleted  = "completed"
	StatusPending    = "pending"
	StatusInProgress = "in_progress"

	FeedbackSuggestion = "suggestion"
	FeedbackComplaint  = "complaint"

	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// TimeEntry is a logged block of technician work.
type TimeEntry struct {
	Technician string
	Hours      float64
	Billable   bool
	HourlyRate float64 // 0 means unset
}

// Rate returns the entry's hourly rate, falling back to DefaultHourlyRate.
func (e TimeEntry) Rate() float64 {
	if e.HourlyRate > 0 {
		return e.HourlyRate
	}
	return DefaultHourlyRate
}

// WorkOrder is a job record. Zero time values mean the date is unknown.
type WorkOrder struct {
	ID               string
	Status           string
	CreatedAt        time.Time
	ScheduledAt      time.Time
	CompletedAt      time.Time
	EstimatedDays    float64
	TotalAmount      float64
	Category         string
	CustomerRating   float64 // 1-5, 0 means unrated
	FollowUpRequired bool
	Technician       string
	EquipmentUsed    []string
}

// Completed reports whether the order reached the completed status.
func (o WorkOrder) Completed() bool {
	return o.Status == StatusCompleted
}

// CategoryOrDefault returns the order category, defaulting to DefaultCategory.
func (o WorkOrder) CategoryOrDefault() string {
	if o.Category != "" {
		return o.Category
	}
	return DefaultCategory
}

// EstimatedOrDefault returns the estimated duration in days, defaulting to 1.
func (o WorkOrder) EstimatedOrDefault() float64 {
	if o.EstimatedDays > 0 {
		return o.EstimatedDays
	}
	return 1
}

// Expense is a recorded business expense.
type Expense struct {
	Date     time.Time
	Amount   float64
	Category string
}

// Feedback is a standalone customer feedback record.
type Feedback struct {
	Rating   float64
	Type     string
	Comments string
}

// TypeOrDefault returns the feedback type, defaulting to DefaultFeedbackType.
func (f Feedback) TypeOrDefault() string {
	if f.Type != "" {
		return f.Type
	}
	return DefaultFeedbackType
}

// WarehouseItem is a stocked inventory item.
type WarehouseItem struct {
	Name         string
	Quantity     float64
	MinimumStock float64
	UnitCost     float64
}

// ScheduleEvent is a planned block of technician time, derived from a
// work order's scheduled date and estimated duration.
type ScheduleEvent struct {
	Technician string
	Start      time.Time
	End        time.Time
}

// ScheduleFromOrders derives schedule events from work orders that carry a
// scheduled date. The estimated end is the scheduled start plus the order's
// estimated duration.
func ScheduleFromOrders(orders []WorkOrder) []ScheduleEvent {
	events := make([]ScheduleEvent, 0, len(orders))
	for _, o := range orders {
		if o.ScheduledAt.IsZero() || o.Technician == "" {
			continue
		}
		days := o.EstimatedOrDefault()
		events = append(events, ScheduleEvent{
			Technician: o.Technician,
			Start:      o.ScheduledAt,
			End:        o.ScheduledAt.Add(time.Duration(days * 24 * float64(time.Hour))),
		})
	}
	return events
}

// DateRange is a closed interval of time.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// WorkingDays estimates the number of business days in the range as
// floor(calendarDays * 5/7).
func (r DateRange) WorkingDays() float64 {
	if r.End.Before(r.Start) {
		return 0
	}
	calendarDays := r.End.Sub(r.Start).Hours() / 24
	return math.Floor(calendarDays * 5 / 7)
}

// Window is a trailing time window selected by a dashboard token.
type Window struct {
	Days int
}

// Supported window tokens.
const (
	Token30Days  = "30days"
	Token90Days  = "90days"
	Token365Days = "365days"
)

// ParseWindow maps a dashboard time-range token to a trailing window.
func ParseWindow(token string) (Window, bool) {
	switch token {
	case Token30Days:
		return Window{Days: 30}, true
	case Token90Days:
		return Window{Days: 90}, true
	case Token365Days:
		return Window{Days: 365}, true
	}
	return Window{}, false
}

// RangeEnding returns the date range covered by the window, ending at now.
func (w Window) RangeEnding(now time.Time) DateRange {
	return DateRange{Start: now.AddDate(0, 0, -w.Days), End: now}
}

// percent returns part/whole*100, or 0 when whole is not positive.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// clampPercent bounds a percentage to [0,100].
func clampPercent(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func sameDay(a, b time.Time) bool {
	return a.Format(dayLayout) == b.Format(dayLayout)
}

func monthKey(t time.Time) string {
	return t.Format(monthLayout)
}
