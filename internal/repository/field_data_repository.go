package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fieldops/metrics-server/internal/analytics"
)

// FieldDataRepository loads raw operational records from the database.
// Normalization happens at this boundary: NULL columns resolve to zero
// values, unparsable dates to zero times, and the equipment_used column
// (either a JSON array or a plain string) is flattened to a string slice.
type FieldDataRepository struct {
	db *sql.DB
}

func NewFieldDataRepository(db *sql.DB) *FieldDataRepository {
	return &FieldDataRepository{db: db}
}

// ListWorkOrders returns work orders created within the range.
func (r *FieldDataRepository) ListWorkOrders(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
	const query = `
		SELECT id, status, created_at, scheduled_at, completed_at,
		       estimated_days, total_amount, category, customer_rating,
		       follow_up_required, technician, equipment_used
		FROM work_orders
		WHERE created_at >= ? AND created_at <= ?
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query ListWorkOrders: %w", err)
	}
	defer rows.Close()

	var orders []analytics.WorkOrder
	for rows.Next() {
		var (
			o                                 analytics.WorkOrder
			status, category, tech, equipment sql.NullString
			createdAt, scheduledAt, completed sql.NullString
			estimatedDays, amount, rating     sql.NullFloat64
			followUp                          sql.NullBool
		)
		if err := rows.Scan(&o.ID, &status, &createdAt, &scheduledAt, &completed,
			&estimatedDays, &amount, &category, &rating, &followUp, &tech, &equipment); err != nil {
			return nil, fmt.Errorf("scan ListWorkOrders row: %w", err)
		}
		o.Status = status.String
		o.CreatedAt = parseDate(createdAt.String)
		o.ScheduledAt = parseDate(scheduledAt.String)
		o.CompletedAt = parseDate(completed.String)
		o.EstimatedDays = estimatedDays.Float64
		o.TotalAmount = amount.Float64
		o.Category = category.String
		o.CustomerRating = rating.Float64
		o.FollowUpRequired = followUp.Bool
		o.Technician = tech.String
		o.EquipmentUsed = flattenEquipment(equipment.String)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListWorkOrders: %w", err)
	}
	return orders, nil
}

// ListTimeEntries returns time entries logged within the range. The
// technician id falls back to the legacy user_id column when unset.
func (r *FieldDataRepository) ListTimeEntries(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error) {
	const query = `
		SELECT technician, user_id, hours, billable, hourly_rate
		FROM time_entries
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query ListTimeEntries: %w", err)
	}
	defer rows.Close()

	var entries []analytics.TimeEntry
	for rows.Next() {
		var (
			e          analytics.TimeEntry
			tech, user sql.NullString
			hours      sql.NullFloat64
			billable   sql.NullBool
			rate       sql.NullFloat64
		)
		if err := rows.Scan(&tech, &user, &hours, &billable, &rate); err != nil {
			return nil, fmt.Errorf("scan ListTimeEntries row: %w", err)
		}
		e.Technician = tech.String
		if e.Technician == "" {
			e.Technician = user.String
		}
		e.Hours = hours.Float64
		e.Billable = billable.Bool
		e.HourlyRate = rate.Float64
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListTimeEntries: %w", err)
	}
	return entries, nil
}

// ListExpenses returns expenses dated within the range.
func (r *FieldDataRepository) ListExpenses(ctx context.Context, start, end time.Time) ([]analytics.Expense, error) {
	const query = `
		SELECT expense_date, amount, category
		FROM expenses
		WHERE expense_date >= ? AND expense_date <= ?
		ORDER BY expense_date
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query ListExpenses: %w", err)
	}
	defer rows.Close()

	var expenses []analytics.Expense
	for rows.Next() {
		var (
			e        analytics.Expense
			date     sql.NullString
			amount   sql.NullFloat64
			category sql.NullString
		)
		if err := rows.Scan(&date, &amount, &category); err != nil {
			return nil, fmt.Errorf("scan ListExpenses row: %w", err)
		}
		e.Date = parseDate(date.String)
		e.Amount = amount.Float64
		e.Category = category.String
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListExpenses: %w", err)
	}
	return expenses, nil
}

// ListFeedback returns customer feedback submitted within the range.
func (r *FieldDataRepository) ListFeedback(ctx context.Context, start, end time.Time) ([]analytics.Feedback, error) {
	const query = `
		SELECT rating, type, comments
		FROM feedback
		WHERE created_at >= ? AND created_at <= ?
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query ListFeedback: %w", err)
	}
	defer rows.Close()

	var feedback []analytics.Feedback
	for rows.Next() {
		var (
			f              analytics.Feedback
			rating         sql.NullFloat64
			ftype, comment sql.NullString
		)
		if err := rows.Scan(&rating, &ftype, &comment); err != nil {
			return nil, fmt.Errorf("scan ListFeedback row: %w", err)
		}
		f.Rating = rating.Float64
		f.Type = ftype.String
		f.Comments = comment.String
		feedback = append(feedback, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListFeedback: %w", err)
	}
	return feedback, nil
}

// ListWarehouseItems returns the full warehouse inventory.
func (r *FieldDataRepository) ListWarehouseItems(ctx context.Context) ([]analytics.WarehouseItem, error) {
	const query = `
		SELECT name, quantity, minimum_stock, unit_cost
		FROM warehouse_items
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ListWarehouseItems: %w", err)
	}
	defer rows.Close()

	var items []analytics.WarehouseItem
	for rows.Next() {
		var (
			item           analytics.WarehouseItem
			name           sql.NullString
			qty, min, cost sql.NullFloat64
		)
		if err := rows.Scan(&name, &qty, &min, &cost); err != nil {
			return nil, fmt.Errorf("scan ListWarehouseItems row: %w", err)
		}
		item.Name = name.String
		item.Quantity = qty.Float64
		item.MinimumStock = min.Float64
		item.UnitCost = cost.Float64
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListWarehouseItems: %w", err)
	}
	return items, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses a stored date string; unparsable values become the zero
// time, which excludes the record from date-keyed aggregation downstream.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// flattenEquipment handles the equipment_used column holding either a JSON
// array of names or one plain name.
func flattenEquipment(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var names []string
		if err := json.Unmarshal([]byte(raw), &names); err == nil {
			out := names[:0]
			for _, n := range names {
				if n != "" {
					out = append(out, n)
				}
			}
			return out
		}
	}
	return []string{raw}
}
