package service

import (
	"context"
	"time"

	"github.com/fieldops/metrics-server/internal/analytics"
)

// FieldDataRepository defines the database operations the metrics service
// depends on.
type FieldDataRepository interface {
	ListWorkOrders(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error)
	ListTimeEntries(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error)
	ListExpenses(ctx context.Context, start, end time.Time) ([]analytics.Expense, error)
	ListFeedback(ctx context.Context, start, end time.Time) ([]analytics.Feedback, error)
	ListWarehouseItems(ctx context.Context) ([]analytics.WarehouseItem, error)
}
