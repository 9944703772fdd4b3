package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/fieldops/metrics-server/internal/analytics"
)

// MockFieldDataRepository is a mock implementation of the
// FieldDataRepository interface for testing the service layer.
type MockFieldDataRepository struct {
	ListWorkOrdersFunc     func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error)
	ListTimeEntriesFunc    func(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error)
	ListExpensesFunc       func(ctx context.Context, start, end time.Time) ([]analytics.Expense, error)
	ListFeedbackFunc       func(ctx context.Context, start, end time.Time) ([]analytics.Feedback, error)
	ListWarehouseItemsFunc func(ctx context.Context) ([]analytics.WarehouseItem, error)
}

// ListWorkOrders implements the FieldDataRepository interface
func (m *MockFieldDataRepository) ListWorkOrders(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
	if m.ListWorkOrdersFunc != nil {
		return m.ListWorkOrdersFunc(ctx, start, end)
	}
	return nil, errors.New("ListWorkOrdersFunc not implemented")
}

// ListTimeEntries implements the FieldDataRepository interface
func (m *MockFieldDataRepository) ListTimeEntries(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error) {
	if m.ListTimeEntriesFunc != nil {
		return m.ListTimeEntriesFunc(ctx, start, end)
	}
	return nil, errors.New("ListTimeEntriesFunc not implemented")
}

// ListExpenses implements the FieldDataRepository interface
func (m *MockFieldDataRepository) ListExpenses(ctx context.Context, start, end time.Time) ([]analytics.Expense, error) {
	if m.ListExpensesFunc != nil {
		return m.ListExpensesFunc(ctx, start, end)
	}
	return nil, errors.New("ListExpensesFunc not implemented")
}

// ListFeedback implements the FieldDataRepository interface
func (m *MockFieldDataRepository) ListFeedback(ctx context.Context, start, end time.Time) ([]analytics.Feedback, error) {
	if m.ListFeedbackFunc != nil {
		return m.ListFeedbackFunc(ctx, start, end)
	}
	return nil, errors.New("ListFeedbackFunc not implemented")
}

// ListWarehouseItems implements the FieldDataRepository interface
func (m *MockFieldDataRepository) ListWarehouseItems(ctx context.Context) ([]analytics.WarehouseItem, error) {
	if m.ListWarehouseItemsFunc != nil {
		return m.ListWarehouseItemsFunc(ctx)
	}
	return nil, errors.New("ListWarehouseItemsFunc not implemented")
}
