package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/fieldops/metrics-server/internal/analytics"
	"github.com/fieldops/metrics-server/internal/service/mocks"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(storage FieldDataRepository) *MetricsService {
	svc := NewMetricsService(storage, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

// TestNewMetricsService tests the constructor
func TestNewMetricsService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{}
		logger := zap.NewNop()

		service := NewMetricsService(mockRepo, logger)

		assert.NotNil(t, service)
		assert.Equal(t, mockRepo, service.storage)
		assert.Equal(t, logger, service.logger)
	})

	t.Run("nil storage panics", func(t *testing.T) {
		logger := zap.NewNop()

		assert.Panics(t, func() {
			NewMetricsService(nil, logger)
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{}

		service := NewMetricsService(mockRepo, nil)

		assert.NotNil(t, service)
		assert.NotNil(t, service.logger)
	})
}

// TestDashboardMetrics tests the full aggregation path
func TestDashboardMetrics(t *testing.T) {
	ctx := context.Background()
	window := analytics.Window{Days: 30}

	t.Run("successful aggregation", func(t *testing.T) {
		wantStart := testNow.AddDate(0, 0, -window.Days)
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				assert.Equal(t, wantStart, start)
				assert.Equal(t, testNow, end)
				return []analytics.WorkOrder{
					{Status: analytics.StatusCompleted, TotalAmount: 500, CustomerRating: 5},
					{Status: analytics.StatusPending},
				}, nil
			},
			ListTimeEntriesFunc: func(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error) {
				return []analytics.TimeEntry{{Technician: "t1", Hours: 8, Billable: true}}, nil
			},
			ListExpensesFunc: func(ctx context.Context, start, end time.Time) ([]analytics.Expense, error) {
				return nil, nil
			},
			ListFeedbackFunc: func(ctx context.Context, start, end time.Time) ([]analytics.Feedback, error) {
				return nil, nil
			},
			ListWarehouseItemsFunc: func(ctx context.Context) ([]analytics.WarehouseItem, error) {
				return []analytics.WarehouseItem{{Name: "Filters", Quantity: 0, MinimumStock: 5}}, nil
			},
		}

		service := newTestService(mockRepo)
		metrics, err := service.DashboardMetrics(ctx, window)

		assert.NoError(t, err)
		assert.Equal(t, 2, metrics.Completion.TotalOrders)
		assert.Equal(t, 50.0, metrics.Completion.CompletionRate)
		assert.Equal(t, 500.0, metrics.Revenue.TotalRevenue)
		assert.Contains(t, metrics.Utilization, "t1")
		assert.Equal(t, 100.0, metrics.Equipment.StockoutFrequency)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return nil, errors.New("database connection failed")
			},
		}

		service := newTestService(mockRepo)
		_, err := service.DashboardMetrics(ctx, window)

		assert.ErrorIs(t, err, ErrStorageFailure)
		assert.Contains(t, err.Error(), "database connection failed")
	})

	t.Run("unimplemented dependency fails fast", func(t *testing.T) {
		// The mock returns an error for any list the test does not stub.
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return nil, nil
			},
		}

		service := newTestService(mockRepo)
		_, err := service.DashboardMetrics(ctx, window)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

// TestCompletionTrends tests the completion path
func TestCompletionTrends(t *testing.T) {
	ctx := context.Background()
	window := analytics.Window{Days: 90}

	t.Run("successful calculation", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return []analytics.WorkOrder{
					{Status: analytics.StatusCompleted},
					{Status: analytics.StatusCompleted},
					{Status: analytics.StatusInProgress},
				}, nil
			},
		}

		service := newTestService(mockRepo)
		snap, err := service.CompletionTrends(ctx, window)

		assert.NoError(t, err)
		assert.Equal(t, 3, snap.TotalOrders)
		assert.InDelta(t, 66.67, snap.CompletionRate, 0.01)
		assert.Len(t, snap.Trends, 91)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return nil, errors.New("disk read error")
			},
		}

		service := newTestService(mockRepo)
		_, err := service.CompletionTrends(ctx, window)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

// TestRevenueMetrics tests the revenue path
func TestRevenueMetrics(t *testing.T) {
	ctx := context.Background()
	window := analytics.Window{Days: 30}

	t.Run("successful calculation", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return []analytics.WorkOrder{{Status: analytics.StatusCompleted, TotalAmount: 1000}}, nil
			},
			ListExpensesFunc: func(ctx context.Context, start, end time.Time) ([]analytics.Expense, error) {
				return []analytics.Expense{{Amount: 200}}, nil
			},
			ListTimeEntriesFunc: func(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error) {
				return []analytics.TimeEntry{{Technician: "t1", Hours: 2, HourlyRate: 50}}, nil
			},
		}

		service := newTestService(mockRepo)
		snap, err := service.RevenueMetrics(ctx, window)

		assert.NoError(t, err)
		assert.Equal(t, 1000.0, snap.TotalRevenue)
		assert.Equal(t, 300.0, snap.TotalExpenses)
		assert.Equal(t, 700.0, snap.GrossProfit)
	})

	t.Run("expense query failure", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return nil, nil
			},
			ListExpensesFunc: func(ctx context.Context, start, end time.Time) ([]analytics.Expense, error) {
				return nil, errors.New("query timeout")
			},
		}

		service := newTestService(mockRepo)
		_, err := service.RevenueMetrics(ctx, window)

		assert.ErrorIs(t, err, ErrStorageFailure)
		assert.Contains(t, err.Error(), "query timeout")
	})
}

// TestSatisfactionMetrics tests the satisfaction path
func TestSatisfactionMetrics(t *testing.T) {
	ctx := context.Background()
	window := analytics.Window{Days: 365}

	t.Run("successful calculation", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return []analytics.WorkOrder{
					{Status: analytics.StatusCompleted, CustomerRating: 5},
					{Status: analytics.StatusCompleted, CustomerRating: 4},
				}, nil
			},
			ListFeedbackFunc: func(ctx context.Context, start, end time.Time) ([]analytics.Feedback, error) {
				return []analytics.Feedback{{Rating: 5, Type: analytics.FeedbackSuggestion}}, nil
			},
		}

		service := newTestService(mockRepo)
		snap, err := service.SatisfactionMetrics(ctx, window)

		assert.NoError(t, err)
		assert.Equal(t, 4.5, snap.AverageRating)
		assert.Equal(t, 2, snap.RatedCount)
		assert.Equal(t, 1, snap.Feedback.Suggestions)
	})

	t.Run("feedback query failure", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return nil, nil
			},
			ListFeedbackFunc: func(ctx context.Context, start, end time.Time) ([]analytics.Feedback, error) {
				return nil, errors.New("table locked")
			},
		}

		service := newTestService(mockRepo)
		_, err := service.SatisfactionMetrics(ctx, window)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

// TestEquipmentMetrics tests the window-less equipment path
func TestEquipmentMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("queries the trailing year", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				assert.Equal(t, testNow.AddDate(0, 0, -365), start)
				assert.Equal(t, testNow, end)
				return []analytics.WorkOrder{{EquipmentUsed: []string{"drill"}}}, nil
			},
			ListWarehouseItemsFunc: func(ctx context.Context) ([]analytics.WarehouseItem, error) {
				return []analytics.WarehouseItem{
					{Name: "Filters", Quantity: 2, MinimumStock: 5},
				}, nil
			},
		}

		service := newTestService(mockRepo)
		snap, err := service.EquipmentMetrics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, snap.Utilization["drill"])
		assert.Len(t, snap.CriticalItems, 1)
	})

	t.Run("warehouse query failure", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return nil, nil
			},
			ListWarehouseItemsFunc: func(ctx context.Context) ([]analytics.WarehouseItem, error) {
				return nil, errors.New("connection reset")
			},
		}

		service := newTestService(mockRepo)
		_, err := service.EquipmentMetrics(ctx)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

// TestTechnicianUtilization tests the utilization path
func TestTechnicianUtilization(t *testing.T) {
	ctx := context.Background()
	window := analytics.Window{Days: 30}

	t.Run("successful calculation", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListTimeEntriesFunc: func(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error) {
				return []analytics.TimeEntry{
					{Technician: "t1", Hours: 10, Billable: true},
					{Technician: "t1", Hours: 10},
				}, nil
			},
			ListWorkOrdersFunc: func(ctx context.Context, start, end time.Time) ([]analytics.WorkOrder, error) {
				return nil, nil
			},
		}

		service := newTestService(mockRepo)
		util, err := service.TechnicianUtilization(ctx, window)

		assert.NoError(t, err)
		assert.Len(t, util, 1)
		assert.Equal(t, 20.0, util["t1"].TotalHours)
		assert.Equal(t, 50.0, util["t1"].Efficiency)
	})

	t.Run("time entry query failure", func(t *testing.T) {
		mockRepo := &mocks.MockFieldDataRepository{
			ListTimeEntriesFunc: func(ctx context.Context, start, end time.Time) ([]analytics.TimeEntry, error) {
				return nil, errors.New("no such table")
			},
		}

		service := newTestService(mockRepo)
		_, err := service.TechnicianUtilization(ctx, window)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}
