package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fieldops/metrics-server/internal/analytics"
)

const (
	dbTimeout = 1 * time.Second

	// Equipment metrics are not window-scoped; usage counts cover the
	// trailing year.
	equipmentLookbackDays = 365
)

var ErrStorageFailure = errors.New("storage failure")

// MetricsService loads raw records and runs the analytics calculators over
// them. It holds no mutable state between calls.
type MetricsService struct {
	storage FieldDataRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewMetricsService creates a new MetricsService instance.
func NewMetricsService(storage FieldDataRepository, logger *zap.Logger) *MetricsService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &MetricsService{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// DashboardMetrics computes the full aggregated metrics bundle for the window.
func (s *MetricsService) DashboardMetrics(ctx context.Context, w analytics.Window) (analytics.Metrics, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	now := s.now()
	dr := w.RangeEnding(now)

	orders, err := s.storage.ListWorkOrders(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.Metrics{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	entries, err := s.storage.ListTimeEntries(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.Metrics{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	expenses, err := s.storage.ListExpenses(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.Metrics{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	feedback, err := s.storage.ListFeedback(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.Metrics{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	items, err := s.storage.ListWarehouseItems(dbCtx)
	if err != nil {
		return analytics.Metrics{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	metrics := analytics.Compute(analytics.Input{
		WorkOrders:     orders,
		TimeEntries:    entries,
		Expenses:       expenses,
		WarehouseItems: items,
		Feedback:       feedback,
		Window:         w,
	}, now)

	s.logger.Info("computed dashboard metrics",
		zap.Int("work_orders", len(orders)),
		zap.Int("time_entries", len(entries)),
		zap.Int("window_days", w.Days))

	return metrics, nil
}

// TechnicianUtilization computes per-technician utilization for the window.
func (s *MetricsService) TechnicianUtilization(ctx context.Context, w analytics.Window) (map[string]analytics.UtilizationSnapshot, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	dr := w.RangeEnding(s.now())

	entries, err := s.storage.ListTimeEntries(dbCtx, dr.Start, dr.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	orders, err := s.storage.ListWorkOrders(dbCtx, dr.Start, dr.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return analytics.TechnicianUtilization(entries, analytics.ScheduleFromOrders(orders), dr), nil
}

// CompletionTrends computes completion metrics and the daily trend series.
func (s *MetricsService) CompletionTrends(ctx context.Context, w analytics.Window) (analytics.CompletionSnapshot, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	now := s.now()
	dr := w.RangeEnding(now)

	orders, err := s.storage.ListWorkOrders(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.CompletionSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return analytics.CompletionTrends(orders, w, now), nil
}

// RevenueMetrics computes revenue and profitability metrics for the window.
func (s *MetricsService) RevenueMetrics(ctx context.Context, w analytics.Window) (analytics.RevenueSnapshot, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	dr := w.RangeEnding(s.now())

	orders, err := s.storage.ListWorkOrders(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.RevenueSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	expenses, err := s.storage.ListExpenses(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.RevenueSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	entries, err := s.storage.ListTimeEntries(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.RevenueSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return analytics.RevenueMetrics(orders, expenses, entries), nil
}

// SatisfactionMetrics computes customer satisfaction metrics for the window.
func (s *MetricsService) SatisfactionMetrics(ctx context.Context, w analytics.Window) (analytics.SatisfactionSnapshot, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	dr := w.RangeEnding(s.now())

	orders, err := s.storage.ListWorkOrders(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.SatisfactionSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	feedback, err := s.storage.ListFeedback(dbCtx, dr.Start, dr.End)
	if err != nil {
		return analytics.SatisfactionSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return analytics.SatisfactionMetrics(orders, feedback), nil
}

// EquipmentMetrics computes equipment usage and stock health.
func (s *MetricsService) EquipmentMetrics(ctx context.Context) (analytics.EquipmentSnapshot, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	now := s.now()

	orders, err := s.storage.ListWorkOrders(dbCtx, now.AddDate(0, 0, -equipmentLookbackDays), now)
	if err != nil {
		return analytics.EquipmentSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	items, err := s.storage.ListWarehouseItems(dbCtx)
	if err != nil {
		return analytics.EquipmentSnapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return analytics.EquipmentMetrics(orders, items), nil
}
