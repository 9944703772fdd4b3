package mocks

import (
	"context"
	"errors"

	"github.com/fieldops/metrics-server/internal/analytics"
)

// MockMetricsService is a mock implementation of the MetricsService
// interface for testing the handler layer.
type MockMetricsService struct {
	DashboardMetricsFunc      func(ctx context.Context, w analytics.Window) (analytics.Metrics, error)
	TechnicianUtilizationFunc func(ctx context.Context, w analytics.Window) (map[string]analytics.UtilizationSnapshot, error)
	CompletionTrendsFunc      func(ctx context.Context, w analytics.Window) (analytics.CompletionSnapshot, error)
	RevenueMetricsFunc        func(ctx context.Context, w analytics.Window) (analytics.RevenueSnapshot, error)
	SatisfactionMetricsFunc   func(ctx context.Context, w analytics.Window) (analytics.SatisfactionSnapshot, error)
	EquipmentMetricsFunc      func(ctx context.Context) (analytics.EquipmentSnapshot, error)
}

// DashboardMetrics implements the MetricsService interface
func (m *MockMetricsService) DashboardMetrics(ctx context.Context, w analytics.Window) (analytics.Metrics, error) {
	if m.DashboardMetricsFunc != nil {
		return m.DashboardMetricsFunc(ctx, w)
	}
	return analytics.Metrics{}, errors.New("DashboardMetricsFunc not implemented")
}

// TechnicianUtilization implements the MetricsService interface
func (m *MockMetricsService) TechnicianUtilization(ctx context.Context, w analytics.Window) (map[string]analytics.UtilizationSnapshot, error) {
	if m.TechnicianUtilizationFunc != nil {
		return m.TechnicianUtilizationFunc(ctx, w)
	}
	return nil, errors.New("TechnicianUtilizationFunc not implemented")
}

// CompletionTrends implements the MetricsService interface
func (m *MockMetricsService) CompletionTrends(ctx context.Context, w analytics.Window) (analytics.CompletionSnapshot, error) {
	if m.CompletionTrendsFunc != nil {
		return m.CompletionTrendsFunc(ctx, w)
	}
	return analytics.CompletionSnapshot{}, errors.New("CompletionTrendsFunc not implemented")
}

// RevenueMetrics implements the MetricsService interface
func (m *MockMetricsService) RevenueMetrics(ctx context.Context, w analytics.Window) (analytics.RevenueSnapshot, error) {
	if m.RevenueMetricsFunc != nil {
		return m.RevenueMetricsFunc(ctx, w)
	}
	return analytics.RevenueSnapshot{}, errors.New("RevenueMetricsFunc not implemented")
}

// SatisfactionMetrics implements the MetricsService interface
func (m *MockMetricsService) SatisfactionMetrics(ctx context.Context, w analytics.Window) (analytics.SatisfactionSnapshot, error) {
	if m.SatisfactionMetricsFunc != nil {
		return m.SatisfactionMetricsFunc(ctx, w)
	}
	return analytics.SatisfactionSnapshot{}, errors.New("SatisfactionMetricsFunc not implemented")
}

// EquipmentMetrics implements the MetricsService interface
func (m *MockMetricsService) EquipmentMetrics(ctx context.Context) (analytics.EquipmentSnapshot, error) {
	if m.EquipmentMetricsFunc != nil {
		return m.EquipmentMetricsFunc(ctx)
	}
	return analytics.EquipmentSnapshot{}, errors.New("EquipmentMetricsFunc not implemented")
}
