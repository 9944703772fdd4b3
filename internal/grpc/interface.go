package grpc

//go:generate protoc --proto_path=../../api/v1 --go_out=../../api/v1 --go_opt=paths=source_relative --go-grpc_out=../../api/v1 --go-grpc_opt=paths=source_relative fieldmetrics.proto

import (
	"context"
	"time"

	"github.com/fieldops/metrics-server/internal/analytics"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// MetricsService defines the analytics operations exposed over gRPC.
type MetricsService interface {
	DashboardMetrics(ctx context.Context, w analytics.Window) (analytics.Metrics, error)
	TechnicianUtilization(ctx context.Context, w analytics.Window) (map[string]analytics.UtilizationSnapshot, error)
	CompletionTrends(ctx context.Context, w analytics.Window) (analytics.CompletionSnapshot, error)
	RevenueMetrics(ctx context.Context, w analytics.Window) (analytics.RevenueSnapshot, error)
	SatisfactionMetrics(ctx context.Context, w analytics.Window) (analytics.SatisfactionSnapshot, error)
	EquipmentMetrics(ctx context.Context) (analytics.EquipmentSnapshot, error)
}
