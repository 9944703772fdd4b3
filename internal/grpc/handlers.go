package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/fieldops/metrics-server/api/v1"
	"github.com/fieldops/metrics-server/internal/analytics"
	"github.com/fieldops/metrics-server/internal/realtime"
	"github.com/fieldops/metrics-server/internal/service"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second

	updateBuffer = 16
)

type cacheKeyType string

const (
	cacheKeyDashboard    cacheKeyType = "grpc:dashboard_metrics"
	cacheKeyUtilization  cacheKeyType = "grpc:technician_utilization"
	cacheKeyCompletion   cacheKeyType = "grpc:completion_trends"
	cacheKeyRevenue      cacheKeyType = "grpc:revenue_metrics"
	cacheKeySatisfaction cacheKeyType = "grpc:satisfaction_metrics"
	cacheKeyEquipment    cacheKeyType = "grpc:equipment_metrics"
)

type GRPCHandlers struct {
	pb.UnimplementedFieldMetricsServer
	metrics  MetricsService
	cache    Cacher
	feed     *realtime.Feed
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(metrics MetricsService, cache Cacher, feed *realtime.Feed, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if metrics == nil {
		panic("nil MetricsService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		metrics:  metrics,
		cache:    cache,
		feed:     feed,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func parseWindow(req *pb.TimeRangeRequest) (analytics.Window, error) {
	w, ok := analytics.ParseWindow(req.GetTimeRange())
	if !ok {
		return analytics.Window{}, status.Errorf(codes.InvalidArgument,
			"time_range must be one of %q, %q, %q",
			analytics.Token30Days, analytics.Token90Days, analytics.Token365Days)
	}
	return w, nil
}

// normalizeKey scopes a cache key to the window token and the UTC day, since
// trailing windows shift with the calendar.
func normalizeKey(prefix cacheKeyType, token string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, token, time.Now().UTC().Format("2006-01-02"))
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetDashboardMetrics(ctx context.Context, req *pb.TimeRangeRequest) (*pb.DashboardMetricsResponse, error) {
	w, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyDashboard, req.GetTimeRange())

	metrics, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (analytics.Metrics, error) {
		return s.metrics.DashboardMetrics(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetDashboardMetrics", err)
	}

	return dashboardToProto(metrics), nil
}

func (s *GRPCHandlers) GetTechnicianUtilization(ctx context.Context, req *pb.TimeRangeRequest) (*pb.TechnicianUtilizationResponse, error) {
	w, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyUtilization, req.GetTimeRange())

	util, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (map[string]analytics.UtilizationSnapshot, error) {
		return s.metrics.TechnicianUtilization(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetTechnicianUtilization", err)
	}

	return utilizationToProto(util), nil
}

func (s *GRPCHandlers) GetCompletionTrends(ctx context.Context, req *pb.TimeRangeRequest) (*pb.CompletionTrendsResponse, error) {
	w, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyCompletion, req.GetTimeRange())

	snap, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (analytics.CompletionSnapshot, error) {
		return s.metrics.CompletionTrends(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetCompletionTrends", err)
	}

	return completionToProto(snap), nil
}

func (s *GRPCHandlers) GetRevenueMetrics(ctx context.Context, req *pb.TimeRangeRequest) (*pb.RevenueMetricsResponse, error) {
	w, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyRevenue, req.GetTimeRange())

	snap, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (analytics.RevenueSnapshot, error) {
		return s.metrics.RevenueMetrics(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetRevenueMetrics", err)
	}

	return revenueToProto(snap), nil
}

func (s *GRPCHandlers) GetSatisfactionMetrics(ctx context.Context, req *pb.TimeRangeRequest) (*pb.SatisfactionMetricsResponse, error) {
	w, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeySatisfaction, req.GetTimeRange())

	snap, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (analytics.SatisfactionSnapshot, error) {
		return s.metrics.SatisfactionMetrics(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetSatisfactionMetrics", err)
	}

	return satisfactionToProto(snap), nil
}

func (s *GRPCHandlers) GetEquipmentMetrics(ctx context.Context, _ *pb.EquipmentRequest) (*pb.EquipmentMetricsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyEquipment, "all")

	snap, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (analytics.EquipmentSnapshot, error) {
		return s.metrics.EquipmentMetrics(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetEquipmentMetrics", err)
	}

	return equipmentToProto(snap), nil
}

// StreamMetricsUpdates sends a baseline metrics bundle, then one merged
// bundle per realtime event until the client goes away. The feed keeps one
// active subscription per event type, so a concurrent stream replaces the
// earlier stream's subscriptions: this surface assumes a single consumer.
func (s *GRPCHandlers) StreamMetricsUpdates(req *pb.TimeRangeRequest, stream pb.FieldMetrics_StreamMetricsUpdatesServer) error {
	w, err := parseWindow(req)
	if err != nil {
		return err
	}
	if s.feed == nil {
		return status.Error(codes.Unimplemented, "realtime updates are not enabled")
	}

	ctx := stream.Context()

	metrics, err := s.metrics.DashboardMetrics(ctx, w)
	if err != nil {
		return s.handleError(ctx, "StreamMetricsUpdates", err)
	}

	if err := stream.Send(&pb.MetricsUpdate{
		EventType: "baseline",
		EventTime: timestamppb.Now(),
		Metrics:   dashboardToProto(metrics),
	}); err != nil {
		return err
	}

	events := make(chan analytics.Event, updateBuffer)
	push := func(ev analytics.Event) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	eventTypes := []string{
		analytics.EventWorkOrderCompleted,
		analytics.EventTechnicianCheckIn,
		analytics.EventCustomerFeedback,
	}
	subs := make([]*realtime.Subscription, 0, len(eventTypes))
	for _, et := range eventTypes {
		subs = append(subs, s.feed.Subscribe(et, push))
	}
	defer func() {
		for _, sub := range subs {
			sub.Stop()
		}
	}()

	s.logger.Info("metrics update stream opened", zap.String("time_range", req.GetTimeRange()))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("metrics update stream closed")
			return nil
		case ev := <-events:
			metrics = analytics.MergeUpdate(metrics, ev)
			update := &pb.MetricsUpdate{
				EventId:   ev.ID,
				EventType: ev.Type,
				EventTime: timestamppb.New(ev.Timestamp),
				Metrics:   dashboardToProto(metrics),
			}
			if err := stream.Send(update); err != nil {
				return err
			}
		}
	}
}
