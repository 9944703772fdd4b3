package grpc

import (
	pb "github.com/fieldops/metrics-server/api/v1"
	"github.com/fieldops/metrics-server/internal/analytics"
)

func dashboardToProto(m analytics.Metrics) *pb.DashboardMetricsResponse {
	return &pb.DashboardMetricsResponse{
		Utilization:         utilizationToProto(m.Utilization),
		CompletionTrends:    completionToProto(m.Completion),
		RevenueMetrics:      revenueToProto(m.Revenue),
		SatisfactionMetrics: satisfactionToProto(m.Satisfaction),
		EquipmentMetrics:    equipmentToProto(m.Equipment),
	}
}

func utilizationToProto(util map[string]analytics.UtilizationSnapshot) *pb.TechnicianUtilizationResponse {
	technicians := make(map[string]*pb.UtilizationSnapshot, len(util))
	for tech, snap := range util {
		technicians[tech] = &pb.UtilizationSnapshot{
			TotalHours:     snap.TotalHours,
			BillableHours:  snap.BillableHours,
			ScheduledHours: snap.ScheduledHours,
			OvertimeHours:  snap.OvertimeHours,
			CapacityHours:  snap.CapacityHours,
			Efficiency:     snap.Efficiency,
			Productivity:   snap.Productivity,
		}
	}
	return &pb.TechnicianUtilizationResponse{Technicians: technicians}
}

func completionToProto(snap analytics.CompletionSnapshot) *pb.CompletionTrendsResponse {
	breakdown := make(map[string]*pb.CategoryStats, len(snap.CategoryBreakdown))
	for cat, stats := range snap.CategoryBreakdown {
		breakdown[cat] = &pb.CategoryStats{
			Count:     int64(stats.Count),
			Revenue:   stats.Revenue,
			AvgRating: stats.AvgRating,
		}
	}

	trends := make([]*pb.TrendPoint, len(snap.Trends))
	for i, p := range snap.Trends {
		trends[i] = &pb.TrendPoint{
			Date:           p.Date,
			Count:          int64(p.Count),
			CompletedCount: int64(p.CompletedCount),
			Value:          p.Value,
		}
	}

	return &pb.CompletionTrendsResponse{
		TotalOrders:           int64(snap.TotalOrders),
		CompletedOrders:       int64(snap.CompletedOrders),
		CompletionRate:        snap.CompletionRate,
		AverageCompletionTime: snap.AverageCompletionTime,
		OnTimeRate:            snap.OnTimeRate,
		FirstTimeFixRate:      snap.FirstTimeFixRate,
		CategoryBreakdown:     breakdown,
		Trends:                trends,
	}
}

func revenueToProto(snap analytics.RevenueSnapshot) *pb.RevenueMetricsResponse {
	trends := make([]*pb.MonthlyTrend, len(snap.MonthlyTrends))
	for i, t := range snap.MonthlyTrends {
		trends[i] = &pb.MonthlyTrend{
			Month:    t.Month,
			Revenue:  t.Revenue,
			Expenses: t.Expenses,
			Profit:   t.Profit,
		}
	}

	return &pb.RevenueMetricsResponse{
		TotalRevenue:            snap.TotalRevenue,
		TotalExpenses:           snap.TotalExpenses,
		GrossProfit:             snap.GrossProfit,
		ProfitMargin:            snap.ProfitMargin,
		RevenuePerTechnician:    snap.RevenuePerTechnician,
		AverageJobValue:         snap.AverageJobValue,
		CostPerJob:              snap.CostPerJob,
		MonthlyTrends:           trends,
		ProfitabilityByCategory: snap.ProfitabilityByCategory,
	}
}

func satisfactionToProto(snap analytics.SatisfactionSnapshot) *pb.SatisfactionMetricsResponse {
	trends := make([]*pb.MonthlyRating, len(snap.Trends))
	for i, t := range snap.Trends {
		trends[i] = &pb.MonthlyRating{
			Month:         t.Month,
			AverageRating: t.AverageRating,
		}
	}

	areas := make([]*pb.ImprovementArea, len(snap.ImprovementAreas))
	for i, a := range snap.ImprovementAreas {
		areas[i] = &pb.ImprovementArea{
			Category:  a.Category,
			Count:     int64(a.Count),
			AvgRating: a.AvgRating,
			Priority:  a.Priority,
		}
	}

	performers := make([]*pb.TopPerformer, len(snap.TopPerformers))
	for i, p := range snap.TopPerformers {
		performers[i] = &pb.TopPerformer{
			Technician: p.Technician,
			JobCount:   int64(p.JobCount),
			AvgRating:  p.AvgRating,
		}
	}

	return &pb.SatisfactionMetricsResponse{
		AverageRating:      snap.AverageRating,
		NpsScore:           snap.NPSScore,
		ResponseRate:       snap.ResponseRate,
		RatedCount:         int64(snap.RatedCount),
		Promoters:          int64(snap.Promoters),
		Detractors:         int64(snap.Detractors),
		SatisfactionTrends: trends,
		FeedbackCategories: &pb.FeedbackCategories{
			Positive:    int64(snap.Feedback.Positive),
			Negative:    int64(snap.Feedback.Negative),
			Suggestions: int64(snap.Feedback.Suggestions),
			Complaints:  int64(snap.Feedback.Complaints),
		},
		ImprovementAreas: areas,
		TopPerformers:    performers,
	}
}

func equipmentToProto(snap analytics.EquipmentSnapshot) *pb.EquipmentMetricsResponse {
	utilization := make(map[string]int64, len(snap.Utilization))
	for name, count := range snap.Utilization {
		utilization[name] = int64(count)
	}

	items := make([]*pb.CriticalItem, len(snap.CriticalItems))
	for i, item := range snap.CriticalItems {
		items[i] = &pb.CriticalItem{
			Name:         item.Name,
			CurrentStock: item.CurrentStock,
			MinimumStock: item.MinimumStock,
			Urgency:      item.Urgency,
		}
	}

	return &pb.EquipmentMetricsResponse{
		EquipmentUtilization: utilization,
		StockoutFrequency:    snap.StockoutFrequency,
		CriticalItems:        items,
	}
}
