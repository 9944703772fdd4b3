package analytics

import "sort"

const (
	topPerformerLimit   = 5
	topPerformerMinJobs = 5
)

// SatisfactionMetrics aggregates customer ratings and feedback records into
// satisfaction metrics. Only orders with a rating above zero participate;
// when no rated orders exist the snapshot is all-zero.
func SatisfactionMetrics(orders []WorkOrder, feedback []Feedback) SatisfactionSnapshot {
	snap := SatisfactionSnapshot{
		Trends:           []MonthlyRating{},
		ImprovementAreas: []ImprovementArea{},
		TopPerformers:    []TopPerformer{},
	}

	rated := make([]WorkOrder, 0, len(orders))
	completedCount := 0
	for _, o := range orders {
		if o.Completed() {
			completedCount++
		}
		if o.CustomerRating > 0 {
			rated = append(rated, o)
		}
	}
	if len(rated) == 0 {
		return snap
	}

	var ratingSum float64
	for _, o := range rated {
		ratingSum += o.CustomerRating

		// Rescale the 1-5 rating to a 0-10 NPS band.
		nps := (o.CustomerRating - 1) * 2.5
		switch {
		case nps >= 9:
			snap.Promoters++
		case nps <= 6:
			snap.Detractors++
		}
	}

	snap.RatedCount = len(rated)
	snap.AverageRating = ratingSum / float64(len(rated))
	snap.NPSScore = float64(snap.Promoters-snap.Detractors) / float64(len(rated)) * 100
	snap.ResponseRate = clampPercent(percent(float64(len(rated)), float64(completedCount)))
	snap.Trends = monthlyRatings(rated)
	snap.Feedback = categorizeFeedback(feedback)
	snap.ImprovementAreas = improvementAreas(rated)
	snap.TopPerformers = topPerformers(rated)
	return snap
}

func monthlyRatings(rated []WorkOrder) []MonthlyRating {
	type monthAgg struct {
		sum   float64
		count int
	}
	byMonth := make(map[string]*monthAgg)
	for _, o := range rated {
		if o.CompletedAt.IsZero() {
			continue
		}
		key := monthKey(o.CompletedAt)
		agg, ok := byMonth[key]
		if !ok {
			agg = &monthAgg{}
			byMonth[key] = agg
		}
		agg.sum += o.CustomerRating
		agg.count++
	}

	trends := make([]MonthlyRating, 0, len(byMonth))
	for key, agg := range byMonth {
		trends = append(trends, MonthlyRating{
			Month:         key,
			AverageRating: agg.sum / float64(agg.count),
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Month < trends[j].Month
	})
	return trends
}

func categorizeFeedback(feedback []Feedback) FeedbackCategories {
	var cats FeedbackCategories
	for _, f := range feedback {
		if f.Rating >= 4 {
			cats.Positive++
		}
		if f.Rating > 0 && f.Rating <= 2 {
			cats.Negative++
		}
		switch f.TypeOrDefault() {
		case FeedbackSuggestion:
			cats.Suggestions++
		case FeedbackComplaint:
			cats.Complaints++
		}
	}
	return cats
}

func improvementAreas(rated []WorkOrder) []ImprovementArea {
	type areaAgg struct {
		sum   float64
		count int
	}
	byCategory := make(map[string]*areaAgg)
	order := make([]string, 0)
	for _, o := range rated {
		if o.CustomerRating > 3 {
			continue
		}
		cat := o.CategoryOrDefault()
		agg, ok := byCategory[cat]
		if !ok {
			agg = &areaAgg{}
			byCategory[cat] = agg
			order = append(order, cat)
		}
		agg.sum += o.CustomerRating
		agg.count++
	}

	areas := make([]ImprovementArea, 0, len(order))
	for _, cat := range order {
		agg := byCategory[cat]
		avg := agg.sum / float64(agg.count)
		areas = append(areas, ImprovementArea{
			Category:  cat,
			Count:     agg.count,
			AvgRating: avg,
			Priority:  float64(agg.count) * (4 - avg),
		})
	}
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Priority > areas[j].Priority
	})
	return areas
}

func topPerformers(rated []WorkOrder) []TopPerformer {
	type techAgg struct {
		sum   float64
		count int
	}
	byTech := make(map[string]*techAgg)
	order := make([]string, 0)
	for _, o := range rated {
		if o.Technician == "" {
			continue
		}
		agg, ok := byTech[o.Technician]
		if !ok {
			agg = &techAgg{}
			byTech[o.Technician] = agg
			order = append(order, o.Technician)
		}
		agg.sum += o.CustomerRating
		agg.count++
	}

	performers := make([]TopPerformer, 0, len(order))
	for _, tech := range order {
		agg := byTech[tech]
		if agg.count < topPerformerMinJobs {
			continue
		}
		performers = append(performers, TopPerformer{
			Technician: tech,
			JobCount:   agg.count,
			AvgRating:  agg.sum / float64(agg.count),
		})
	}
	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].AvgRating > performers[j].AvgRating
	})
	if len(performers) > topPerformerLimit {
		performers = performers[:topPerformerLimit]
	}
	return performers
}
