package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RevenueMetrics aggregates work orders, expenses and time entries into
// revenue and profitability metrics. Currency sums accumulate in decimal and
// convert to float64 at the snapshot boundary.
//
// Total expenses include an inferred labor cost of hours times hourly rate
// over all time entries. Category profitability attributes revenue of
// completed orders only; cost allocation per category is a documented
// simplification left out of this snapshot.
func RevenueMetrics(orders []WorkOrder, expenses []Expense, entries []TimeEntry) RevenueSnapshot {
	var (
		revenue        = decimal.Zero
		expenseTotal   = decimal.Zero
		completedCount int
		byCategory     = make(map[string]decimal.Decimal)
		byMonth        = make(map[string]*monthlyMoney)
		technicians    = make(map[string]struct{})
	)

	for _, o := range orders {
		if !o.Completed() {
			continue
		}
		completedCount++
		amount := decimal.NewFromFloat(o.TotalAmount)
		revenue = revenue.Add(amount)

		cat := o.CategoryOrDefault()
		byCategory[cat] = byCategory[cat].Add(amount)

		if !o.CompletedAt.IsZero() {
			m := monthBucket(byMonth, monthKey(o.CompletedAt))
			m.revenue = m.revenue.Add(amount)
		}
	}

	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount)
		expenseTotal = expenseTotal.Add(amount)
		if !e.Date.IsZero() {
			m := monthBucket(byMonth, monthKey(e.Date))
			m.expenses = m.expenses.Add(amount)
		}
	}

	// Labor cost inferred from logged hours.
	for _, e := range entries {
		cost := decimal.NewFromFloat(e.Hours).Mul(decimal.NewFromFloat(e.Rate()))
		expenseTotal = expenseTotal.Add(cost)
		if e.Technician != "" {
			technicians[e.Technician] = struct{}{}
		}
	}

	profit := revenue.Sub(expenseTotal)

	snap := RevenueSnapshot{
		TotalRevenue:            revenue.InexactFloat64(),
		TotalExpenses:           expenseTotal.InexactFloat64(),
		GrossProfit:             profit.InexactFloat64(),
		MonthlyTrends:           sortedMonthlyTrends(byMonth),
		ProfitabilityByCategory: make(map[string]float64, len(byCategory)),
	}

	if revenue.IsPositive() {
		snap.ProfitMargin = profit.Div(revenue).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	if completedCount > 0 {
		n := decimal.NewFromInt(int64(completedCount))
		snap.AverageJobValue = revenue.Div(n).InexactFloat64()
		snap.CostPerJob = expenseTotal.Div(n).InexactFloat64()
	}
	if len(technicians) > 0 {
		snap.RevenuePerTechnician = revenue.Div(decimal.NewFromInt(int64(len(technicians)))).InexactFloat64()
	}
	for cat, amount := range byCategory {
		snap.ProfitabilityByCategory[cat] = amount.InexactFloat64()
	}
	return snap
}

type monthlyMoney struct {
	revenue  decimal.Decimal
	expenses decimal.Decimal
}

func monthBucket(byMonth map[string]*monthlyMoney, key string) *monthlyMoney {
	m, ok := byMonth[key]
	if !ok {
		m = &monthlyMoney{revenue: decimal.Zero, expenses: decimal.Zero}
		byMonth[key] = m
	}
	return m
}

func sortedMonthlyTrends(byMonth map[string]*monthlyMoney) []MonthlyTrend {
	trends := make([]MonthlyTrend, 0, len(byMonth))
	for key, m := range byMonth {
		trends = append(trends, MonthlyTrend{
			Month:    key,
			Revenue:  m.revenue.InexactFloat64(),
			Expenses: m.expenses.InexactFloat64(),
			Profit:   m.revenue.Sub(m.expenses).InexactFloat64(),
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Month < trends[j].Month
	})
	return trends
}
