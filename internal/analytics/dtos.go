package analytics

// UtilizationSnapshot holds per-technician hour and ratio metrics. The
// working-hour capacity of the range is carried so realtime merges can
// recompute overtime exactly.
type UtilizationSnapshot struct {
	TotalHours     float64 `json:"totalHours"`
	BillableHours  float64 `json:"billableHours"`
	ScheduledHours float64 `json:"scheduledHours"`
	OvertimeHours  float64 `json:"overtimeHours"`
	CapacityHours  float64 `json:"capacityHours"`
	Efficiency     float64 `json:"efficiency"`   // billable / total * 100
	Productivity   float64 `json:"productivity"` // total / scheduled * 100
}

// TrendPoint is one calendar-day aggregate in a trailing window.
type TrendPoint struct {
	Date           string  `json:"date"`
	Count          int     `json:"count"`
	CompletedCount int     `json:"completedCount"`
	Value          float64 `json:"value"`
}

// CategoryStats aggregates work orders sharing a category.
type CategoryStats struct {
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
	AvgRating float64 `json:"avgRating"`
}

// CompletionSnapshot holds work-order completion metrics. The raw order
// counts are carried so realtime merges can update the rate exactly.
type CompletionSnapshot struct {
	TotalOrders           int                      `json:"totalOrders"`
	CompletedOrders       int                      `json:"completedOrders"`
	CompletionRate        float64                  `json:"completionRate"`
	AverageCompletionTime float64                  `json:"averageCompletionTime"` // days
	OnTimeRate            float64                  `json:"onTimeRate"`
	FirstTimeFixRate      float64                  `json:"firstTimeFixRate"`
	CategoryBreakdown     map[string]CategoryStats `json:"categoryBreakdown"`
	Trends                []TrendPoint             `json:"trends"`
}

// MonthlyTrend is one month of revenue, expenses and profit.
type MonthlyTrend struct {
	Month    string  `json:"month"` // YYYY-MM
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// RevenueSnapshot holds revenue and profitability metrics.
type RevenueSnapshot struct {
	TotalRevenue            float64            `json:"totalRevenue"`
	TotalExpenses           float64            `json:"totalExpenses"` // includes inferred labor cost
	GrossProfit             float64            `json:"grossProfit"`
	ProfitMargin            float64            `json:"profitMargin"`
	RevenuePerTechnician    float64            `json:"revenuePerTechnician"`
	AverageJobValue         float64            `json:"averageJobValue"`
	CostPerJob              float64            `json:"costPerJob"`
	MonthlyTrends           []MonthlyTrend     `json:"monthlyTrends"`
	ProfitabilityByCategory map[string]float64 `json:"profitabilityByCategory"`
}

// MonthlyRating is one month's average customer rating.
type MonthlyRating struct {
	Month         string  `json:"month"`
	AverageRating float64 `json:"averageRating"`
}

// FeedbackCategories counts feedback records per bucket. A record may land
// in more than one bucket.
type FeedbackCategories struct {
	Positive    int `json:"positive"`
	Negative    int `json:"negative"`
	Suggestions int `json:"suggestions"`
	Complaints  int `json:"complaints"`
}

// ImprovementArea is a low-rated category ranked by priority.
type ImprovementArea struct {
	Category  string  `json:"category"`
	Count     int     `json:"count"`
	AvgRating float64 `json:"avgRating"`
	Priority  float64 `json:"priority"`
}

// TopPerformer is a technician ranked by average customer rating.
type TopPerformer struct {
	Technician string  `json:"technician"`
	JobCount   int     `json:"jobCount"`
	AvgRating  float64 `json:"avgRating"`
}

// SatisfactionSnapshot holds customer satisfaction metrics. Rated-order and
// promoter/detractor counts are carried so realtime merges can fold a new
// rating in exactly.
type SatisfactionSnapshot struct {
	AverageRating    float64            `json:"averageRating"`
	NPSScore         float64            `json:"npsScore"`
	ResponseRate     float64            `json:"responseRate"`
	RatedCount       int                `json:"ratedCount"`
	Promoters        int                `json:"promoters"`
	Detractors       int                `json:"detractors"`
	Trends           []MonthlyRating    `json:"satisfactionTrends"`
	Feedback         FeedbackCategories `json:"feedbackCategories"`
	ImprovementAreas []ImprovementArea  `json:"improvementAreas"`
	TopPerformers    []TopPerformer     `json:"topPerformers"`
}

// CriticalItem is a warehouse item at or below its minimum stock.
type CriticalItem struct {
	Name         string  `json:"name"`
	CurrentStock float64 `json:"currentStock"`
	MinimumStock float64 `json:"minimumStock"`
	Urgency      string  `json:"urgency"` // "critical" or "warning"
}

// EquipmentSnapshot holds equipment usage and stock health metrics.
type EquipmentSnapshot struct {
	Utilization       map[string]int `json:"equipmentUtilization"`
	StockoutFrequency float64        `json:"stockoutFrequency"`
	CriticalItems     []CriticalItem `json:"criticalItems"`
}

// Input bundles the raw record arrays consumed by Compute.
type Input struct {
	WorkOrders     []WorkOrder
	TimeEntries    []TimeEntry
	Expenses       []Expense
	WarehouseItems []WarehouseItem
	Feedback       []Feedback
	Window         Window
}

// Metrics is the aggregated output of one Compute invocation.
type Metrics struct {
	Utilization  map[string]UtilizationSnapshot `json:"utilizationData"`
	Completion   CompletionSnapshot             `json:"completionTrends"`
	Revenue      RevenueSnapshot                `json:"revenueMetrics"`
	Satisfaction SatisfactionSnapshot           `json:"satisfactionMetrics"`
	Equipment    EquipmentSnapshot              `json:"equipmentMetrics"`
}
