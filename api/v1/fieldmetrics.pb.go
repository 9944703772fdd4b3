// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: fieldmetrics.proto

package apiv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// time_range is one of "30days", "90days", "365days".
type TimeRangeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TimeRange     string                 `protobuf:"bytes,1,opt,name=time_range,json=timeRange,proto3" json:"time_range,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimeRangeRequest) Reset() {
	*x = TimeRangeRequest{}
	mi := &file_fieldmetrics_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimeRangeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimeRangeRequest) ProtoMessage() {}

func (x *TimeRangeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimeRangeRequest.ProtoReflect.Descriptor instead.
func (*TimeRangeRequest) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{0}
}

func (x *TimeRangeRequest) GetTimeRange() string {
	if x != nil {
		return x.TimeRange
	}
	return ""
}

type EquipmentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EquipmentRequest) Reset() {
	*x = EquipmentRequest{}
	mi := &file_fieldmetrics_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EquipmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EquipmentRequest) ProtoMessage() {}

func (x *EquipmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EquipmentRequest.ProtoReflect.Descriptor instead.
func (*EquipmentRequest) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{1}
}

type UtilizationSnapshot struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalHours     float64                `protobuf:"fixed64,1,opt,name=total_hours,json=totalHours,proto3" json:"total_hours,omitempty"`
	BillableHours  float64                `protobuf:"fixed64,2,opt,name=billable_hours,json=billableHours,proto3" json:"billable_hours,omitempty"`
	ScheduledHours float64                `protobuf:"fixed64,3,opt,name=scheduled_hours,json=scheduledHours,proto3" json:"scheduled_hours,omitempty"`
	OvertimeHours  float64                `protobuf:"fixed64,4,opt,name=overtime_hours,json=overtimeHours,proto3" json:"overtime_hours,omitempty"`
	Efficiency     float64                `protobuf:"fixed64,5,opt,name=efficiency,proto3" json:"efficiency,omitempty"`
	Productivity   float64                `protobuf:"fixed64,6,opt,name=productivity,proto3" json:"productivity,omitempty"`
	CapacityHours  float64                `protobuf:"fixed64,7,opt,name=capacity_hours,json=capacityHours,proto3" json:"capacity_hours,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UtilizationSnapshot) Reset() {
	*x = UtilizationSnapshot{}
	mi := &file_fieldmetrics_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UtilizationSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UtilizationSnapshot) ProtoMessage() {}

func (x *UtilizationSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UtilizationSnapshot.ProtoReflect.Descriptor instead.
func (*UtilizationSnapshot) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{2}
}

func (x *UtilizationSnapshot) GetTotalHours() float64 {
	if x != nil {
		return x.TotalHours
	}
	return 0
}

func (x *UtilizationSnapshot) GetBillableHours() float64 {
	if x != nil {
		return x.BillableHours
	}
	return 0
}

func (x *UtilizationSnapshot) GetScheduledHours() float64 {
	if x != nil {
		return x.ScheduledHours
	}
	return 0
}

func (x *UtilizationSnapshot) GetOvertimeHours() float64 {
	if x != nil {
		return x.OvertimeHours
	}
	return 0
}

func (x *UtilizationSnapshot) GetEfficiency() float64 {
	if x != nil {
		return x.Efficiency
	}
	return 0
}

func (x *UtilizationSnapshot) GetProductivity() float64 {
	if x != nil {
		return x.Productivity
	}
	return 0
}

func (x *UtilizationSnapshot) GetCapacityHours() float64 {
	if x != nil {
		return x.CapacityHours
	}
	return 0
}

type TechnicianUtilizationResponse struct {
	state         protoimpl.MessageState          `protogen:"open.v1"`
	Technicians   map[string]*UtilizationSnapshot `protobuf:"bytes,1,rep,name=technicians,proto3" json:"technicians,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TechnicianUtilizationResponse) Reset() {
	*x = TechnicianUtilizationResponse{}
	mi := &file_fieldmetrics_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TechnicianUtilizationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TechnicianUtilizationResponse) ProtoMessage() {}

func (x *TechnicianUtilizationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TechnicianUtilizationResponse.ProtoReflect.Descriptor instead.
func (*TechnicianUtilizationResponse) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{3}
}

func (x *TechnicianUtilizationResponse) GetTechnicians() map[string]*UtilizationSnapshot {
	if x != nil {
		return x.Technicians
	}
	return nil
}

type TrendPoint struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Date           string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Count          int64                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	CompletedCount int64                  `protobuf:"varint,3,opt,name=completed_count,json=completedCount,proto3" json:"completed_count,omitempty"`
	Value          float64                `protobuf:"fixed64,4,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *TrendPoint) Reset() {
	*x = TrendPoint{}
	mi := &file_fieldmetrics_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrendPoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrendPoint) ProtoMessage() {}

func (x *TrendPoint) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrendPoint.ProtoReflect.Descriptor instead.
func (*TrendPoint) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{4}
}

func (x *TrendPoint) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *TrendPoint) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *TrendPoint) GetCompletedCount() int64 {
	if x != nil {
		return x.CompletedCount
	}
	return 0
}

func (x *TrendPoint) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type CategoryStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         int64                  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	Revenue       float64                `protobuf:"fixed64,2,opt,name=revenue,proto3" json:"revenue,omitempty"`
	AvgRating     float64                `protobuf:"fixed64,3,opt,name=avg_rating,json=avgRating,proto3" json:"avg_rating,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryStats) Reset() {
	*x = CategoryStats{}
	mi := &file_fieldmetrics_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryStats) ProtoMessage() {}

func (x *CategoryStats) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryStats.ProtoReflect.Descriptor instead.
func (*CategoryStats) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{5}
}

func (x *CategoryStats) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *CategoryStats) GetRevenue() float64 {
	if x != nil {
		return x.Revenue
	}
	return 0
}

func (x *CategoryStats) GetAvgRating() float64 {
	if x != nil {
		return x.AvgRating
	}
	return 0
}

type CompletionTrendsResponse struct {
	state                 protoimpl.MessageState    `protogen:"open.v1"`
	TotalOrders           int64                     `protobuf:"varint,1,opt,name=total_orders,json=totalOrders,proto3" json:"total_orders,omitempty"`
	CompletedOrders       int64                     `protobuf:"varint,2,opt,name=completed_orders,json=completedOrders,proto3" json:"completed_orders,omitempty"`
	CompletionRate        float64                   `protobuf:"fixed64,3,opt,name=completion_rate,json=completionRate,proto3" json:"completion_rate,omitempty"`
	AverageCompletionTime float64                   `protobuf:"fixed64,4,opt,name=average_completion_time,json=averageCompletionTime,proto3" json:"average_completion_time,omitempty"`
	OnTimeRate            float64                   `protobuf:"fixed64,5,opt,name=on_time_rate,json=onTimeRate,proto3" json:"on_time_rate,omitempty"`
	FirstTimeFixRate      float64                   `protobuf:"fixed64,6,opt,name=first_time_fix_rate,json=firstTimeFixRate,proto3" json:"first_time_fix_rate,omitempty"`
	CategoryBreakdown     map[string]*CategoryStats `protobuf:"bytes,7,rep,name=category_breakdown,json=categoryBreakdown,proto3" json:"category_breakdown,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Trends                []*TrendPoint             `protobuf:"bytes,8,rep,name=trends,proto3" json:"trends,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *CompletionTrendsResponse) Reset() {
	*x = CompletionTrendsResponse{}
	mi := &file_fieldmetrics_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompletionTrendsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompletionTrendsResponse) ProtoMessage() {}

func (x *CompletionTrendsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompletionTrendsResponse.ProtoReflect.Descriptor instead.
func (*CompletionTrendsResponse) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{6}
}

func (x *CompletionTrendsResponse) GetTotalOrders() int64 {
	if x != nil {
		return x.TotalOrders
	}
	return 0
}

func (x *CompletionTrendsResponse) GetCompletedOrders() int64 {
	if x != nil {
		return x.CompletedOrders
	}
	return 0
}

func (x *CompletionTrendsResponse) GetCompletionRate() float64 {
	if x != nil {
		return x.CompletionRate
	}
	return 0
}

func (x *CompletionTrendsResponse) GetAverageCompletionTime() float64 {
	if x != nil {
		return x.AverageCompletionTime
	}
	return 0
}

func (x *CompletionTrendsResponse) GetOnTimeRate() float64 {
	if x != nil {
		return x.OnTimeRate
	}
	return 0
}

func (x *CompletionTrendsResponse) GetFirstTimeFixRate() float64 {
	if x != nil {
		return x.FirstTimeFixRate
	}
	return 0
}

func (x *CompletionTrendsResponse) GetCategoryBreakdown() map[string]*CategoryStats {
	if x != nil {
		return x.CategoryBreakdown
	}
	return nil
}

func (x *CompletionTrendsResponse) GetTrends() []*TrendPoint {
	if x != nil {
		return x.Trends
	}
	return nil
}

type MonthlyTrend struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Month         string                 `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"`
	Revenue       float64                `protobuf:"fixed64,2,opt,name=revenue,proto3" json:"revenue,omitempty"`
	Expenses      float64                `protobuf:"fixed64,3,opt,name=expenses,proto3" json:"expenses,omitempty"`
	Profit        float64                `protobuf:"fixed64,4,opt,name=profit,proto3" json:"profit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MonthlyTrend) Reset() {
	*x = MonthlyTrend{}
	mi := &file_fieldmetrics_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MonthlyTrend) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MonthlyTrend) ProtoMessage() {}

func (x *MonthlyTrend) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MonthlyTrend.ProtoReflect.Descriptor instead.
func (*MonthlyTrend) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{7}
}

func (x *MonthlyTrend) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *MonthlyTrend) GetRevenue() float64 {
	if x != nil {
		return x.Revenue
	}
	return 0
}

func (x *MonthlyTrend) GetExpenses() float64 {
	if x != nil {
		return x.Expenses
	}
	return 0
}

func (x *MonthlyTrend) GetProfit() float64 {
	if x != nil {
		return x.Profit
	}
	return 0
}

type RevenueMetricsResponse struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	TotalRevenue            float64                `protobuf:"fixed64,1,opt,name=total_revenue,json=totalRevenue,proto3" json:"total_revenue,omitempty"`
	TotalExpenses           float64                `protobuf:"fixed64,2,opt,name=total_expenses,json=totalExpenses,proto3" json:"total_expenses,omitempty"`
	GrossProfit             float64                `protobuf:"fixed64,3,opt,name=gross_profit,json=grossProfit,proto3" json:"gross_profit,omitempty"`
	ProfitMargin            float64                `protobuf:"fixed64,4,opt,name=profit_margin,json=profitMargin,proto3" json:"profit_margin,omitempty"`
	RevenuePerTechnician    float64                `protobuf:"fixed64,5,opt,name=revenue_per_technician,json=revenuePerTechnician,proto3" json:"revenue_per_technician,omitempty"`
	AverageJobValue         float64                `protobuf:"fixed64,6,opt,name=average_job_value,json=averageJobValue,proto3" json:"average_job_value,omitempty"`
	CostPerJob              float64                `protobuf:"fixed64,7,opt,name=cost_per_job,json=costPerJob,proto3" json:"cost_per_job,omitempty"`
	MonthlyTrends           []*MonthlyTrend        `protobuf:"bytes,8,rep,name=monthly_trends,json=monthlyTrends,proto3" json:"monthly_trends,omitempty"`
	ProfitabilityByCategory map[string]float64     `protobuf:"bytes,9,rep,name=profitability_by_category,json=profitabilityByCategory,proto3" json:"profitability_by_category,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *RevenueMetricsResponse) Reset() {
	*x = RevenueMetricsResponse{}
	mi := &file_fieldmetrics_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevenueMetricsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevenueMetricsResponse) ProtoMessage() {}

func (x *RevenueMetricsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevenueMetricsResponse.ProtoReflect.Descriptor instead.
func (*RevenueMetricsResponse) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{8}
}

func (x *RevenueMetricsResponse) GetTotalRevenue() float64 {
	if x != nil {
		return x.TotalRevenue
	}
	return 0
}

func (x *RevenueMetricsResponse) GetTotalExpenses() float64 {
	if x != nil {
		return x.TotalExpenses
	}
	return 0
}

func (x *RevenueMetricsResponse) GetGrossProfit() float64 {
	if x != nil {
		return x.GrossProfit
	}
	return 0
}

func (x *RevenueMetricsResponse) GetProfitMargin() float64 {
	if x != nil {
		return x.ProfitMargin
	}
	return 0
}

func (x *RevenueMetricsResponse) GetRevenuePerTechnician() float64 {
	if x != nil {
		return x.RevenuePerTechnician
	}
	return 0
}

func (x *RevenueMetricsResponse) GetAverageJobValue() float64 {
	if x != nil {
		return x.AverageJobValue
	}
	return 0
}

func (x *RevenueMetricsResponse) GetCostPerJob() float64 {
	if x != nil {
		return x.CostPerJob
	}
	return 0
}

func (x *RevenueMetricsResponse) GetMonthlyTrends() []*MonthlyTrend {
	if x != nil {
		return x.MonthlyTrends
	}
	return nil
}

func (x *RevenueMetricsResponse) GetProfitabilityByCategory() map[string]float64 {
	if x != nil {
		return x.ProfitabilityByCategory
	}
	return nil
}

type MonthlyRating struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Month         string                 `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"`
	AverageRating float64                `protobuf:"fixed64,2,opt,name=average_rating,json=averageRating,proto3" json:"average_rating,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MonthlyRating) Reset() {
	*x = MonthlyRating{}
	mi := &file_fieldmetrics_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MonthlyRating) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MonthlyRating) ProtoMessage() {}

func (x *MonthlyRating) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MonthlyRating.ProtoReflect.Descriptor instead.
func (*MonthlyRating) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{9}
}

func (x *MonthlyRating) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *MonthlyRating) GetAverageRating() float64 {
	if x != nil {
		return x.AverageRating
	}
	return 0
}

type FeedbackCategories struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Positive      int64                  `protobuf:"varint,1,opt,name=positive,proto3" json:"positive,omitempty"`
	Negative      int64                  `protobuf:"varint,2,opt,name=negative,proto3" json:"negative,omitempty"`
	Suggestions   int64                  `protobuf:"varint,3,opt,name=suggestions,proto3" json:"suggestions,omitempty"`
	Complaints    int64                  `protobuf:"varint,4,opt,name=complaints,proto3" json:"complaints,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeedbackCategories) Reset() {
	*x = FeedbackCategories{}
	mi := &file_fieldmetrics_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeedbackCategories) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeedbackCategories) ProtoMessage() {}

func (x *FeedbackCategories) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeedbackCategories.ProtoReflect.Descriptor instead.
func (*FeedbackCategories) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{10}
}

func (x *FeedbackCategories) GetPositive() int64 {
	if x != nil {
		return x.Positive
	}
	return 0
}

func (x *FeedbackCategories) GetNegative() int64 {
	if x != nil {
		return x.Negative
	}
	return 0
}

func (x *FeedbackCategories) GetSuggestions() int64 {
	if x != nil {
		return x.Suggestions
	}
	return 0
}

func (x *FeedbackCategories) GetComplaints() int64 {
	if x != nil {
		return x.Complaints
	}
	return 0
}

type ImprovementArea struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Count         int64                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	AvgRating     float64                `protobuf:"fixed64,3,opt,name=avg_rating,json=avgRating,proto3" json:"avg_rating,omitempty"`
	Priority      float64                `protobuf:"fixed64,4,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImprovementArea) Reset() {
	*x = ImprovementArea{}
	mi := &file_fieldmetrics_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImprovementArea) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImprovementArea) ProtoMessage() {}

func (x *ImprovementArea) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImprovementArea.ProtoReflect.Descriptor instead.
func (*ImprovementArea) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{11}
}

func (x *ImprovementArea) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ImprovementArea) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *ImprovementArea) GetAvgRating() float64 {
	if x != nil {
		return x.AvgRating
	}
	return 0
}

func (x *ImprovementArea) GetPriority() float64 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type TopPerformer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Technician    string                 `protobuf:"bytes,1,opt,name=technician,proto3" json:"technician,omitempty"`
	JobCount      int64                  `protobuf:"varint,2,opt,name=job_count,json=jobCount,proto3" json:"job_count,omitempty"`
	AvgRating     float64                `protobuf:"fixed64,3,opt,name=avg_rating,json=avgRating,proto3" json:"avg_rating,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TopPerformer) Reset() {
	*x = TopPerformer{}
	mi := &file_fieldmetrics_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TopPerformer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TopPerformer) ProtoMessage() {}

func (x *TopPerformer) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TopPerformer.ProtoReflect.Descriptor instead.
func (*TopPerformer) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{12}
}

func (x *TopPerformer) GetTechnician() string {
	if x != nil {
		return x.Technician
	}
	return ""
}

func (x *TopPerformer) GetJobCount() int64 {
	if x != nil {
		return x.JobCount
	}
	return 0
}

func (x *TopPerformer) GetAvgRating() float64 {
	if x != nil {
		return x.AvgRating
	}
	return 0
}

type SatisfactionMetricsResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	AverageRating      float64                `protobuf:"fixed64,1,opt,name=average_rating,json=averageRating,proto3" json:"average_rating,omitempty"`
	NpsScore           float64                `protobuf:"fixed64,2,opt,name=nps_score,json=npsScore,proto3" json:"nps_score,omitempty"`
	ResponseRate       float64                `protobuf:"fixed64,3,opt,name=response_rate,json=responseRate,proto3" json:"response_rate,omitempty"`
	RatedCount         int64                  `protobuf:"varint,4,opt,name=rated_count,json=ratedCount,proto3" json:"rated_count,omitempty"`
	Promoters          int64                  `protobuf:"varint,5,opt,name=promoters,proto3" json:"promoters,omitempty"`
	Detractors         int64                  `protobuf:"varint,6,opt,name=detractors,proto3" json:"detractors,omitempty"`
	SatisfactionTrends []*MonthlyRating       `protobuf:"bytes,7,rep,name=satisfaction_trends,json=satisfactionTrends,proto3" json:"satisfaction_trends,omitempty"`
	FeedbackCategories *FeedbackCategories    `protobuf:"bytes,8,opt,name=feedback_categories,json=feedbackCategories,proto3" json:"feedback_categories,omitempty"`
	ImprovementAreas   []*ImprovementArea     `protobuf:"bytes,9,rep,name=improvement_areas,json=improvementAreas,proto3" json:"improvement_areas,omitempty"`
	TopPerformers      []*TopPerformer        `protobuf:"bytes,10,rep,name=top_performers,json=topPerformers,proto3" json:"top_performers,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *SatisfactionMetricsResponse) Reset() {
	*x = SatisfactionMetricsResponse{}
	mi := &file_fieldmetrics_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SatisfactionMetricsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SatisfactionMetricsResponse) ProtoMessage() {}

func (x *SatisfactionMetricsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SatisfactionMetricsResponse.ProtoReflect.Descriptor instead.
func (*SatisfactionMetricsResponse) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{13}
}

func (x *SatisfactionMetricsResponse) GetAverageRating() float64 {
	if x != nil {
		return x.AverageRating
	}
	return 0
}

func (x *SatisfactionMetricsResponse) GetNpsScore() float64 {
	if x != nil {
		return x.NpsScore
	}
	return 0
}

func (x *SatisfactionMetricsResponse) GetResponseRate() float64 {
	if x != nil {
		return x.ResponseRate
	}
	return 0
}

func (x *SatisfactionMetricsResponse) GetRatedCount() int64 {
	if x != nil {
		return x.RatedCount
	}
	return 0
}

func (x *SatisfactionMetricsResponse) GetPromoters() int64 {
	if x != nil {
		return x.Promoters
	}
	return 0
}

func (x *SatisfactionMetricsResponse) GetDetractors() int64 {
	if x != nil {
		return x.Detractors
	}
	return 0
}

func (x *SatisfactionMetricsResponse) GetSatisfactionTrends() []*MonthlyRating {
	if x != nil {
		return x.SatisfactionTrends
	}
	return nil
}

func (x *SatisfactionMetricsResponse) GetFeedbackCategories() *FeedbackCategories {
	if x != nil {
		return x.FeedbackCategories
	}
	return nil
}

func (x *SatisfactionMetricsResponse) GetImprovementAreas() []*ImprovementArea {
	if x != nil {
		return x.ImprovementAreas
	}
	return nil
}

func (x *SatisfactionMetricsResponse) GetTopPerformers() []*TopPerformer {
	if x != nil {
		return x.TopPerformers
	}
	return nil
}

type CriticalItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CurrentStock  float64                `protobuf:"fixed64,2,opt,name=current_stock,json=currentStock,proto3" json:"current_stock,omitempty"`
	MinimumStock  float64                `protobuf:"fixed64,3,opt,name=minimum_stock,json=minimumStock,proto3" json:"minimum_stock,omitempty"`
	Urgency       string                 `protobuf:"bytes,4,opt,name=urgency,proto3" json:"urgency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CriticalItem) Reset() {
	*x = CriticalItem{}
	mi := &file_fieldmetrics_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CriticalItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CriticalItem) ProtoMessage() {}

func (x *CriticalItem) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CriticalItem.ProtoReflect.Descriptor instead.
func (*CriticalItem) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{14}
}

func (x *CriticalItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CriticalItem) GetCurrentStock() float64 {
	if x != nil {
		return x.CurrentStock
	}
	return 0
}

func (x *CriticalItem) GetMinimumStock() float64 {
	if x != nil {
		return x.MinimumStock
	}
	return 0
}

func (x *CriticalItem) GetUrgency() string {
	if x != nil {
		return x.Urgency
	}
	return ""
}

type EquipmentMetricsResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	EquipmentUtilization map[string]int64       `protobuf:"bytes,1,rep,name=equipment_utilization,json=equipmentUtilization,proto3" json:"equipment_utilization,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	StockoutFrequency    float64                `protobuf:"fixed64,2,opt,name=stockout_frequency,json=stockoutFrequency,proto3" json:"stockout_frequency,omitempty"`
	CriticalItems        []*CriticalItem        `protobuf:"bytes,3,rep,name=critical_items,json=criticalItems,proto3" json:"critical_items,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *EquipmentMetricsResponse) Reset() {
	*x = EquipmentMetricsResponse{}
	mi := &file_fieldmetrics_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EquipmentMetricsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EquipmentMetricsResponse) ProtoMessage() {}

func (x *EquipmentMetricsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EquipmentMetricsResponse.ProtoReflect.Descriptor instead.
func (*EquipmentMetricsResponse) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{15}
}

func (x *EquipmentMetricsResponse) GetEquipmentUtilization() map[string]int64 {
	if x != nil {
		return x.EquipmentUtilization
	}
	return nil
}

func (x *EquipmentMetricsResponse) GetStockoutFrequency() float64 {
	if x != nil {
		return x.StockoutFrequency
	}
	return 0
}

func (x *EquipmentMetricsResponse) GetCriticalItems() []*CriticalItem {
	if x != nil {
		return x.CriticalItems
	}
	return nil
}

type DashboardMetricsResponse struct {
	state               protoimpl.MessageState         `protogen:"open.v1"`
	Utilization         *TechnicianUtilizationResponse `protobuf:"bytes,1,opt,name=utilization,proto3" json:"utilization,omitempty"`
	CompletionTrends    *CompletionTrendsResponse      `protobuf:"bytes,2,opt,name=completion_trends,json=completionTrends,proto3" json:"completion_trends,omitempty"`
	RevenueMetrics      *RevenueMetricsResponse        `protobuf:"bytes,3,opt,name=revenue_metrics,json=revenueMetrics,proto3" json:"revenue_metrics,omitempty"`
	SatisfactionMetrics *SatisfactionMetricsResponse   `protobuf:"bytes,4,opt,name=satisfaction_metrics,json=satisfactionMetrics,proto3" json:"satisfaction_metrics,omitempty"`
	EquipmentMetrics    *EquipmentMetricsResponse      `protobuf:"bytes,5,opt,name=equipment_metrics,json=equipmentMetrics,proto3" json:"equipment_metrics,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *DashboardMetricsResponse) Reset() {
	*x = DashboardMetricsResponse{}
	mi := &file_fieldmetrics_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DashboardMetricsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DashboardMetricsResponse) ProtoMessage() {}

func (x *DashboardMetricsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DashboardMetricsResponse.ProtoReflect.Descriptor instead.
func (*DashboardMetricsResponse) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{16}
}

func (x *DashboardMetricsResponse) GetUtilization() *TechnicianUtilizationResponse {
	if x != nil {
		return x.Utilization
	}
	return nil
}

func (x *DashboardMetricsResponse) GetCompletionTrends() *CompletionTrendsResponse {
	if x != nil {
		return x.CompletionTrends
	}
	return nil
}

func (x *DashboardMetricsResponse) GetRevenueMetrics() *RevenueMetricsResponse {
	if x != nil {
		return x.RevenueMetrics
	}
	return nil
}

func (x *DashboardMetricsResponse) GetSatisfactionMetrics() *SatisfactionMetricsResponse {
	if x != nil {
		return x.SatisfactionMetrics
	}
	return nil
}

func (x *DashboardMetricsResponse) GetEquipmentMetrics() *EquipmentMetricsResponse {
	if x != nil {
		return x.EquipmentMetrics
	}
	return nil
}

type MetricsUpdate struct {
	state         protoimpl.MessageState    `protogen:"open.v1"`
	EventId       string                    `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	EventType     string                    `protobuf:"bytes,2,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	EventTime     *timestamppb.Timestamp    `protobuf:"bytes,3,opt,name=event_time,json=eventTime,proto3" json:"event_time,omitempty"`
	Metrics       *DashboardMetricsResponse `protobuf:"bytes,4,opt,name=metrics,proto3" json:"metrics,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MetricsUpdate) Reset() {
	*x = MetricsUpdate{}
	mi := &file_fieldmetrics_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetricsUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetricsUpdate) ProtoMessage() {}

func (x *MetricsUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_fieldmetrics_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MetricsUpdate.ProtoReflect.Descriptor instead.
func (*MetricsUpdate) Descriptor() ([]byte, []int) {
	return file_fieldmetrics_proto_rawDescGZIP(), []int{17}
}

func (x *MetricsUpdate) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *MetricsUpdate) GetEventType() string {
	if x != nil {
		return x.EventType
	}
	return ""
}

func (x *MetricsUpdate) GetEventTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EventTime
	}
	return nil
}

func (x *MetricsUpdate) GetMetrics() *DashboardMetricsResponse {
	if x != nil {
		return x.Metrics
	}
	return nil
}

var File_fieldmetrics_proto protoreflect.FileDescriptor

const file_fieldmetrics_proto_rawDesc = "" +
	"\n" +
	"\x12fieldmetrics.proto\x12\x0ffieldmetrics.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"1\n" +
	"\x10TimeRangeRequest\x12\x1d\n" +
	"\n" +
	"time_range\x18\x01 \x01(\tR\ttimeRange\"\x12\n" +
	"\x10EquipmentRequest\"\x98\x02\n" +
	"\x13UtilizationSnapshot\x12\x1f\n" +
	"\vtotal_hours\x18\x01 \x01(\x01R\n" +
	"totalHours\x12%\n" +
	"\x0ebillable_hours\x18\x02 \x01(\x01R\rbillableHours\x12'\n" +
	"\x0fscheduled_hours\x18\x03 \x01(\x01R\x0escheduledHours\x12%\n" +
	"\x0eovertime_hours\x18\x04 \x01(\x01R\rovertimeHours\x12\x1e\n" +
	"\n" +
	"efficiency\x18\x05 \x01(\x01R\n" +
	"efficiency\x12\"\n" +
	"\fproductivity\x18\x06 \x01(\x01R\fproductivity\x12%\n" +
	"\x0ecapacity_hours\x18\a \x01(\x01R\rcapacityHours\"\xe8\x01\n" +
	"\x1dTechnicianUtilizationResponse\x12a\n" +
	"\vtechnicians\x18\x01 \x03(\v2?.fieldmetrics.v1.TechnicianUtilizationResponse.TechniciansEntryR\vtechnicians\x1ad\n" +
	"\x10TechniciansEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12:\n" +
	"\x05value\x18\x02 \x01(\v2$.fieldmetrics.v1.UtilizationSnapshotR\x05value:\x028\x01\"u\n" +
	"\n" +
	"TrendPoint\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x03R\x05count\x12'\n" +
	"\x0fcompleted_count\x18\x03 \x01(\x03R\x0ecompletedCount\x12\x14\n" +
	"\x05value\x18\x04 \x01(\x01R\x05value\"^\n" +
	"\rCategoryStats\x12\x14\n" +
	"\x05count\x18\x01 \x01(\x03R\x05count\x12\x18\n" +
	"\arevenue\x18\x02 \x01(\x01R\arevenue\x12\x1d\n" +
	"\n" +
	"avg_rating\x18\x03 \x01(\x01R\tavgRating\"\xa6\x04\n" +
	"\x18CompletionTrendsResponse\x12!\n" +
	"\ftotal_orders\x18\x01 \x01(\x03R\vtotalOrders\x12)\n" +
	"\x10completed_orders\x18\x02 \x01(\x03R\x0fcompletedOrders\x12'\n" +
	"\x0fcompletion_rate\x18\x03 \x01(\x01R\x0ecompletionRate\x126\n" +
	"\x17average_completion_time\x18\x04 \x01(\x01R\x15averageCompletionTime\x12 \n" +
	"\fon_time_rate\x18\x05 \x01(\x01R\n" +
	"onTimeRate\x12-\n" +
	"\x13first_time_fix_rate\x18\x06 \x01(\x01R\x10firstTimeFixRate\x12o\n" +
	"\x12category_breakdown\x18\a \x03(\v2@.fieldmetrics.v1.CompletionTrendsResponse.CategoryBreakdownEntryR\x11categoryBreakdown\x123\n" +
	"\x06trends\x18\b \x03(\v2\x1b.fieldmetrics.v1.TrendPointR\x06trends\x1ad\n" +
	"\x16CategoryBreakdownEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x124\n" +
	"\x05value\x18\x02 \x01(\v2\x1e.fieldmetrics.v1.CategoryStatsR\x05value:\x028\x01\"r\n" +
	"\fMonthlyTrend\x12\x14\n" +
	"\x05month\x18\x01 \x01(\tR\x05month\x12\x18\n" +
	"\arevenue\x18\x02 \x01(\x01R\arevenue\x12\x1a\n" +
	"\bexpenses\x18\x03 \x01(\x01R\bexpenses\x12\x16\n" +
	"\x06profit\x18\x04 \x01(\x01R\x06profit\"\xc5\x04\n" +
	"\x16RevenueMetricsResponse\x12#\n" +
	"\rtotal_revenue\x18\x01 \x01(\x01R\ftotalRevenue\x12%\n" +
	"\x0etotal_expenses\x18\x02 \x01(\x01R\rtotalExpenses\x12!\n" +
	"\fgross_profit\x18\x03 \x01(\x01R\vgrossProfit\x12#\n" +
	"\rprofit_margin\x18\x04 \x01(\x01R\fprofitMargin\x124\n" +
	"\x16revenue_per_technician\x18\x05 \x01(\x01R\x14revenuePerTechnician\x12*\n" +
	"\x11average_job_value\x18\x06 \x01(\x01R\x0faverageJobValue\x12 \n" +
	"\fcost_per_job\x18\a \x01(\x01R\n" +
	"costPerJob\x12D\n" +
	"\x0emonthly_trends\x18\b \x03(\v2\x1d.fieldmetrics.v1.MonthlyTrendR\rmonthlyTrends\x12\x80\x01\n" +
	"\x19profitability_by_category\x18\t \x03(\v2D.fieldmetrics.v1.RevenueMetricsResponse.ProfitabilityByCategoryEntryR\x17profitabilityByCategory\x1aJ\n" +
	"\x1cProfitabilityByCategoryEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"L\n" +
	"\rMonthlyRating\x12\x14\n" +
	"\x05month\x18\x01 \x01(\tR\x05month\x12%\n" +
	"\x0eaverage_rating\x18\x02 \x01(\x01R\raverageRating\"\x8e\x01\n" +
	"\x12FeedbackCategories\x12\x1a\n" +
	"\bpositive\x18\x01 \x01(\x03R\bpositive\x12\x1a\n" +
	"\bnegative\x18\x02 \x01(\x03R\bnegative\x12 \n" +
	"\vsuggestions\x18\x03 \x01(\x03R\vsuggestions\x12\x1e\n" +
	"\n" +
	"complaints\x18\x04 \x01(\x03R\n" +
	"complaints\"~\n" +
	"\x0fImprovementArea\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x03R\x05count\x12\x1d\n" +
	"\n" +
	"avg_rating\x18\x03 \x01(\x01R\tavgRating\x12\x1a\n" +
	"\bpriority\x18\x04 \x01(\x01R\bpriority\"j\n" +
	"\fTopPerformer\x12\x1e\n" +
	"\n" +
	"technician\x18\x01 \x01(\tR\n" +
	"technician\x12\x1b\n" +
	"\tjob_count\x18\x02 \x01(\x03R\bjobCount\x12\x1d\n" +
	"\n" +
	"avg_rating\x18\x03 \x01(\x01R\tavgRating\"\xa1\x04\n" +
	"\x1bSatisfactionMetricsResponse\x12%\n" +
	"\x0eaverage_rating\x18\x01 \x01(\x01R\raverageRating\x12\x1b\n" +
	"\tnps_score\x18\x02 \x01(\x01R\bnpsScore\x12#\n" +
	"\rresponse_rate\x18\x03 \x01(\x01R\fresponseRate\x12\x1f\n" +
	"\vrated_count\x18\x04 \x01(\x03R\n" +
	"ratedCount\x12\x1c\n" +
	"\tpromoters\x18\x05 \x01(\x03R\tpromoters\x12\x1e\n" +
	"\n" +
	"detractors\x18\x06 \x01(\x03R\n" +
	"detractors\x12O\n" +
	"\x13satisfaction_trends\x18\a \x03(\v2\x1e.fieldmetrics.v1.MonthlyRatingR\x12satisfactionTrends\x12T\n" +
	"\x13feedback_categories\x18\b \x01(\v2#.fieldmetrics.v1.FeedbackCategoriesR\x12feedbackCategories\x12M\n" +
	"\x11improvement_areas\x18\t \x03(\v2 .fieldmetrics.v1.ImprovementAreaR\x10improvementAreas\x12D\n" +
	"\x0etop_performers\x18\n" +
	" \x03(\v2\x1d.fieldmetrics.v1.TopPerformerR\rtopPerformers\"\x86\x01\n" +
	"\fCriticalItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rcurrent_stock\x18\x02 \x01(\x01R\fcurrentStock\x12#\n" +
	"\rminimum_stock\x18\x03 \x01(\x01R\fminimumStock\x12\x18\n" +
	"\aurgency\x18\x04 \x01(\tR\aurgency\"\xd2\x02\n" +
	"\x18EquipmentMetricsResponse\x12x\n" +
	"\x15equipment_utilization\x18\x01 \x03(\v2C.fieldmetrics.v1.EquipmentMetricsResponse.EquipmentUtilizationEntryR\x14equipmentUtilization\x12-\n" +
	"\x12stockout_frequency\x18\x02 \x01(\x01R\x11stockoutFrequency\x12D\n" +
	"\x0ecritical_items\x18\x03 \x03(\v2\x1d.fieldmetrics.v1.CriticalItemR\rcriticalItems\x1aG\n" +
	"\x19EquipmentUtilizationEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x03R\x05value:\x028\x01\"\xcf\x03\n" +
	"\x18DashboardMetricsResponse\x12P\n" +
	"\vutilization\x18\x01 \x01(\v2..fieldmetrics.v1.TechnicianUtilizationResponseR\vutilization\x12V\n" +
	"\x11completion_trends\x18\x02 \x01(\v2).fieldmetrics.v1.CompletionTrendsResponseR\x10completionTrends\x12P\n" +
	"\x0frevenue_metrics\x18\x03 \x01(\v2'.fieldmetrics.v1.RevenueMetricsResponseR\x0erevenueMetrics\x12_\n" +
	"\x14satisfaction_metrics\x18\x04 \x01(\v2,.fieldmetrics.v1.SatisfactionMetricsResponseR\x13satisfactionMetrics\x12V\n" +
	"\x11equipment_metrics\x18\x05 \x01(\v2).fieldmetrics.v1.EquipmentMetricsResponseR\x10equipmentMetrics\"\xc9\x01\n" +
	"\rMetricsUpdate\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\x12\x1d\n" +
	"\n" +
	"event_type\x18\x02 \x01(\tR\teventType\x129\n" +
	"\n" +
	"event_time\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\teventTime\x12C\n" +
	"\ametrics\x18\x04 \x01(\v2).fieldmetrics.v1.DashboardMetricsResponseR\ametrics2\xd5\x05\n" +
	"\fFieldMetrics\x12c\n" +
	"\x13GetDashboardMetrics\x12!.fieldmetrics.v1.TimeRangeRequest\x1a).fieldmetrics.v1.DashboardMetricsResponse\x12m\n" +
	"\x18GetTechnicianUtilization\x12!.fieldmetrics.v1.TimeRangeRequest\x1a..fieldmetrics.v1.TechnicianUtilizationResponse\x12c\n" +
	"\x13GetCompletionTrends\x12!.fieldmetrics.v1.TimeRangeRequest\x1a).fieldmetrics.v1.CompletionTrendsResponse\x12_\n" +
	"\x11GetRevenueMetrics\x12!.fieldmetrics.v1.TimeRangeRequest\x1a'.fieldmetrics.v1.RevenueMetricsResponse\x12i\n" +
	"\x16GetSatisfactionMetrics\x12!.fieldmetrics.v1.TimeRangeRequest\x1a,.fieldmetrics.v1.SatisfactionMetricsResponse\x12c\n" +
	"\x13GetEquipmentMetrics\x12!.fieldmetrics.v1.EquipmentRequest\x1a).fieldmetrics.v1.EquipmentMetricsResponse\x12[\n" +
	"\x14StreamMetricsUpdates\x12!.fieldmetrics.v1.TimeRangeRequest\x1a\x1e.fieldmetrics.v1.MetricsUpdate0\x01B1Z/github.com/fieldops/metrics-server/api/v1;apiv1b\x06proto3"

var (
	file_fieldmetrics_proto_rawDescOnce sync.Once
	file_fieldmetrics_proto_rawDescData []byte
)

func file_fieldmetrics_proto_rawDescGZIP() []byte {
	file_fieldmetrics_proto_rawDescOnce.Do(func() {
		file_fieldmetrics_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_fieldmetrics_proto_rawDesc), len(file_fieldmetrics_proto_rawDesc)))
	})
	return file_fieldmetrics_proto_rawDescData
}

var file_fieldmetrics_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_fieldmetrics_proto_goTypes = []any{
	(*TimeRangeRequest)(nil),              // 0: fieldmetrics.v1.TimeRangeRequest
	(*EquipmentRequest)(nil),              // 1: fieldmetrics.v1.EquipmentRequest
	(*UtilizationSnapshot)(nil),           // 2: fieldmetrics.v1.UtilizationSnapshot
	(*TechnicianUtilizationResponse)(nil), // 3: fieldmetrics.v1.TechnicianUtilizationResponse
	(*TrendPoint)(nil),                    // 4: fieldmetrics.v1.TrendPoint
	(*CategoryStats)(nil),                 // 5: fieldmetrics.v1.CategoryStats
	(*CompletionTrendsResponse)(nil),      // 6: fieldmetrics.v1.CompletionTrendsResponse
	(*MonthlyTrend)(nil),                  // 7: fieldmetrics.v1.MonthlyTrend
	(*RevenueMetricsResponse)(nil),        // 8: fieldmetrics.v1.RevenueMetricsResponse
	(*MonthlyRating)(nil),                 // 9: fieldmetrics.v1.MonthlyRating
	(*FeedbackCategories)(nil),            // 10: fieldmetrics.v1.FeedbackCategories
	(*ImprovementArea)(nil),               // 11: fieldmetrics.v1.ImprovementArea
	(*TopPerformer)(nil),                  // 12: fieldmetrics.v1.TopPerformer
	(*SatisfactionMetricsResponse)(nil),   // 13: fieldmetrics.v1.SatisfactionMetricsResponse
	(*CriticalItem)(nil),                  // 14: fieldmetrics.v1.CriticalItem
	(*EquipmentMetricsResponse)(nil),      // 15: fieldmetrics.v1.EquipmentMetricsResponse
	(*DashboardMetricsResponse)(nil),      // 16: fieldmetrics.v1.DashboardMetricsResponse
	(*MetricsUpdate)(nil),                 // 17: fieldmetrics.v1.MetricsUpdate
	nil,                                   // 18: fieldmetrics.v1.TechnicianUtilizationResponse.TechniciansEntry
	nil,                                   // 19: fieldmetrics.v1.CompletionTrendsResponse.CategoryBreakdownEntry
	nil,                                   // 20: fieldmetrics.v1.RevenueMetricsResponse.ProfitabilityByCategoryEntry
	nil,                                   // 21: fieldmetrics.v1.EquipmentMetricsResponse.EquipmentUtilizationEntry
	(*timestamppb.Timestamp)(nil),         // 22: google.protobuf.Timestamp
}
var file_fieldmetrics_proto_depIdxs = []int32{
	18, // 0: fieldmetrics.v1.TechnicianUtilizationResponse.technicians:type_name -> fieldmetrics.v1.TechnicianUtilizationResponse.TechniciansEntry
	19, // 1: fieldmetrics.v1.CompletionTrendsResponse.category_breakdown:type_name -> fieldmetrics.v1.CompletionTrendsResponse.CategoryBreakdownEntry
	4,  // 2: fieldmetrics.v1.CompletionTrendsResponse.trends:type_name -> fieldmetrics.v1.TrendPoint
	7,  // 3: fieldmetrics.v1.RevenueMetricsResponse.monthly_trends:type_name -> fieldmetrics.v1.MonthlyTrend
	20, // 4: fieldmetrics.v1.RevenueMetricsResponse.profitability_by_category:type_name -> fieldmetrics.v1.RevenueMetricsResponse.ProfitabilityByCategoryEntry
	9,  // 5: fieldmetrics.v1.SatisfactionMetricsResponse.satisfaction_trends:type_name -> fieldmetrics.v1.MonthlyRating
	10, // 6: fieldmetrics.v1.SatisfactionMetricsResponse.feedback_categories:type_name -> fieldmetrics.v1.FeedbackCategories
	11, // 7: fieldmetrics.v1.SatisfactionMetricsResponse.improvement_areas:type_name -> fieldmetrics.v1.ImprovementArea
	12, // 8: fieldmetrics.v1.SatisfactionMetricsResponse.top_performers:type_name -> fieldmetrics.v1.TopPerformer
	21, // 9: fieldmetrics.v1.EquipmentMetricsResponse.equipment_utilization:type_name -> fieldmetrics.v1.EquipmentMetricsResponse.EquipmentUtilizationEntry
	14, // 10: fieldmetrics.v1.EquipmentMetricsResponse.critical_items:type_name -> fieldmetrics.v1.CriticalItem
	3,  // 11: fieldmetrics.v1.DashboardMetricsResponse.utilization:type_name -> fieldmetrics.v1.TechnicianUtilizationResponse
	6,  // 12: fieldmetrics.v1.DashboardMetricsResponse.completion_trends:type_name -> fieldmetrics.v1.CompletionTrendsResponse
	8,  // 13: fieldmetrics.v1.DashboardMetricsResponse.revenue_metrics:type_name -> fieldmetrics.v1.RevenueMetricsResponse
	13, // 14: fieldmetrics.v1.DashboardMetricsResponse.satisfaction_metrics:type_name -> fieldmetrics.v1.SatisfactionMetricsResponse
	15, // 15: fieldmetrics.v1.DashboardMetricsResponse.equipment_metrics:type_name -> fieldmetrics.v1.EquipmentMetricsResponse
	22, // 16: fieldmetrics.v1.MetricsUpdate.event_time:type_name -> google.protobuf.Timestamp
	16, // 17: fieldmetrics.v1.MetricsUpdate.metrics:type_name -> fieldmetrics.v1.DashboardMetricsResponse
	2,  // 18: fieldmetrics.v1.TechnicianUtilizationResponse.TechniciansEntry.value:type_name -> fieldmetrics.v1.UtilizationSnapshot
	5,  // 19: fieldmetrics.v1.CompletionTrendsResponse.CategoryBreakdownEntry.value:type_name -> fieldmetrics.v1.CategoryStats
	0,  // 20: fieldmetrics.v1.FieldMetrics.GetDashboardMetrics:input_type -> fieldmetrics.v1.TimeRangeRequest
	0,  // 21: fieldmetrics.v1.FieldMetrics.GetTechnicianUtilization:input_type -> fieldmetrics.v1.TimeRangeRequest
	0,  // 22: fieldmetrics.v1.FieldMetrics.GetCompletionTrends:input_type -> fieldmetrics.v1.TimeRangeRequest
	0,  // 23: fieldmetrics.v1.FieldMetrics.GetRevenueMetrics:input_type -> fieldmetrics.v1.TimeRangeRequest
	0,  // 24: fieldmetrics.v1.FieldMetrics.GetSatisfactionMetrics:input_type -> fieldmetrics.v1.TimeRangeRequest
	1,  // 25: fieldmetrics.v1.FieldMetrics.GetEquipmentMetrics:input_type -> fieldmetrics.v1.EquipmentRequest
	0,  // 26: fieldmetrics.v1.FieldMetrics.StreamMetricsUpdates:input_type -> fieldmetrics.v1.TimeRangeRequest
	16, // 27: fieldmetrics.v1.FieldMetrics.GetDashboardMetrics:output_type -> fieldmetrics.v1.DashboardMetricsResponse
	3,  // 28: fieldmetrics.v1.FieldMetrics.GetTechnicianUtilization:output_type -> fieldmetrics.v1.TechnicianUtilizationResponse
	6,  // 29: fieldmetrics.v1.FieldMetrics.GetCompletionTrends:output_type -> fieldmetrics.v1.CompletionTrendsResponse
	8,  // 30: fieldmetrics.v1.FieldMetrics.GetRevenueMetrics:output_type -> fieldmetrics.v1.RevenueMetricsResponse
	13, // 31: fieldmetrics.v1.FieldMetrics.GetSatisfactionMetrics:output_type -> fieldmetrics.v1.SatisfactionMetricsResponse
	15, // 32: fieldmetrics.v1.FieldMetrics.GetEquipmentMetrics:output_type -> fieldmetrics.v1.EquipmentMetricsResponse
	17, // 33: fieldmetrics.v1.FieldMetrics.StreamMetricsUpdates:output_type -> fieldmetrics.v1.MetricsUpdate
	27, // [27:34] is the sub-list for method output_type
	20, // [20:27] is the sub-list for method input_type
	20, // [20:20] is the sub-list for extension type_name
	20, // [20:20] is the sub-list for extension extendee
	0,  // [0:20] is the sub-list for field type_name
}

func init() { file_fieldmetrics_proto_init() }
func file_fieldmetrics_proto_init() {
	if File_fieldmetrics_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_fieldmetrics_proto_rawDesc), len(file_fieldmetrics_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_fieldmetrics_proto_goTypes,
		DependencyIndexes: file_fieldmetrics_proto_depIdxs,
		MessageInfos:      file_fieldmetrics_proto_msgTypes,
	}.Build()
	File_fieldmetrics_proto = out.File
	file_fieldmetrics_proto_goTypes = nil
	file_fieldmetrics_proto_depIdxs = nil
}
