// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: fieldmetrics.proto

package apiv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	FieldMetrics_GetDashboardMetrics_FullMethodName      = "/fieldmetrics.v1.FieldMetrics/GetDashboardMetrics"
	FieldMetrics_GetTechnicianUtilization_FullMethodName = "/fieldmetrics.v1.FieldMetrics/GetTechnicianUtilization"
	FieldMetrics_GetCompletionTrends_FullMethodName      = "/fieldmetrics.v1.FieldMetrics/GetCompletionTrends"
	FieldMetrics_GetRevenueMetrics_FullMethodName        = "/fieldmetrics.v1.FieldMetrics/GetRevenueMetrics"
	FieldMetrics_GetSatisfactionMetrics_FullMethodName   = "/fieldmetrics.v1.FieldMetrics/GetSatisfactionMetrics"
	FieldMetrics_GetEquipmentMetrics_FullMethodName      = "/fieldmetrics.v1.FieldMetrics/GetEquipmentMetrics"
	FieldMetrics_StreamMetricsUpdates_FullMethodName     = "/fieldmetrics.v1.FieldMetrics/StreamMetricsUpdates"
)

// FieldMetricsClient is the client API for FieldMetrics service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FieldMetricsClient interface {
	GetDashboardMetrics(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*DashboardMetricsResponse, error)
	GetTechnicianUtilization(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*TechnicianUtilizationResponse, error)
	GetCompletionTrends(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*CompletionTrendsResponse, error)
	GetRevenueMetrics(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*RevenueMetricsResponse, error)
	GetSatisfactionMetrics(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*SatisfactionMetricsResponse, error)
	GetEquipmentMetrics(ctx context.Context, in *EquipmentRequest, opts ...grpc.CallOption) (*EquipmentMetricsResponse, error)
	StreamMetricsUpdates(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MetricsUpdate], error)
}

type fieldMetricsClient struct {
	cc grpc.ClientConnInterface
}

func NewFieldMetricsClient(cc grpc.ClientConnInterface) FieldMetricsClient {
	return &fieldMetricsClient{cc}
}

func (c *fieldMetricsClient) GetDashboardMetrics(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*DashboardMetricsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DashboardMetricsResponse)
	err := c.cc.Invoke(ctx, FieldMetrics_GetDashboardMetrics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fieldMetricsClient) GetTechnicianUtilization(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*TechnicianUtilizationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TechnicianUtilizationResponse)
	err := c.cc.Invoke(ctx, FieldMetrics_GetTechnicianUtilization_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fieldMetricsClient) GetCompletionTrends(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*CompletionTrendsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompletionTrendsResponse)
	err := c.cc.Invoke(ctx, FieldMetrics_GetCompletionTrends_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fieldMetricsClient) GetRevenueMetrics(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*RevenueMetricsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RevenueMetricsResponse)
	err := c.cc.Invoke(ctx, FieldMetrics_GetRevenueMetrics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fieldMetricsClient) GetSatisfactionMetrics(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (*SatisfactionMetricsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SatisfactionMetricsResponse)
	err := c.cc.Invoke(ctx, FieldMetrics_GetSatisfactionMetrics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fieldMetricsClient) GetEquipmentMetrics(ctx context.Context, in *EquipmentRequest, opts ...grpc.CallOption) (*EquipmentMetricsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EquipmentMetricsResponse)
	err := c.cc.Invoke(ctx, FieldMetrics_GetEquipmentMetrics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fieldMetricsClient) StreamMetricsUpdates(ctx context.Context, in *TimeRangeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MetricsUpdate], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &FieldMetrics_ServiceDesc.Streams[0], FieldMetrics_StreamMetricsUpdates_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[TimeRangeRequest, MetricsUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type FieldMetrics_StreamMetricsUpdatesClient = grpc.ServerStreamingClient[MetricsUpdate]

// FieldMetricsServer is the server API for FieldMetrics service.
// All implementations must embed UnimplementedFieldMetricsServer
// for forward compatibility.
type FieldMetricsServer interface {
	GetDashboardMetrics(context.Context, *TimeRangeRequest) (*DashboardMetricsResponse, error)
	GetTechnicianUtilization(context.Context, *TimeRangeRequest) (*TechnicianUtilizationResponse, error)
	GetCompletionTrends(context.Context, *TimeRangeRequest) (*CompletionTrendsResponse, error)
	GetRevenueMetrics(context.Context, *TimeRangeRequest) (*RevenueMetricsResponse, error)
	GetSatisfactionMetrics(context.Context, *TimeRangeRequest) (*SatisfactionMetricsResponse, error)
	GetEquipmentMetrics(context.Context, *EquipmentRequest) (*EquipmentMetricsResponse, error)
	StreamMetricsUpdates(*TimeRangeRequest, grpc.ServerStreamingServer[MetricsUpdate]) error
	mustEmbedUnimplementedFieldMetricsServer()
}

// UnimplementedFieldMetricsServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFieldMetricsServer struct{}

func (UnimplementedFieldMetricsServer) GetDashboardMetrics(context.Context, *TimeRangeRequest) (*DashboardMetricsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDashboardMetrics not implemented")
}
func (UnimplementedFieldMetricsServer) GetTechnicianUtilization(context.Context, *TimeRangeRequest) (*TechnicianUtilizationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTechnicianUtilization not implemented")
}
func (UnimplementedFieldMetricsServer) GetCompletionTrends(context.Context, *TimeRangeRequest) (*CompletionTrendsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCompletionTrends not implemented")
}
func (UnimplementedFieldMetricsServer) GetRevenueMetrics(context.Context, *TimeRangeRequest) (*RevenueMetricsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRevenueMetrics not implemented")
}
func (UnimplementedFieldMetricsServer) GetSatisfactionMetrics(context.Context, *TimeRangeRequest) (*SatisfactionMetricsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSatisfactionMetrics not implemented")
}
func (UnimplementedFieldMetricsServer) GetEquipmentMetrics(context.Context, *EquipmentRequest) (*EquipmentMetricsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEquipmentMetrics not implemented")
}
func (UnimplementedFieldMetricsServer) StreamMetricsUpdates(*TimeRangeRequest, grpc.ServerStreamingServer[MetricsUpdate]) error {
	return status.Error(codes.Unimplemented, "method StreamMetricsUpdates not implemented")
}
func (UnimplementedFieldMetricsServer) mustEmbedUnimplementedFieldMetricsServer() {}
func (UnimplementedFieldMetricsServer) testEmbeddedByValue()                      {}

// UnsafeFieldMetricsServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FieldMetricsServer will
// result in compilation errors.
type UnsafeFieldMetricsServer interface {
	mustEmbedUnimplementedFieldMetricsServer()
}

func RegisterFieldMetricsServer(s grpc.ServiceRegistrar, srv FieldMetricsServer) {
	// If the following call panics, it indicates UnimplementedFieldMetricsServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FieldMetrics_ServiceDesc, srv)
}

func _FieldMetrics_GetDashboardMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimeRangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FieldMetricsServer).GetDashboardMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FieldMetrics_GetDashboardMetrics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FieldMetricsServer).GetDashboardMetrics(ctx, req.(*TimeRangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FieldMetrics_GetTechnicianUtilization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimeRangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FieldMetricsServer).GetTechnicianUtilization(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FieldMetrics_GetTechnicianUtilization_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FieldMetricsServer).GetTechnicianUtilization(ctx, req.(*TimeRangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FieldMetrics_GetCompletionTrends_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimeRangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FieldMetricsServer).GetCompletionTrends(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FieldMetrics_GetCompletionTrends_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FieldMetricsServer).GetCompletionTrends(ctx, req.(*TimeRangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FieldMetrics_GetRevenueMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimeRangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FieldMetricsServer).GetRevenueMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FieldMetrics_GetRevenueMetrics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FieldMetricsServer).GetRevenueMetrics(ctx, req.(*TimeRangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FieldMetrics_GetSatisfactionMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimeRangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FieldMetricsServer).GetSatisfactionMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FieldMetrics_GetSatisfactionMetrics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FieldMetricsServer).GetSatisfactionMetrics(ctx, req.(*TimeRangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FieldMetrics_GetEquipmentMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EquipmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FieldMetricsServer).GetEquipmentMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FieldMetrics_GetEquipmentMetrics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FieldMetricsServer).GetEquipmentMetrics(ctx, req.(*EquipmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FieldMetrics_StreamMetricsUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(TimeRangeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(FieldMetricsServer).StreamMetricsUpdates(m, &grpc.GenericServerStream[TimeRangeRequest, MetricsUpdate]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type FieldMetrics_StreamMetricsUpdatesServer = grpc.ServerStreamingServer[MetricsUpdate]

// FieldMetrics_ServiceDesc is the grpc.ServiceDesc for FieldMetrics service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FieldMetrics_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fieldmetrics.v1.FieldMetrics",
	HandlerType: (*FieldMetricsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDashboardMetrics",
			Handler:    _FieldMetrics_GetDashboardMetrics_Handler,
		},
		{
			MethodName: "GetTechnicianUtilization",
			Handler:    _FieldMetrics_GetTechnicianUtilization_Handler,
		},
		{
			MethodName: "GetCompletionTrends",
			Handler:    _FieldMetrics_GetCompletionTrends_Handler,
		},
		{
			MethodName: "GetRevenueMetrics",
			Handler:    _FieldMetrics_GetRevenueMetrics_Handler,
		},
		{
			MethodName: "GetSatisfactionMetrics",
			Handler:    _FieldMetrics_GetSatisfactionMetrics_Handler,
		},
		{
			MethodName: "GetEquipmentMetrics",
			Handler:    _FieldMetrics_GetEquipmentMetrics_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamMetricsUpdates",
			Handler:       _FieldMetrics_StreamMetricsUpdates_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "fieldmetrics.proto",
}
