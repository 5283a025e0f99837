// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: report/v1/report.proto

package reportv1

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
	ReportService_GetStatusCounts_FullMethodName  = "/report.v1.ReportService/GetStatusCounts"
	ReportService_GetEmployeeHours_FullMethodName = "/report.v1.ReportService/GetEmployeeHours"
	ReportService_ExportCsv_FullMethodName        = "/report.v1.ReportService/ExportCsv"
)

// ReportServiceClient is the client API for ReportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReportService はタイムシートの集計と CSV エクスポートを提供します。
type ReportServiceClient interface {
	GetStatusCounts(ctx context.Context, in *GetStatusCountsRequest, opts ...grpc.CallOption) (*GetStatusCountsResponse, error)
	GetEmployeeHours(ctx context.Context, in *GetEmployeeHoursRequest, opts ...grpc.CallOption) (*GetEmployeeHoursResponse, error)
	ExportCsv(ctx context.Context, in *ExportCsvRequest, opts ...grpc.CallOption) (*ExportCsvResponse, error)
}

type reportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportServiceClient(cc grpc.ClientConnInterface) ReportServiceClient {
	return &reportServiceClient{cc}
}

func (c *reportServiceClient) GetStatusCounts(ctx context.Context, in *GetStatusCountsRequest, opts ...grpc.CallOption) (*GetStatusCountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStatusCountsResponse)
	err := c.cc.Invoke(ctx, ReportService_GetStatusCounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) GetEmployeeHours(ctx context.Context, in *GetEmployeeHoursRequest, opts ...grpc.CallOption) (*GetEmployeeHoursResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEmployeeHoursResponse)
	err := c.cc.Invoke(ctx, ReportService_GetEmployeeHours_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) ExportCsv(ctx context.Context, in *ExportCsvRequest, opts ...grpc.CallOption) (*ExportCsvResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportCsvResponse)
	err := c.cc.Invoke(ctx, ReportService_ExportCsv_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReportServiceServer is the server API for ReportService service.
// All implementations must embed UnimplementedReportServiceServer
// for forward compatibility.
//
// ReportService はタイムシートの集計と CSV エクスポートを提供します。
type ReportServiceServer interface {
	GetStatusCounts(context.Context, *GetStatusCountsRequest) (*GetStatusCountsResponse, error)
	GetEmployeeHours(context.Context, *GetEmployeeHoursRequest) (*GetEmployeeHoursResponse, error)
	ExportCsv(context.Context, *ExportCsvRequest) (*ExportCsvResponse, error)
	mustEmbedUnimplementedReportServiceServer()
}

// UnimplementedReportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReportServiceServer struct{}

func (UnimplementedReportServiceServer) GetStatusCounts(context.Context, *GetStatusCountsRequest) (*GetStatusCountsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatusCounts not implemented")
}
func (UnimplementedReportServiceServer) GetEmployeeHours(context.Context, *GetEmployeeHoursRequest) (*GetEmployeeHoursResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployeeHours not implemented")
}
func (UnimplementedReportServiceServer) ExportCsv(context.Context, *ExportCsvRequest) (*ExportCsvResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportCsv not implemented")
}
func (UnimplementedReportServiceServer) mustEmbedUnimplementedReportServiceServer() {}
func (UnimplementedReportServiceServer) testEmbeddedByValue()                       {}

// UnsafeReportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReportServiceServer will
// result in compilation errors.
type UnsafeReportServiceServer interface {
	mustEmbedUnimplementedReportServiceServer()
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	// If the following call panics, it indicates UnimplementedReportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

func _ReportService_GetStatusCounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatusCountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetStatusCounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_GetStatusCounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetStatusCounts(ctx, req.(*GetStatusCountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_GetEmployeeHours_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEmployeeHoursRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetEmployeeHours(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_GetEmployeeHours_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetEmployeeHours(ctx, req.(*GetEmployeeHoursRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_ExportCsv_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportCsvRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).ExportCsv(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_ExportCsv_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).ExportCsv(ctx, req.(*ExportCsvRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReportService_ServiceDesc is the grpc.ServiceDesc for ReportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "report.v1.ReportService",
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStatusCounts",
			Handler:    _ReportService_GetStatusCounts_Handler,
		},
		{
			MethodName: "GetEmployeeHours",
			Handler:    _ReportService_GetEmployeeHours_Handler,
		},
		{
			MethodName: "ExportCsv",
			Handler:    _ReportService_ExportCsv_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "report/v1/report.proto",
}
