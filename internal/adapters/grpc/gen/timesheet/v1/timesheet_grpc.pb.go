// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: timesheet/v1/timesheet.proto

package timesheetv1

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
	TimesheetService_SaveDayDraft_FullMethodName     = "/timesheet.v1.TimesheetService/SaveDayDraft"
	TimesheetService_SubmitWeek_FullMethodName       = "/timesheet.v1.TimesheetService/SubmitWeek"
	TimesheetService_ReviewWeek_FullMethodName       = "/timesheet.v1.TimesheetService/ReviewWeek"
	TimesheetService_ForceApproveWeek_FullMethodName = "/timesheet.v1.TimesheetService/ForceApproveWeek"
	TimesheetService_GetWeek_FullMethodName          = "/timesheet.v1.TimesheetService/GetWeek"
	TimesheetService_ListWeeks_FullMethodName        = "/timesheet.v1.TimesheetService/ListWeeks"
)

// TimesheetServiceClient is the client API for TimesheetService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TimesheetService は週次タイムシートのライフサイクルを提供します。
type TimesheetServiceClient interface {
	SaveDayDraft(ctx context.Context, in *SaveDayDraftRequest, opts ...grpc.CallOption) (*SaveDayDraftResponse, error)
	SubmitWeek(ctx context.Context, in *SubmitWeekRequest, opts ...grpc.CallOption) (*SubmitWeekResponse, error)
	ReviewWeek(ctx context.Context, in *ReviewWeekRequest, opts ...grpc.CallOption) (*ReviewWeekResponse, error)
	ForceApproveWeek(ctx context.Context, in *ForceApproveWeekRequest, opts ...grpc.CallOption) (*ForceApproveWeekResponse, error)
	GetWeek(ctx context.Context, in *GetWeekRequest, opts ...grpc.CallOption) (*GetWeekResponse, error)
	ListWeeks(ctx context.Context, in *ListWeeksRequest, opts ...grpc.CallOption) (*ListWeeksResponse, error)
}

type timesheetServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTimesheetServiceClient(cc grpc.ClientConnInterface) TimesheetServiceClient {
	return &timesheetServiceClient{cc}
}

func (c *timesheetServiceClient) SaveDayDraft(ctx context.Context, in *SaveDayDraftRequest, opts ...grpc.CallOption) (*SaveDayDraftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveDayDraftResponse)
	err := c.cc.Invoke(ctx, TimesheetService_SaveDayDraft_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) SubmitWeek(ctx context.Context, in *SubmitWeekRequest, opts ...grpc.CallOption) (*SubmitWeekResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitWeekResponse)
	err := c.cc.Invoke(ctx, TimesheetService_SubmitWeek_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) ReviewWeek(ctx context.Context, in *ReviewWeekRequest, opts ...grpc.CallOption) (*ReviewWeekResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewWeekResponse)
	err := c.cc.Invoke(ctx, TimesheetService_ReviewWeek_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) ForceApproveWeek(ctx context.Context, in *ForceApproveWeekRequest, opts ...grpc.CallOption) (*ForceApproveWeekResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ForceApproveWeekResponse)
	err := c.cc.Invoke(ctx, TimesheetService_ForceApproveWeek_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) GetWeek(ctx context.Context, in *GetWeekRequest, opts ...grpc.CallOption) (*GetWeekResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetWeekResponse)
	err := c.cc.Invoke(ctx, TimesheetService_GetWeek_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) ListWeeks(ctx context.Context, in *ListWeeksRequest, opts ...grpc.CallOption) (*ListWeeksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWeeksResponse)
	err := c.cc.Invoke(ctx, TimesheetService_ListWeeks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TimesheetServiceServer is the server API for TimesheetService service.
// All implementations must embed UnimplementedTimesheetServiceServer
// for forward compatibility.
//
// TimesheetService は週次タイムシートのライフサイクルを提供します。
type TimesheetServiceServer interface {
	SaveDayDraft(context.Context, *SaveDayDraftRequest) (*SaveDayDraftResponse, error)
	SubmitWeek(context.Context, *SubmitWeekRequest) (*SubmitWeekResponse, error)
	ReviewWeek(context.Context, *ReviewWeekRequest) (*ReviewWeekResponse, error)
	ForceApproveWeek(context.Context, *ForceApproveWeekRequest) (*ForceApproveWeekResponse, error)
	GetWeek(context.Context, *GetWeekRequest) (*GetWeekResponse, error)
	ListWeeks(context.Context, *ListWeeksRequest) (*ListWeeksResponse, error)
	mustEmbedUnimplementedTimesheetServiceServer()
}

// UnimplementedTimesheetServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTimesheetServiceServer struct{}

func (UnimplementedTimesheetServiceServer) SaveDayDraft(context.Context, *SaveDayDraftRequest) (*SaveDayDraftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveDayDraft not implemented")
}
func (UnimplementedTimesheetServiceServer) SubmitWeek(context.Context, *SubmitWeekRequest) (*SubmitWeekResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitWeek not implemented")
}
func (UnimplementedTimesheetServiceServer) ReviewWeek(context.Context, *ReviewWeekRequest) (*ReviewWeekResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReviewWeek not implemented")
}
func (UnimplementedTimesheetServiceServer) ForceApproveWeek(context.Context, *ForceApproveWeekRequest) (*ForceApproveWeekResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ForceApproveWeek not implemented")
}
func (UnimplementedTimesheetServiceServer) GetWeek(context.Context, *GetWeekRequest) (*GetWeekResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWeek not implemented")
}
func (UnimplementedTimesheetServiceServer) ListWeeks(context.Context, *ListWeeksRequest) (*ListWeeksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListWeeks not implemented")
}
func (UnimplementedTimesheetServiceServer) mustEmbedUnimplementedTimesheetServiceServer() {}
func (UnimplementedTimesheetServiceServer) testEmbeddedByValue()                          {}

// UnsafeTimesheetServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TimesheetServiceServer will
// result in compilation errors.
type UnsafeTimesheetServiceServer interface {
	mustEmbedUnimplementedTimesheetServiceServer()
}

func RegisterTimesheetServiceServer(s grpc.ServiceRegistrar, srv TimesheetServiceServer) {
	// If the following call panics, it indicates UnimplementedTimesheetServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TimesheetService_ServiceDesc, srv)
}

func _TimesheetService_SaveDayDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveDayDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).SaveDayDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_SaveDayDraft_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).SaveDayDraft(ctx, req.(*SaveDayDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_SubmitWeek_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitWeekRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).SubmitWeek(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_SubmitWeek_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).SubmitWeek(ctx, req.(*SubmitWeekRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_ReviewWeek_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewWeekRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).ReviewWeek(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_ReviewWeek_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).ReviewWeek(ctx, req.(*ReviewWeekRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_ForceApproveWeek_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForceApproveWeekRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).ForceApproveWeek(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_ForceApproveWeek_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).ForceApproveWeek(ctx, req.(*ForceApproveWeekRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_GetWeek_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWeekRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).GetWeek(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_GetWeek_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).GetWeek(ctx, req.(*GetWeekRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_ListWeeks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWeeksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).ListWeeks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_ListWeeks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).ListWeeks(ctx, req.(*ListWeeksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TimesheetService_ServiceDesc is the grpc.ServiceDesc for TimesheetService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TimesheetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "timesheet.v1.TimesheetService",
	HandlerType: (*TimesheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SaveDayDraft",
			Handler:    _TimesheetService_SaveDayDraft_Handler,
		},
		{
			MethodName: "SubmitWeek",
			Handler:    _TimesheetService_SubmitWeek_Handler,
		},
		{
			MethodName: "ReviewWeek",
			Handler:    _TimesheetService_ReviewWeek_Handler,
		},
		{
			MethodName: "ForceApproveWeek",
			Handler:    _TimesheetService_ForceApproveWeek_Handler,
		},
		{
			MethodName: "GetWeek",
			Handler:    _TimesheetService_GetWeek_Handler,
		},
		{
			MethodName: "ListWeeks",
			Handler:    _TimesheetService_ListWeeks_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "timesheet/v1/timesheet.proto",
}
