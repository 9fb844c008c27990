// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: review.proto

package apiv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	TicketReview_EvaluateTicket_FullMethodName      = "/review.v1.TicketReview/EvaluateTicket"
	TicketReview_EvaluateBatch_FullMethodName       = "/review.v1.TicketReview/EvaluateBatch"
	TicketReview_GetEvaluation_FullMethodName       = "/review.v1.TicketReview/GetEvaluation"
	TicketReview_GetPassRate_FullMethodName         = "/review.v1.TicketReview/GetPassRate"
	TicketReview_GetBandDistribution_FullMethodName = "/review.v1.TicketReview/GetBandDistribution"
	TicketReview_GetImprovementAreas_FullMethodName = "/review.v1.TicketReview/GetImprovementAreas"
	TicketReview_GetJudgeUsage_FullMethodName       = "/review.v1.TicketReview/GetJudgeUsage"
)

// TicketReviewClient is the client API for TicketReview service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TicketReviewClient interface {
	EvaluateTicket(ctx context.Context, in *EvaluateTicketRequest, opts ...grpc.CallOption) (*EvaluationResponse, error)
	EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error)
	GetEvaluation(ctx context.Context, in *GetEvaluationRequest, opts ...grpc.CallOption) (*EvaluationResponse, error)
	GetPassRate(ctx context.Context, in *TimePeriodRequest, opts ...grpc.CallOption) (*PassRateResponse, error)
	GetBandDistribution(ctx context.Context, in *TimePeriodRequest, opts ...grpc.CallOption) (*BandDistributionResponse, error)
	GetImprovementAreas(ctx context.Context, in *ImprovementAreasRequest, opts ...grpc.CallOption) (*ImprovementAreasResponse, error)
	GetJudgeUsage(ctx context.Context, in *JudgeUsageRequest, opts ...grpc.CallOption) (*JudgeUsageResponse, error)
}

type ticketReviewClient struct {
	cc grpc.ClientConnInterface
}

func NewTicketReviewClient(cc grpc.ClientConnInterface) TicketReviewClient {
	return &ticketReviewClient{cc}
}

func (c *ticketReviewClient) EvaluateTicket(ctx context.Context, in *EvaluateTicketRequest, opts ...grpc.CallOption) (*EvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvaluationResponse)
	err := c.cc.Invoke(ctx, TicketReview_EvaluateTicket_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ticketReviewClient) EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvaluateBatchResponse)
	err := c.cc.Invoke(ctx, TicketReview_EvaluateBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ticketReviewClient) GetEvaluation(ctx context.Context, in *GetEvaluationRequest, opts ...grpc.CallOption) (*EvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvaluationResponse)
	err := c.cc.Invoke(ctx, TicketReview_GetEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ticketReviewClient) GetPassRate(ctx context.Context, in *TimePeriodRequest, opts ...grpc.CallOption) (*PassRateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PassRateResponse)
	err := c.cc.Invoke(ctx, TicketReview_GetPassRate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ticketReviewClient) GetBandDistribution(ctx context.Context, in *TimePeriodRequest, opts ...grpc.CallOption) (*BandDistributionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BandDistributionResponse)
	err := c.cc.Invoke(ctx, TicketReview_GetBandDistribution_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ticketReviewClient) GetImprovementAreas(ctx context.Context, in *ImprovementAreasRequest, opts ...grpc.CallOption) (*ImprovementAreasResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImprovementAreasResponse)
	err := c.cc.Invoke(ctx, TicketReview_GetImprovementAreas_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ticketReviewClient) GetJudgeUsage(ctx context.Context, in *JudgeUsageRequest, opts ...grpc.CallOption) (*JudgeUsageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JudgeUsageResponse)
	err := c.cc.Invoke(ctx, TicketReview_GetJudgeUsage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TicketReviewServer is the server API for TicketReview service.
// All implementations must embed UnimplementedTicketReviewServer
// for forward compatibility
type TicketReviewServer interface {
	EvaluateTicket(context.Context, *EvaluateTicketRequest) (*EvaluationResponse, error)
	EvaluateBatch(context.Context, *EvaluateBatchRequest) (*EvaluateBatchResponse, error)
	GetEvaluation(context.Context, *GetEvaluationRequest) (*EvaluationResponse, error)
	GetPassRate(context.Context, *TimePeriodRequest) (*PassRateResponse, error)
	GetBandDistribution(context.Context, *TimePeriodRequest) (*BandDistributionResponse, error)
	GetImprovementAreas(context.Context, *ImprovementAreasRequest) (*ImprovementAreasResponse, error)
	GetJudgeUsage(context.Context, *JudgeUsageRequest) (*JudgeUsageResponse, error)
	mustEmbedUnimplementedTicketReviewServer()
}

// UnimplementedTicketReviewServer must be embedded to have forward compatible implementations.
type UnimplementedTicketReviewServer struct {
}

func (UnimplementedTicketReviewServer) EvaluateTicket(context.Context, *EvaluateTicketRequest) (*EvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateTicket not implemented")
}
func (UnimplementedTicketReviewServer) EvaluateBatch(context.Context, *EvaluateBatchRequest) (*EvaluateBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateBatch not implemented")
}
func (UnimplementedTicketReviewServer) GetEvaluation(context.Context, *GetEvaluationRequest) (*EvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluation not implemented")
}
func (UnimplementedTicketReviewServer) GetPassRate(context.Context, *TimePeriodRequest) (*PassRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPassRate not implemented")
}
func (UnimplementedTicketReviewServer) GetBandDistribution(context.Context, *TimePeriodRequest) (*BandDistributionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBandDistribution not implemented")
}
func (UnimplementedTicketReviewServer) GetImprovementAreas(context.Context, *ImprovementAreasRequest) (*ImprovementAreasResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetImprovementAreas not implemented")
}
func (UnimplementedTicketReviewServer) GetJudgeUsage(context.Context, *JudgeUsageRequest) (*JudgeUsageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJudgeUsage not implemented")
}
func (UnimplementedTicketReviewServer) mustEmbedUnimplementedTicketReviewServer() {}

// UnsafeTicketReviewServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TicketReviewServer will
// result in compilation errors.
type UnsafeTicketReviewServer interface {
	mustEmbedUnimplementedTicketReviewServer()
}

func RegisterTicketReviewServer(s grpc.ServiceRegistrar, srv TicketReviewServer) {
	s.RegisterService(&TicketReview_ServiceDesc, srv)
}

func _TicketReview_EvaluateTicket_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateTicketRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketReviewServer).EvaluateTicket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TicketReview_EvaluateTicket_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TicketReviewServer).EvaluateTicket(ctx, req.(*EvaluateTicketRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TicketReview_EvaluateBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketReviewServer).EvaluateBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TicketReview_EvaluateBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TicketReviewServer).EvaluateBatch(ctx, req.(*EvaluateBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TicketReview_GetEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketReviewServer).GetEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TicketReview_GetEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TicketReviewServer).GetEvaluation(ctx, req.(*GetEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TicketReview_GetPassRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimePeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketReviewServer).GetPassRate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TicketReview_GetPassRate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TicketReviewServer).GetPassRate(ctx, req.(*TimePeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TicketReview_GetBandDistribution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimePeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketReviewServer).GetBandDistribution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TicketReview_GetBandDistribution_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TicketReviewServer).GetBandDistribution(ctx, req.(*TimePeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TicketReview_GetImprovementAreas_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImprovementAreasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketReviewServer).GetImprovementAreas(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TicketReview_GetImprovementAreas_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TicketReviewServer).GetImprovementAreas(ctx, req.(*ImprovementAreasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TicketReview_GetJudgeUsage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JudgeUsageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketReviewServer).GetJudgeUsage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TicketReview_GetJudgeUsage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TicketReviewServer).GetJudgeUsage(ctx, req.(*JudgeUsageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TicketReview_ServiceDesc is the grpc.ServiceDesc for TicketReview service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TicketReview_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "review.v1.TicketReview",
	HandlerType: (*TicketReviewServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EvaluateTicket",
			Handler:    _TicketReview_EvaluateTicket_Handler,
		},
		{
			MethodName: "EvaluateBatch",
			Handler:    _TicketReview_EvaluateBatch_Handler,
		},
		{
			MethodName: "GetEvaluation",
			Handler:    _TicketReview_GetEvaluation_Handler,
		},
		{
			MethodName: "GetPassRate",
			Handler:    _TicketReview_GetPassRate_Handler,
		},
		{
			MethodName: "GetBandDistribution",
			Handler:    _TicketReview_GetBandDistribution_Handler,
		},
		{
			MethodName: "GetImprovementAreas",
			Handler:    _TicketReview_GetImprovementAreas_Handler,
		},
		{
			MethodName: "GetJudgeUsage",
			Handler:    _TicketReview_GetJudgeUsage_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "review.proto",
}
