// Package v1 describes the minds.v1.MindAPI gRPC service.
//
// The service is defined over protobuf well-known types, so it needs no
// generated message code:
//
//	service MindAPI {
//	  rpc ListMinds(google.protobuf.Empty) returns (google.protobuf.ListValue);
//	  rpc CreateMind(google.protobuf.StringValue) returns (google.protobuf.Struct);
//	  rpc DeleteMind(google.protobuf.UInt64Value) returns (google.protobuf.Empty);
//	}
//
// A mind travels as a Struct with the fields id (number), publish_time
// (RFC 3339 string) and content (string).
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	MindAPI_ListMinds_FullMethodName  = "/minds.v1.MindAPI/ListMinds"
	MindAPI_CreateMind_FullMethodName = "/minds.v1.MindAPI/CreateMind"
	MindAPI_DeleteMind_FullMethodName = "/minds.v1.MindAPI/DeleteMind"
)

type MindAPIClient interface {
	ListMinds(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	CreateMind(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteMind(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type mindAPIClient struct {
	cc grpc.ClientConnInterface
}

func NewMindAPIClient(cc grpc.ClientConnInterface) MindAPIClient {
	return &mindAPIClient{cc}
}

func (c *mindAPIClient) ListMinds(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, MindAPI_ListMinds_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mindAPIClient) CreateMind(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MindAPI_CreateMind_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mindAPIClient) DeleteMind(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, MindAPI_DeleteMind_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MindAPIServer must embed UnimplementedMindAPIServer for forward compatibility.
type MindAPIServer interface {
	ListMinds(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	CreateMind(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	DeleteMind(context.Context, *wrapperspb.UInt64Value) (*emptypb.Empty, error)
	mustEmbedUnimplementedMindAPIServer()
}

type UnimplementedMindAPIServer struct{}

func (UnimplementedMindAPIServer) ListMinds(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMinds not implemented")
}

func (UnimplementedMindAPIServer) CreateMind(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMind not implemented")
}

func (UnimplementedMindAPIServer) DeleteMind(context.Context, *wrapperspb.UInt64Value) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMind not implemented")
}

func (UnimplementedMindAPIServer) mustEmbedUnimplementedMindAPIServer() {}

func RegisterMindAPIServer(s grpc.ServiceRegistrar, srv MindAPIServer) {
	s.RegisterService(&MindAPI_ServiceDesc, srv)
}

func _MindAPI_ListMinds_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MindAPIServer).ListMinds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MindAPI_ListMinds_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MindAPIServer).ListMinds(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _MindAPI_CreateMind_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MindAPIServer).CreateMind(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MindAPI_CreateMind_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MindAPIServer).CreateMind(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _MindAPI_DeleteMind_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MindAPIServer).DeleteMind(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MindAPI_DeleteMind_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MindAPIServer).DeleteMind(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

var MindAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "minds.v1.MindAPI",
	HandlerType: (*MindAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMinds",
			Handler:    _MindAPI_ListMinds_Handler,
		},
		{
			MethodName: "CreateMind",
			Handler:    _MindAPI_CreateMind_Handler,
		},
		{
			MethodName: "DeleteMind",
			Handler:    _MindAPI_DeleteMind_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "minds/v1/minds.proto",
}
