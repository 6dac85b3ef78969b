package minds

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/evgeniy-krivenko/minds/internal/api/minds/converter"
	"github.com/evgeniy-krivenko/minds/internal/entity"
	v1 "github.com/evgeniy-krivenko/minds/pkg/api/minds/v1"
	"github.com/evgeniy-krivenko/minds/pkg/grpcx"
)

var (
	_ grpcx.Service    = (*Service)(nil)
	_ v1.MindAPIServer = (*Service)(nil)
)

type Service struct {
	v1.UnimplementedMindAPIServer
	uc mindsUsecase
}

func New(uc mindsUsecase) *Service {
	return &Service{uc: uc}
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	v1.RegisterMindAPIServer(r, s)
}

func (s *Service) ListMinds(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	minds, err := s.uc.ListMinds(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return converter.ConvertMindsToProto(minds), nil
}

func (s *Service) CreateMind(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, entity.ErrInvalidContent.Error())
	}

	mind, err := s.uc.CreateMind(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	return converter.ConvertMindToProto(mind), nil
}

func (s *Service) DeleteMind(ctx context.Context, req *wrapperspb.UInt64Value) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, entity.ErrInvalidID.Error())
	}

	if err := s.uc.DeleteMind(ctx, req.GetValue()); err != nil {
		return nil, toStatus(err)
	}

	return &emptypb.Empty{}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidID), errors.Is(err, entity.ErrInvalidContent):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, entity.ErrStorage):
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
