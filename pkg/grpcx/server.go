package grpcx

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"buf.build/go/protovalidate"
	protovalidatemw "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/protovalidate"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

type logger interface {
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)
}

type Service interface {
	RegisterService(grpc.ServiceRegistrar)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr     string    `option:"mandatory" validate:"required,hostname_port"`
	services []Service `validate:"required,min=1"`

	logger logger

	grpcOptions  []grpc.ServerOption
	interceptors []grpc.UnaryServerInterceptor

	maxConnIdle time.Duration `default:"5m"`
	time        time.Duration `default:"2h"`
	timeout     time.Duration `default:"20s"`
}

type Server struct {
	opts   Options
	srv    *grpc.Server
	logger logger
}

// New builds a server whose unary chain is: the caller's interceptors,
// panic recovery, then protovalidate rules of the request message.
func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("grpc server validate: %v", err)
	}

	if opts.logger == nil {
		opts.logger = &noopLogger{}
	}

	validator, err := protovalidate.New()
	if err != nil {
		return nil, fmt.Errorf("init protovalidate: %v", err)
	}

	s := &Server{opts: opts, logger: opts.logger}

	chain := make([]grpc.UnaryServerInterceptor, 0, len(opts.interceptors)+2)
	chain = append(chain, opts.interceptors...)
	chain = append(chain,
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(s.recoverPanic)),
		protovalidatemw.UnaryServerInterceptor(validator),
	)

	grpcOptions := append([]grpc.ServerOption{}, opts.grpcOptions...)
	grpcOptions = append(grpcOptions,
		grpc.ChainUnaryInterceptor(chain...),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: opts.maxConnIdle,
			Time:              opts.time,
			Timeout:           opts.timeout,
		}),
	)

	s.srv = grpc.NewServer(grpcOptions...)

	for _, svc := range opts.services {
		svc.RegisterService(s.srv)
	}

	return s, nil
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return fmt.Errorf("run grpc: %v", err)
	}

	return s.Serve(ctx, listener)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(
		ctx,
		"run grpc server",
		slog.String("addr", lis.Addr().String()),
	)

	if err := s.srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("listen and server: %v", err)
	}

	return nil
}

func (s *Server) recoverPanic(ctx context.Context, p any) error {
	s.logger.Error(ctx, "recovered from panic", slog.Any("panic", p))

	return status.Error(codes.Internal, "internal error")
}

type noopLogger struct{}

func (n *noopLogger) Info(context.Context, string, ...slog.Attr) {}

func (n *noopLogger) Error(context.Context, string, ...slog.Attr) {}
