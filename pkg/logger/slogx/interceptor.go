package slogx

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs every unary call with its service, method, status
// code and duration. Server-side failures are logged as errors, caller
// mistakes and cancellations as warnings.
func LoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	start := time.Now()
	logger := Default()

	service, method := splitMethod(info.FullMethod)
	call := []slog.Attr{slog.String("grpc_service", service), slog.String("grpc_method", method)}
	logger.Debug(ctx, "start handling grpc call", call...)

	resp, err := handler(ctx, req)

	code := status.Code(err)
	attrs := append(call,
		slog.String("code", code.String()),
		slog.Duration("duration", time.Since(start)),
	)

	if err != nil {
		logger.Log(ctx, codeLevel(code), "finish with error", append(attrs, Err(err))...)
		return resp, err
	}

	logger.Info(ctx, "finish success", attrs...)

	return resp, nil
}

// splitMethod turns "/minds.v1.MindAPI/ListMinds" into its service and method parts.
func splitMethod(fullMethod string) (string, string) {
	name := strings.TrimPrefix(fullMethod, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i], name[i+1:]
	}

	return "unknown", name
}

func codeLevel(code codes.Code) slog.Level {
	switch code {
	case codes.Canceled, codes.InvalidArgument, codes.NotFound, codes.AlreadyExists,
		codes.PermissionDenied, codes.Unauthenticated, codes.FailedPrecondition,
		codes.OutOfRange, codes.DeadlineExceeded:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
