package ctxtr

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const requestIDMetadataKey = "x-request-id"

// RequestIDInterceptor takes the request id from incoming metadata or generates a new one.
func RequestIDInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(requestIDMetadataKey); len(vals) > 0 {
			id = vals[0]
		}
	}

	if id == "" {
		id = newRequestID()
	}

	return handler(WithRequestID(ctx, id), req)
}
