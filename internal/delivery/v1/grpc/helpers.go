package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCErrorResponse переводит ошибку usecase в статус gRPC.
func GRPCErrorResponse(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, e.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, e.ErrUnauthorized.Error())
	case errors.Is(err, e.ErrForbidden):
		return status.Error(codes.PermissionDenied, e.ErrForbidden.Error())
	case errors.Is(err, e.ErrNotFound):
		return status.Error(codes.NotFound, e.ErrNotFound.Error())
	case errors.Is(err, e.ErrUpstreamDown), errors.Is(err, e.ErrUpstreamServer):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// UnaryLoggingInterceptor логирует вызовы и приводит ошибки к статусам gRPC.
func UnaryLoggingInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)
		if err != nil {
			log.Warnf("grpc %s failed in %s: %v", info.FullMethod, time.Since(start), err)
			return nil, GRPCErrorResponse(err)
		}

		log.Debugf("grpc %s ok in %s", info.FullMethod, time.Since(start))
		return resp, nil
	}
}
