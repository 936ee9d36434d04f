package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName: имя сервиса в протоколе health.
const ServiceName = "storefront.v1"

// Check: проверка зависимости для health.
type Check func(ctx context.Context) error

type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	cfg    *cfg.GRPCConfig
	logger logger.Logger
}

func NewGRPCServer(cfg *cfg.GRPCConfig, logger logger.Logger) *GRPCServer {
	return &GRPCServer{
		server: grpc.NewServer(grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger))),
		health: health.NewServer(),
		cfg:    cfg,
		logger: logger,
	}
}

func (s *GRPCServer) RegisterServices() {
	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Watch периодически выполняет проверки зависимостей и переключает статус ServiceName.
// Каждая зависимость также публикуется как отдельный сервис ServiceName/<name>.
func (s *GRPCServer) Watch(ctx context.Context, interval time.Duration, checks map[string]Check) {
	if len(checks) == 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.runChecks(ctx, checks)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *GRPCServer) runChecks(ctx context.Context, checks map[string]Check) {
	overall := healthpb.HealthCheckResponse_SERVING

	for name, check := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := check(checkCtx)
		cancel()

		st := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			overall = st
			s.logger.Warnf("health check %s failed: %v", name, err)
		}
		s.health.SetServingStatus(ServiceName+"/"+name, st)
	}

	s.health.SetServingStatus(ServiceName, overall)
}

func (s *GRPCServer) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	lis, err := net.Listen(s.cfg.NetworkMode, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return s.server.Serve(lis)
}

// Serve обслуживает готовый listener.
func (s *GRPCServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

func (s *GRPCServer) Stop(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infof("gRPC server stopped gracefully")
		return nil
	case <-ctx.Done():
		s.server.Stop()
		s.logger.Warnf("gRPC server forced to stop after timeout")
		return ctx.Err()
	}
}
