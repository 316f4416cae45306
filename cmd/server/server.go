package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-gm-api/internal/config"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/router"
	v1 "github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/v1"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP and gRPC servers",
	Long: `Start the REST API and a gRPC listener serving health checks and
reflection. Both stop gracefully on SIGINT or SIGTERM.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Int("http-port", 8080, "HTTP server port")
	serverCmd.Flags().Int("grpc-port", 50051, "gRPC server port, 0 disables it")
	serverCmd.Flags().String("storage", config.StorageRedis, "Encounter and campaign storage: redis or memory")
	serverCmd.Flags().StringSlice("redis-addrs", nil, "Redis endpoints")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		EncounterService: a.encounters,
		CampaignService:  a.campaigns,
		Calculator:       a.calc,
	})
	if err != nil {
		return err
	}

	if logger.ParseLevel(cfg.Log.Level) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine, err := router.New(&router.Config{
		Handler:        handler,
		OwnerHeader:    cfg.HTTP.OwnerHeader,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Health:         a.health,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer, healthServer := newGRPCServer()

	var grpcListener net.Listener
	if cfg.GRPC.Port > 0 {
		grpcListener, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
		if err != nil {
			return errors.Wrapf(err, "failed to listen on grpc port %d", cfg.GRPC.Port)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("HTTP server starting", "port", cfg.HTTP.Port, "storage", cfg.Storage)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	})

	if grpcListener != nil {
		g.Go(func() error {
			slog.Info("gRPC server starting", "port", cfg.GRPC.Port)
			if err := grpcServer.Serve(grpcListener); err != nil {
				return errors.Wrap(err, "grpc server failed")
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		healthServer.Shutdown()
		stopGRPC(shutdownCtx, grpcServer)

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "http shutdown failed")
		}
		slog.Info("Servers stopped")
		return nil
	})

	return g.Wait()
}

func newGRPCServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(slog.Default())),
			grpc_recovery.UnaryServerInterceptor(),
			errors.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(slog.Default())),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, healthServer
}

// stopGRPC drains in-flight calls until ctx expires, then forces the stop.
func stopGRPC(ctx context.Context, srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
	}
}

func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
