package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

var (
	grpcAddr      string
	healthService string
)

var healthCmd = &cobra.Command{
	Use:         "health",
	Short:       "Check the gRPC health service",
	Annotations: map[string]string{ownerOptional: "true"},
	RunE:        runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "localhost:50051", "gRPC server address")
	healthCmd.Flags().StringVar(&healthService, "service", "", "Service to check, empty for the whole server")
}

func runHealth(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	status, err := checkHealth(ctx, grpcAddr, healthService)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	fmt.Println(status)
	if status != grpc_health_v1.HealthCheckResponse_SERVING {
		return errors.Unavailable("server is not serving")
	}
	return nil
}

// checkHealth asks the health service at addr about service. gRPC failures
// come back as *errors.Error.
func checkHealth(ctx context.Context, addr, service string) (grpc_health_v1.HealthCheckResponse_ServingStatus, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, errors.Wrap(err, "failed to create grpc client")
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // nothing to do on close failure
	}()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, errors.FromGRPCError(err)
	}
	return resp.GetStatus(), nil
}
