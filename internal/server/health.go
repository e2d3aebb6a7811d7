package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	repo "github.com/joseph-ayodele/request-ocr/internal/repository"
)

// WatchDBHealth flips the overall serving status of hs with the database ping
// result every interval until ctx is done.
func WatchDBHealth(ctx context.Context, hs *health.Server, store repo.Store, interval time.Duration, logger *slog.Logger) {
	check := func() {
		status := healthpb.HealthCheckResponse_SERVING
		if err := PingDB(ctx, store, logger, 2*time.Second); err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		hs.SetServingStatus("", status)
	}

	check()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			hs.Shutdown()
			return
		case <-t.C:
			check()
		}
	}
}
