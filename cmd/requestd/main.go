package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/metrics"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline"
	"github.com/joseph-ayodele/request-ocr/internal/scheduler"
	"github.com/joseph-ayodele/request-ocr/internal/server"
)

func main() {
	cfg := common.LoadConfig()
	logger := common.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(store, logger)

	if err := server.PingDB(ctx, store, logger, 3*time.Second); err != nil {
		logger.Error("DB health failed", "error", err)
		os.Exit(1)
	}

	runLock, closeLock, err := server.NewRunLock(ctx, cfg.Lock, logger)
	if err != nil {
		logger.Error("run lock", "error", err)
		os.Exit(1)
	}
	defer closeLock()

	processor, err := server.NewProcessor(store, runLock, server.NewOCRExtractor(cfg.OCR, logger), logger)
	if err != nil {
		logger.Error("build processor", "error", err)
		os.Exit(1)
	}

	sched, err := scheduler.NewScheduler(processor, func() pipeline.RunConfig {
		// re-read so storage settings can change between runs
		return pipeline.RunConfigFrom(common.LoadConfig())
	}, scheduler.Config{
		Interval:   cfg.Schedule.Interval,
		Timezone:   cfg.Schedule.Timezone,
		RunTimeout: cfg.Schedule.RunTimeout,
	}, logger)
	if err != nil {
		logger.Error("build scheduler", "error", err)
		os.Exit(1)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	metricsSrv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	// gRPC health
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("metrics serving", "addr", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		server.WatchDBHealth(gctx, hs, store, 30*time.Second, logger)
		return nil
	})
	g.Go(func() error {
		if cfg.Schedule.RunOnStart {
			_, _ = sched.RunNow()
		}
		if err := sched.Start(); err != nil {
			return err
		}
		<-gctx.Done()
		<-sched.Stop().Done()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")
		grpcServer.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
