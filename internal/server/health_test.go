package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/joseph-ayodele/request-ocr/internal/common"
)

func TestWatchDBHealth(t *testing.T) {
	logger := common.NewLogger(testWriter{t}, "error")
	store, err := ConnectDB(context.Background(), common.DatabaseConfig{Driver: common.DriverSQLite, AutoMigrate: true}, logger)
	require.NoError(t, err)
	defer CloseDB(store, logger)

	hs := health.NewServer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		WatchDBHealth(ctx, hs, store, 10*time.Millisecond, logger)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}

func TestNewRunLock_Memory(t *testing.T) {
	logger := common.NewLogger(testWriter{t}, "error")
	l, closeFn, err := NewRunLock(context.Background(), common.LockConfig{}, logger)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.NoError(t, closeFn())
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
