package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/entity"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline"
)

type stubRunner struct {
	mu    sync.Mutex
	calls []pipeline.RunConfig
	res   pipeline.Result
	err   error
	done  chan struct{}
}

func (s *stubRunner) Run(ctx context.Context, cfg pipeline.RunConfig) (pipeline.Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, cfg)
	s.mu.Unlock()
	if _, ok := ctx.Deadline(); !ok {
		return pipeline.Result{}, errors.New("run without deadline")
	}
	if s.done != nil {
		select {
		case s.done <- struct{}{}:
		default:
		}
	}
	return s.res, s.err
}

func newTestScheduler(t *testing.T, r Runner, interval time.Duration) (*Scheduler, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := pipeline.RunConfig{ConnectionString: "file:///tmp", Container: "dbeditor"}
	s, err := NewScheduler(r, func() pipeline.RunConfig { return cfg }, Config{
		Interval:   interval,
		Timezone:   "Asia/Kolkata",
		RunTimeout: time.Minute,
	}, logger)
	require.NoError(t, err)
	return s, &buf
}

func TestRunNow_LogsOutcome(t *testing.T) {
	tests := []struct {
		name string
		res  pipeline.Result
		err  error
		want string
	}{
		{"inserted", pipeline.Result{Records: []entity.UsageRecord{{}}}, nil, "data inserted successfully"},
		{"nothing new", pipeline.Result{}, nil, "all documents already extracted"},
		{"failure", pipeline.Result{}, errors.New("db down"), "error processing pdfs"},
		{"overlap", pipeline.Result{}, common.ErrRunInProgress, "previous run still in progress"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stubRunner{res: tt.res, err: tt.err}
			s, buf := newTestScheduler(t, r, 15*time.Minute)

			_, err := s.RunNow()
			assert.Equal(t, tt.err, err)
			assert.Contains(t, buf.String(), tt.want)
			require.Len(t, r.calls, 1)
			assert.Equal(t, "dbeditor", r.calls[0].Container)
		})
	}
}

func TestStart_TriggersOnInterval(t *testing.T) {
	r := &stubRunner{done: make(chan struct{}, 1)}
	s, _ := newTestScheduler(t, r, time.Second)
	require.NoError(t, s.Start())
	defer s.Stop()

	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not triggered")
	}
}

func TestNewScheduler_Invalid(t *testing.T) {
	_, err := NewScheduler(&stubRunner{}, nil, Config{Interval: 0}, nil)
	require.Error(t, err)

	_, err = NewScheduler(&stubRunner{}, nil, Config{Interval: time.Minute, Timezone: "Mars/Olympus"}, nil)
	require.Error(t, err)
}
