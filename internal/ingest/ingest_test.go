package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/request-ocr/internal/blob"
)

type fakeDocs struct {
	mu    sync.Mutex
	names []string
	fail  string
}

func (f *fakeDocs) ListUnprocessed(context.Context) ([]string, error) { return nil, nil }
func (f *fakeDocs) MarkProcessed(context.Context, []string) error     { return nil }

func (f *fakeDocs) AddDocument(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name == f.fail {
		return errors.New("boom")
	}
	f.names = append(f.names, name)
	return nil
}

func (f *fakeDocs) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]string(nil), f.names...)
	sort.Strings(out)
	return out
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestDocumentName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"req-001.pdf", "req-001", true},
		{"inbox/2024/req.pdf", "req", true},
		{"req-001.PDF", "", false},
		{"notes.txt", "", false},
		{".pdf", "", false},
	}
	for _, tc := range cases {
		got, ok := DocumentName(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

type listStore struct{ objects []blob.ObjectInfo }

func (s listStore) List(context.Context, string) ([]blob.ObjectInfo, error) { return s.objects, nil }
func (s listStore) Get(context.Context, string, string) ([]byte, error)     { return nil, nil }
func (s listStore) Close() error                                            { return nil }

func TestRegisterFromStore(t *testing.T) {
	docs := &fakeDocs{fail: "bad"}
	r := NewRegistrar(docs, quietLogger())
	stats, err := r.RegisterFromStore(context.Background(), listStore{objects: []blob.ObjectInfo{
		{Name: "a.pdf"}, {Name: "b.txt"}, {Name: "bad.pdf"}, {Name: "c.pdf"},
	}}, "dbeditor")
	require.NoError(t, err)
	assert.Equal(t, Stats{Scanned: 4, Registered: 2, Failed: 1}, stats)
	assert.Equal(t, []string{"a", "c"}, docs.snapshot())
}

func TestRegisterDirectory_SkipsHidden(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".cache"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	for _, p := range []string{"one.pdf", "sub/two.pdf", ".cache/three.pdf", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, p), []byte("%PDF"), 0o644))
	}

	docs := &fakeDocs{}
	stats, err := NewRegistrar(docs, quietLogger()).RegisterDirectory(context.Background(), root, true)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Registered)
	assert.Equal(t, []string{"one", "two"}, docs.snapshot())
}

func TestRegisterDirectory_EmptyRoot(t *testing.T) {
	_, err := NewRegistrar(&fakeDocs{}, quietLogger()).RegisterDirectory(context.Background(), " ", false)
	require.Error(t, err)
}

func TestWatch_RegistersNewFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "existing.pdf"), []byte("%PDF"), 0o644))

	docs := &fakeDocs{}
	r := NewRegistrar(docs, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Watch(ctx, WatchConfig{Roots: []string{root}, InitialScan: true, Debounce: 20 * time.Millisecond})
	}()

	require.Eventually(t, func() bool { return len(docs.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "fresh.pdf"), []byte("%PDF"), 0o644))
	require.Eventually(t, func() bool {
		names := docs.snapshot()
		return len(names) > 0 && names[len(names)-1] == "fresh"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_NoRoots(t *testing.T) {
	require.Error(t, NewRegistrar(&fakeDocs{}, quietLogger()).Watch(context.Background(), WatchConfig{}))
}
