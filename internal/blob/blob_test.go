package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/request-ocr/internal/common"
)

func TestFindPDFs(t *testing.T) {
	objects := []ObjectInfo{
		{Name: "2024/req-001.pdf"},
		{Name: "req-001.txt"},
		{Name: "req-0012.pdf"},
		{Name: "REQ-001.PDF"},
		{Name: "req-002.pdf"},
	}
	got := FindPDFs(objects, "req-001")
	require.Len(t, got, 2)
	assert.Equal(t, "2024/req-001.pdf", got[0].Name)
	assert.Equal(t, "req-0012.pdf", got[1].Name)

	assert.Empty(t, FindPDFs(objects, "missing"))
}

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dbeditor", "2024"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dbeditor", "b.pdf"), []byte("B"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dbeditor", "2024", "a.pdf"), []byte("AA"), 0o600))

	s, err := Open(context.Background(), "file://"+root)
	require.NoError(t, err)
	defer s.Close()

	objs, err := s.List(context.Background(), "dbeditor")
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "2024/a.pdf", objs[0].Name)
	assert.Equal(t, int64(2), objs[0].Size)
	assert.Equal(t, "b.pdf", objs[1].Name)

	b, err := s.Get(context.Background(), "dbeditor", "2024/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("AA"), b)

	_, err = s.Get(context.Background(), "dbeditor", "nope.pdf")
	require.Error(t, err)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConfigMissing))

	_, err = Open(context.Background(), "ftp://host/x")
	require.Error(t, err)
	assert.Equal(t, common.CodeConfigInvalid, common.CodeOf(err))

	_, err = Open(context.Background(), "file:///definitely/not/here")
	require.Error(t, err)
}

func TestParseS3(t *testing.T) {
	s, err := Open(context.Background(), "s3://AKIA:s3cr3t@minio.local:9000?secure=true&region=eu-west-1")
	require.NoError(t, err)
	_, ok := s.(*MinIOStore)
	assert.True(t, ok)

	_, err = Open(context.Background(), "s3://")
	require.Error(t, err)
}
