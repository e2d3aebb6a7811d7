package blob

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOConfig holds the S3-compatible endpoint settings.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// MinIOStore is a thin wrapper around the minio client; containers are buckets.
type MinIOStore struct {
	client *minio.Client
}

func NewMinIOStore(cfg MinIOConfig) (*MinIOStore, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	return &MinIOStore{client: mc}, nil
}

func (s *MinIOStore) List(ctx context.Context, container string) ([]ObjectInfo, error) {
	var out []ObjectInfo
	for obj := range s.client.ListObjects(ctx, container, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", container, obj.Err)
		}
		out = append(out, ObjectInfo{Name: obj.Key, Size: obj.Size, Modified: obj.LastModified})
	}
	return out, nil
}

func (s *MinIOStore) Get(ctx context.Context, container, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, container, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", container, name, err)
	}
	defer obj.Close()
	b, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", container, name, err)
	}
	return b, nil
}

func (s *MinIOStore) Close() error { return nil }
