package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStore reads objects from Google Cloud Storage using application default
// credentials; containers are buckets.
type GCSStore struct {
	client *storage.Client
}

func NewGCSStore(ctx context.Context) (*GCSStore, error) {
	c, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}
	return &GCSStore{client: c}, nil
}

func (s *GCSStore) List(ctx context.Context, container string) ([]ObjectInfo, error) {
	var out []ObjectInfo
	it := s.client.Bucket(container).Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", container, err)
		}
		out = append(out, ObjectInfo{Name: attrs.Name, Size: attrs.Size, Modified: attrs.Updated})
	}
	return out, nil
}

func (s *GCSStore) Get(ctx context.Context, container, name string) ([]byte, error) {
	r, err := s.client.Bucket(container).Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", container, name, err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", container, name, err)
	}
	return b, nil
}

func (s *GCSStore) Close() error { return s.client.Close() }
