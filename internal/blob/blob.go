// Package blob reads the scanned request PDFs from object storage.
package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joseph-ayodele/request-ocr/constants"
	"github.com/joseph-ayodele/request-ocr/internal/common"
)

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Name     string
	Size     int64
	Modified time.Time
}

// Store is the narrow view of a blob store the pipeline needs.
type Store interface {
	List(ctx context.Context, container string) ([]ObjectInfo, error)
	Get(ctx context.Context, container, name string) ([]byte, error)
	Close() error
}

// FindPDFs returns the objects whose name ends in ".pdf" and contains target,
// in listing order.
func FindPDFs(objects []ObjectInfo, target string) []ObjectInfo {
	var out []ObjectInfo
	for _, o := range objects {
		if constants.IsPDFName(o.Name) && strings.Contains(o.Name, target) {
			out = append(out, o)
		}
	}
	return out
}

// Open builds a Store from a connection string:
//
//	s3://ACCESS:SECRET@host[:port][?secure=true]
//	gs://
//	file:///path/to/root
func Open(ctx context.Context, connStr string) (Store, error) {
	if strings.TrimSpace(connStr) == "" {
		return nil, common.NewAppError(common.CodeConfigMissing, "storage connection string not set", common.ErrConfigMissing)
	}
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, common.NewAppError(common.CodeConfigInvalid, "parse storage connection string", err)
	}
	switch u.Scheme {
	case "s3":
		cfg, err := parseS3(u)
		if err != nil {
			return nil, err
		}
		return NewMinIOStore(cfg)
	case "gs":
		return NewGCSStore(ctx)
	case "file":
		return NewLocalStore(u.Path)
	default:
		return nil, common.NewAppError(common.CodeConfigInvalid, fmt.Sprintf("unsupported storage scheme %q", u.Scheme), common.ErrInvalidInput)
	}
}

func parseS3(u *url.URL) (MinIOConfig, error) {
	cfg := MinIOConfig{Endpoint: u.Host}
	if u.User != nil {
		cfg.AccessKey = u.User.Username()
		cfg.SecretKey, _ = u.User.Password()
	}
	cfg.UseSSL = u.Query().Get("secure") == "true"
	cfg.Region = u.Query().Get("region")
	if cfg.Endpoint == "" {
		return MinIOConfig{}, common.NewAppError(common.CodeConfigInvalid, "s3 connection string needs a host", common.ErrInvalidInput)
	}
	return cfg, nil
}
