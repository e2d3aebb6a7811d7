package blob

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// LocalStore serves containers as subdirectories of a root directory.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("local store root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("local store root %q is not a directory", root)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) List(ctx context.Context, container string) ([]ObjectInfo, error) {
	dir := filepath.Join(s.root, container)
	var out []ObjectInfo
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, ObjectInfo{Name: filepath.ToSlash(rel), Size: info.Size(), Modified: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", container, err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *LocalStore) Get(_ context.Context, container, name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(s.root, container, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", container, name, err)
	}
	return b, nil
}

func (s *LocalStore) Close() error { return nil }
