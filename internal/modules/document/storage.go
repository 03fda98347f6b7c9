package document

import (
	"io"
	"os"
	"path/filepath"
)

// DiskStorage stores file contents under a base directory, one file per
// storage key.
type DiskStorage struct {
	baseDir string
}

func NewDiskStorage(baseDir string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStorage{baseDir: baseDir}, nil
}

func (s *DiskStorage) Save(key string, r io.Reader) (int64, error) {
	f, err := os.Create(filepath.Join(s.baseDir, key))
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, r)
}

func (s *DiskStorage) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.baseDir, key))
}

func (s *DiskStorage) Remove(key string) error {
	return os.Remove(filepath.Join(s.baseDir, key))
}
