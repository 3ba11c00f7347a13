package fs

import (
	"errors"
	iofs "io/fs"
	"path"
	"strings"
	"testing/fstest"

	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/vscfg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*MapFS)(nil)

// MapFS adapts fstest.MapFS to ports.FileSystem for testing.
// Absolute paths are stored without their leading slash.
type MapFS struct {
	Files fstest.MapFS
}

// NewMapFS creates a MapFS over files. A nil map starts empty.
func NewMapFS(files fstest.MapFS) *MapFS {
	if files == nil {
		files = fstest.MapFS{}
	}
	return &MapFS{Files: files}
}

// Exists reports whether a file exists at p.
func (m *MapFS) Exists(p string) (bool, error) {
	_, err := iofs.Stat(m.Files, toKey(p))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrFileStatFailed.Error()), "path", p)
}

// ReadFile reads the entire file at p.
func (m *MapFS) ReadFile(p string) ([]byte, error) {
	data, err := iofs.ReadFile(m.Files, toKey(p))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", p)
	}
	return data, nil
}

// WriteFile stores a copy of data at p.
func (m *MapFS) WriteFile(p string, data []byte) error {
	key := toKey(p)
	if !iofs.ValidPath(key) {
		return zerr.With(zerr.Wrap(iofs.ErrInvalid, domain.ErrFileWriteFailed.Error()), "path", p)
	}
	m.Files[key] = &fstest.MapFile{
		Data: append([]byte(nil), data...),
		Mode: domain.FilePerm,
	}
	return nil
}

// toKey converts a slash path to the unrooted form fstest.MapFS expects.
func toKey(p string) string {
	return strings.TrimPrefix(path.Clean(p), "/")
}
