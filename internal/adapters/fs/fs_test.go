package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vscfg/internal/adapters/fs"
	"go.trai.ch/vscfg/internal/core/domain"
)

func TestOSFS_Exists(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "tasks.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o600))

	osfs := fs.NewOSFS()

	ok, err := osfs.Exists(existing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = osfs.Exists(filepath.Join(tmpDir, "missing.json"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOSFS_WriteAndRead(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, ".vscode", "tasks.json")

	osfs := fs.NewOSFS()
	require.NoError(t, osfs.WriteFile(target, []byte("first")))

	data, err := osfs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// A second write replaces the content entirely.
	require.NoError(t, osfs.WriteFile(target, []byte("2")))
	data, err = osfs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
}

func TestOSFS_ReadMissing(t *testing.T) {
	t.Parallel()

	_, err := fs.NewOSFS().ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileReadFailed.Error())
}

func TestOSFS_WriteIntoFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := fs.NewOSFS().WriteFile(filepath.Join(blocker, "tasks.json"), []byte("{}"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileWriteFailed.Error())

	data, err := os.ReadFile(blocker)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMapFS(t *testing.T) {
	t.Parallel()

	m := fs.NewMapFS(fstest.MapFS{
		"ws/.vscode/tasks.json": {Data: []byte(`{"tasks":[]}`)},
	})

	ok, err := m.Exists("/ws/.vscode/tasks.json")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Exists("ws/.vscode/c_cpp_properties.json")
	require.NoError(t, err)
	assert.False(t, ok)

	data, err := m.ReadFile("ws/.vscode/tasks.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tasks":[]}`, string(data))

	_, err = m.ReadFile("ws/missing.json")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileReadFailed.Error())

	require.NoError(t, m.WriteFile("/ws/.vscode/c_cpp_properties.json", []byte("{}")))
	data, err = m.ReadFile("ws/.vscode/c_cpp_properties.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestHasher_Sum(t *testing.T) {
	t.Parallel()

	h := fs.NewHasher()

	a := h.Sum([]byte("content"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Sum([]byte("content")))
	assert.NotEqual(t, a, h.Sum([]byte("content\n")))
	assert.Equal(t, "ef46db3751d8e999", h.Sum(nil))
}
