package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("transport broke")
}

func TestSaveAndSize(t *testing.T) {
	local, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	content := []byte("audio bytes")
	written, err := local.Save("clip.wav", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), written)

	size, err := local.Size("clip.wav")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	onDisk, err := os.ReadFile(local.Path("clip.wav"))
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
}

func TestSave_FailedWriteLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocal(dir)
	require.NoError(t, err)

	_, err = local.Save("clip.wav", failingReader{})
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove_Idempotent(t *testing.T) {
	local, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = local.Save("clip.wav", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	assert.NoError(t, local.Remove("clip.wav"))
	// removing a missing file is not an error
	assert.NoError(t, local.Remove("clip.wav"))
}

func TestNewLocal_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	local, err := NewLocal(root)
	require.NoError(t, err)
	assert.Equal(t, root, local.Root())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
