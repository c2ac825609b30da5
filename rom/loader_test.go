package rom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kick.rom")
	require.NoError(t, os.WriteFile(path, []byte{0x11, 0x22, 0x33, 0x44}, 0o644))

	img, err := LoadImage(path)
	require.NoError(t, err)
	require.Equal(t, Base, img.Base)
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, img.Data)
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.rom"))
	require.Error(t, err)
}

func TestLoadImageEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.rom")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := LoadImage(path)
	require.Error(t, err)
}
