package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mulpath/internal/adapters/fs"
)

func TestIsBare(t *testing.T) {
	tests := []struct {
		path string
		bare bool
	}{
		{"art.mul", true},
		{"ART.MUL", true},
		{"map1.mul", true},
		{"", false},
		{".", false},
		{"..", false},
		{"/opt/uo/art.mul", false},
		{filepath.Join("custom", "art.mul"), false},
		{filepath.Join("..", "art.mul"), false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.bare, fs.IsBare(tt.path))
		})
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "art.mul")
	require.NoError(t, os.WriteFile(file, []byte("art"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "hues.mul"), 0o750))

	assert.True(t, fs.FileExists(file))
	assert.False(t, fs.FileExists(filepath.Join(tmpDir, "missing.mul")))
	assert.False(t, fs.FileExists(filepath.Join(tmpDir, "hues.mul")), "directories are not files")
	assert.False(t, fs.FileExists(""))

	assert.True(t, fs.DirExists(tmpDir))
	assert.False(t, fs.DirExists(file))
	assert.False(t, fs.DirExists(""))
}

func TestAnchor(t *testing.T) {
	root := filepath.Join("opt", "uo")
	qualified := filepath.Join("mnt", "custom", "art.mul")

	assert.Equal(t, filepath.Join(root, "art.mul"), fs.Anchor(root, "art.mul"))
	assert.Equal(t, qualified, fs.Anchor(root, qualified))
}
