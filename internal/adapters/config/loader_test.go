package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mulpath/internal/adapters/config"
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_Full(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	clientDir := filepath.Join(dir, "client")

	path := createFile(t, dir, domain.ConfigFileName, `
version: "1"
root: client
hash_dir: cache/hash
overrides:
  Art.MUL: /mnt/custom/art.mul
  hues.mul: hues_custom.mul
  tiledata.mul: patches/tiledata.mul
map_widths:
  0: 7168
  1: 6144
`)

	settings, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, clientDir, settings.Root)
	assert.Equal(t, filepath.Join(dir, "cache", "hash"), settings.HashDir)
	assert.Equal(t, map[domain.AssetName]string{
		domain.NewAssetName("art.mul"):      filepath.Clean("/mnt/custom/art.mul"),
		domain.NewAssetName("hues.mul"):     "hues_custom.mul",
		domain.NewAssetName("tiledata.mul"): filepath.Join(dir, "patches", "tiledata.mul"),
	}, settings.Overrides)
	assert.Equal(t, map[int]int{0: 7168, 1: 6144}, settings.MapWidths)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	path := createFile(t, dir, domain.ConfigFileName, `version: "1"`)

	settings, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), settings.Root)
	assert.Equal(t, filepath.Join(dir, domain.DefaultHashDir()), settings.HashDir)
	assert.Empty(t, settings.Overrides)
	assert.Empty(t, settings.MapWidths)
}

func TestLoader_Load_DiscoversInParents(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "root: /opt/uo\n")

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	settings, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/opt/uo"), settings.Root)
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	loader, _ := newLoader(t)
	path := createFile(t, t.TempDir(), domain.ConfigFileName, "overrides: [not, a, map\n")

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sentinel error
	}{
		{
			name:     "unknown override",
			content:  "overrides:\n  art2.mul: art.mul\n",
			sentinel: domain.ErrUnknownAsset,
		},
		{
			name:     "unknown map id",
			content:  "map_widths:\n  2: 7168\n",
			sentinel: domain.ErrUnknownMap,
		},
		{
			name:     "invalid width",
			content:  "map_widths:\n  0: 4096\n",
			sentinel: domain.ErrInvalidMapWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			path := createFile(t, t.TempDir(), domain.ConfigFileName, tt.content)

			settings, err := loader.Load(path)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Nil(t, settings)
		})
	}
}

func TestLoader_Load_RejectsLowestMapFirst(t *testing.T) {
	loader, _ := newLoader(t)
	path := createFile(t, t.TempDir(), domain.ConfigFileName,
		"map_widths:\n  9: 7168\n  0: 4096\n  4: 6144\n  2: 7168\n")

	for range 20 {
		_, err := loader.Load(path)
		require.ErrorIs(t, err, domain.ErrInvalidMapWidth)
		require.NotErrorIs(t, err, domain.ErrUnknownMap)
	}
}

func TestLoader_Load_WarnsOnUnknownVersion(t *testing.T) {
	loader, mockLogger := newLoader(t)
	path := createFile(t, t.TempDir(), domain.ConfigFileName, "version: \"2\"\n")

	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load(path)
	require.NoError(t, err)
}
