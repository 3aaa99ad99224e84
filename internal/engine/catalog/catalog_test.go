package catalog_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/engine/catalog"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600))
	}
}

func TestCatalog_Initialize_ResolvesExactlyExistingFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul", "artidx.mul", "map0.mul", "tiledata.mul")

	c := catalog.New()
	c.Initialize(root)

	require.True(t, c.Initialized())
	assert.Equal(t, root, c.Root())

	for _, name := range domain.KnownAssets() {
		_, statErr := os.Stat(filepath.Join(root, name.String()))
		path, ok := c.Resolve(name.String())

		assert.Equal(t, statErr == nil, ok, "asset %s", name)
		if ok {
			assert.Equal(t, filepath.Join(root, name.String()), path)
		}
	}
}

func TestCatalog_Initialize_RecordsBareNames(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul")

	c := catalog.New()
	c.Initialize(root)

	res, err := c.Entry("art.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedAt("art.mul"), res)

	res, err = c.Entry("hues.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.Absent, res.State)
}

func TestCatalog_Resolve_CaseInsensitive(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "map1.mul")

	c := catalog.New()
	c.Initialize(root)

	upper, okUpper := c.Resolve("MAP1.MUL")
	lower, okLower := c.Resolve("map1.mul")

	assert.True(t, okUpper)
	assert.True(t, okLower)
	assert.Equal(t, lower, upper)
}

func TestCatalog_Resolve_RechecksExistence(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "hues.mul")

	c := catalog.New()
	c.Initialize(root)

	_, ok := c.Resolve("hues.mul")
	require.True(t, ok)

	require.NoError(t, os.Remove(filepath.Join(root, "hues.mul")))

	_, ok = c.Resolve("hues.mul")
	assert.False(t, ok)

	_, err := c.Locate("hues.mul")
	require.ErrorIs(t, err, domain.ErrAssetMissing)
}

func TestCatalog_Locate_Errors(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul")

	uninitialized := catalog.New()
	_, err := uninitialized.Locate("art.mul")
	require.ErrorIs(t, err, domain.ErrNotInitialized)
	_, ok := uninitialized.Resolve("art.mul")
	assert.False(t, ok)

	c := catalog.New()
	c.Initialize(root)

	_, err = c.Locate("art2.mul")
	require.ErrorIs(t, err, domain.ErrUnknownAsset)

	_, err = c.Locate("hues.mul")
	require.ErrorIs(t, err, domain.ErrAssetAbsent)

	require.NoError(t, c.SetOverride("art.mul", ""))
	_, err = c.Locate("art.mul")
	require.ErrorIs(t, err, domain.ErrAssetUnresolved)
}

func TestCatalog_LoadDefaults_Idempotent(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul", "gumpartlegacymul.uop", "cliloc.enu")

	c := catalog.New()
	c.Initialize(root)
	before := c.Entries()
	fingerprint := c.Fingerprint()

	c.LoadDefaults()

	assert.Equal(t, before, c.Entries())
	assert.Equal(t, fingerprint, c.Fingerprint())

	other := catalog.New()
	other.Initialize(root)
	assert.Equal(t, fingerprint, other.Fingerprint(), "identical mappings must fingerprint identically")
}

func TestCatalog_LoadDefaults_DropsOverrides(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul")

	c := catalog.New()
	c.Initialize(root)
	fingerprint := c.Fingerprint()

	require.NoError(t, c.SetOverride("art.mul", "/nonexistent/dir/art.mul"))
	assert.NotEqual(t, fingerprint, c.Fingerprint())

	c.LoadDefaults()
	assert.Equal(t, fingerprint, c.Fingerprint())
}

func TestCatalog_SetOverride_NonexistentPath(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul")

	c := catalog.New()
	c.Initialize(root)

	require.NoError(t, c.SetOverride("art.mul", "/nonexistent/dir/art.mul"))

	res, err := c.Entry("art.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedAt("/nonexistent/dir/art.mul"), res, "overrides are stored without checks")

	_, ok := c.Resolve("art.mul")
	assert.False(t, ok)
}

func TestCatalog_SetOverride_Paths(t *testing.T) {
	root := t.TempDir()
	custom := t.TempDir()
	touch(t, root, "hues.mul", "hues_custom.mul")
	touch(t, custom, "art.mul")

	c := catalog.New()
	c.Initialize(root)

	require.NoError(t, c.SetOverride("HUES.MUL", "hues_custom.mul"))
	require.NoError(t, c.SetOverride("art.mul", filepath.Join(custom, "art.mul")))

	path, ok := c.Resolve("hues.mul")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "hues_custom.mul"), path, "bare overrides are anchored under the root")

	path, ok = c.Resolve("art.mul")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(custom, "art.mul"), path, "qualified overrides are used as-is")
}

func TestCatalog_SetOverride_UnknownAsset(t *testing.T) {
	c := catalog.New()
	c.Initialize(t.TempDir())
	fingerprint := c.Fingerprint()

	err := c.SetOverride("art2.mul", "/tmp/art2.mul")
	require.ErrorIs(t, err, domain.ErrUnknownAsset)
	assert.Equal(t, fingerprint, c.Fingerprint(), "rejected overrides must not change the catalog")
	assert.Len(t, c.Entries(), len(domain.KnownAssets()))
}

func TestCatalog_RebaseIfBare(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	custom := t.TempDir()

	touch(t, root1, "art.mul", "hues.mul", "map0.mul")
	touch(t, root2, "art.mul", "map1.mul")
	touch(t, custom, "tiledata.mul")
	qualified := filepath.Join(custom, "tiledata.mul")

	c := catalog.New()
	c.Initialize(root1)
	require.NoError(t, c.SetOverride("tiledata.mul", qualified))

	c.RebaseIfBare(root2)

	assert.Equal(t, root2, c.Root())

	res, err := c.Entry("tiledata.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedAt(qualified), res, "qualified entries are untouched")

	res, err = c.Entry("art.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedAt(filepath.Join(root2, "art.mul")), res, "bare entries are re-anchored")

	res, err = c.Entry("hues.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.Absent, res.State, "bare entries missing under the new root fall back to a probe")

	res, err = c.Entry("map1.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedAt(filepath.Join(root2, "map1.mul")), res, "absent entries are probed again")

	_, ok := c.Resolve("map0.mul")
	assert.False(t, ok)
}

func TestCatalog_RebaseIfBare_BareOverrideFollowsRoot(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	touch(t, root2, "hues_custom.mul")

	c := catalog.New()
	c.Initialize(root1)
	require.NoError(t, c.SetOverride("hues.mul", "hues_custom.mul"))

	c.RebaseIfBare(root2)

	res, err := c.Entry("hues.mul")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedAt(filepath.Join(root2, "hues_custom.mul")), res)
}

func TestCatalog_RebaseIfBare_Uninitialized(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul")

	c := catalog.New()
	c.RebaseIfBare(root)

	require.True(t, c.Initialized())
	path, ok := c.Resolve("art.mul")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "art.mul"), path)
}

func TestCatalog_WithExistsFunc(t *testing.T) {
	present := map[string]bool{
		filepath.Join("uo", "art.mul"): true,
	}
	c := catalog.New(catalog.WithExistsFunc(func(path string) bool {
		return present[path]
	}))
	c.Initialize("uo")

	path, ok := c.Resolve("art.mul")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("uo", "art.mul"), path)

	_, ok = c.Resolve("hues.mul")
	assert.False(t, ok)
}

func TestCatalog_Entries_KnownOrder(t *testing.T) {
	c := catalog.New()
	entries := c.Entries()
	known := domain.KnownAssets()

	require.Len(t, entries, len(known))
	for i, entry := range entries {
		assert.Equal(t, known[i], entry.Name)
		assert.Equal(t, domain.Unresolved, entry.Resolution.State)
	}
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "art.mul", "hues.mul")

	c := catalog.New()
	c.Initialize(root)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Resolve("art.mul")
		}()
		go func() {
			defer wg.Done()
			_ = c.SetOverride("hues.mul", "hues.mul")
		}()
		go func() {
			defer wg.Done()
			c.Fingerprint()
		}()
	}
	wg.Wait()

	_, ok := c.Resolve("hues.mul")
	assert.True(t, ok)
}
