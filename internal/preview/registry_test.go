package preview

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistryAllocateRelease verifies the 1:1 allocation pairing.
func TestRegistryAllocateRelease(t *testing.T) {
	reg := NewRegistry()

	first := reg.Allocate(Source{Name: "a.mp4", Path: "/clips/a.mp4"})
	second := reg.Allocate(Source{Name: "a.mp4", Path: "/clips/a.mp4"})
	require.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, Prefix))
	assert.Equal(t, 2, reg.Live())

	src, ok := reg.Lookup(first)
	require.True(t, ok)
	assert.Equal(t, "/clips/a.mp4", src.Path)

	reg.Release(first)
	reg.Release(first)
	reg.Release("/elsewhere/x")
	assert.Equal(t, 1, reg.Live())

	_, ok = reg.Lookup(first)
	assert.False(t, ok)
}

// TestRegistryServesLiveURLsOnly checks HTTP serving and 404 after release.
func TestRegistryServesLiveURLsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip one.mp4")
	require.NoError(t, os.WriteFile(path, []byte("frames"), 0o644))

	reg := NewRegistry()
	resourceURL := reg.Allocate(Source{Name: "clip one.mp4", Path: path})
	assert.Contains(t, resourceURL, "clip%20one.mp4")

	rec := httptest.NewRecorder()
	reg.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, resourceURL, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "frames", rec.Body.String())

	reg.Release(resourceURL)
	rec = httptest.NewRecorder()
	reg.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, resourceURL, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestPointerReleaseBeforeReplace ensures only one URL is ever live.
func TestPointerReleaseBeforeReplace(t *testing.T) {
	reg := NewRegistry()
	ptr := NewPointer(reg)
	assert.Empty(t, ptr.URL())

	first := ptr.Assign(Source{Name: "a.mp4", Path: "/a.mp4"})
	assert.Equal(t, 1, reg.Live())

	second := ptr.Assign(Source{Name: "b.mp4", Path: "/b.mp4"})
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, ptr.URL())
	assert.Equal(t, 1, reg.Live())

	ptr.Release()
	ptr.Release()
	assert.Empty(t, ptr.URL())
	assert.Equal(t, 0, reg.Live())
}
