package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_SetAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	vendor := entities.Vendor{ID: "v-1", Name: "Fresh Farm", Role: entities.RoleVendor}

	ctx := session.New(path)
	require.NoError(t, ctx.Set("tok-1", vendor))

	assert.Equal(t, "tok-1", ctx.Token())
	assert.True(t, ctx.Authenticated())

	got, ok := ctx.Vendor()
	require.True(t, ok)
	assert.Equal(t, vendor, got)

	// a fresh context restores the same session from disk
	restored := session.New(path)
	require.NoError(t, restored.Load())
	assert.Equal(t, "tok-1", restored.Token())
	got, ok = restored.Vendor()
	require.True(t, ok)
	assert.Equal(t, vendor, got)
}

func TestContext_LoadMissingFile(t *testing.T) {
	ctx := session.New(filepath.Join(t.TempDir(), "absent.json"))

	require.NoError(t, ctx.Load())
	assert.False(t, ctx.Authenticated())
	assert.Empty(t, ctx.Token())
	_, ok := ctx.Vendor()
	assert.False(t, ok)
}

func TestContext_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	ctx := session.New(path)
	assert.Error(t, ctx.Load())
}

func TestContext_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := session.New(path)
	require.NoError(t, ctx.Set("tok-1", entities.Vendor{ID: "v-1", Name: "Fresh Farm"}))

	require.NoError(t, ctx.Clear())
	assert.False(t, ctx.Authenticated())
	assert.Empty(t, ctx.Token())
	assert.NoFileExists(t, path)

	// clearing an already-clear session is fine
	require.NoError(t, ctx.Clear())
}

func TestContext_Capabilities(t *testing.T) {
	testCases := []struct {
		name        string
		vendorName  string
		wantKKStock bool
	}{
		{"kk vendor", "KK Foods", true},
		{"regular vendor", "Fresh Farm", false},
		{"kk needs the prefix", "Old KK Depot", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := session.New(filepath.Join(t.TempDir(), "session.json"))
			require.NoError(t, ctx.Set("tok", entities.Vendor{ID: "v-1", Name: tc.vendorName}))
			assert.Equal(t, tc.wantKKStock, ctx.Capabilities().KKStock)
		})
	}
}
