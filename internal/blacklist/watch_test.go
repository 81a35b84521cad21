package blacklist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBlacklist(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestHolderReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blacklist")
	writeBlacklist(t, path, "GROUP 4.4\n")

	h, err := NewHolder(path)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Get().Len())

	writeBlacklist(t, path, "GROUP 4.4\nKERNEL linux-image-unsigned-.*\n")
	require.NoError(t, h.Reload())
	assert.Equal(t, 2, h.Get().Len())
}

func TestHolderReloadKeepsRulesOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blacklist")
	writeBlacklist(t, path, "GROUP 4.4\n")

	h, err := NewHolder(path)
	require.NoError(t, err)

	// Removing the file is not an error: missing blacklist means empty set.
	require.NoError(t, os.Remove(path))
	require.NoError(t, h.Reload())
	assert.Equal(t, 0, h.Get().Len())
}

func TestHolderNotifiesListeners(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blacklist")
	writeBlacklist(t, path, "GROUP 4.4\n")

	h, err := NewHolder(path)
	require.NoError(t, err)

	ch := make(chan *RuleSet, 1)
	h.RegisterListener(ch)

	writeBlacklist(t, path, "GROUP 4.8\n")
	require.NoError(t, h.Reload())

	select {
	case rs := <-ch:
		require.Equal(t, 1, rs.Len())
		assert.Equal(t, "4.8", rs.Rules[0].Pattern)
	default:
		t.Fatal("listener was not notified")
	}
}

func TestHolderWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blacklist")
	writeBlacklist(t, path, "GROUP 4.4\n")

	h, err := NewHolder(path)
	require.NoError(t, err)

	ch := make(chan *RuleSet, 1)
	h.RegisterListener(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, h.Watch(ctx))

	writeBlacklist(t, path, "GROUP 4.8\n")

	// The reload fires only after the debounce window closes.
	select {
	case rs := <-ch:
		require.Equal(t, 1, rs.Len())
		assert.Equal(t, "4.8", rs.Rules[0].Pattern)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed after writing the watched file")
	}

	assert.Equal(t, "4.8", h.Get().Rules[0].Pattern)
}

func TestHolderMissingFileFailsOpen(t *testing.T) {
	h, err := NewHolder(filepath.Join(t.TempDir(), "no-such-file"))
	require.NoError(t, err)
	assert.Equal(t, 0, h.Get().Len())
}
