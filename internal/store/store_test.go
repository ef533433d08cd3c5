package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHashIdentity(t *testing.T) {
	dir := t.TempDir()
	file1 := filepath.Join(dir, "a.txt")
	file2 := filepath.Join(dir, "b.txt")
	copy1 := filepath.Join(dir, "a_copy.txt")

	require.NoError(t, os.WriteFile(file1, []byte("Call me Ishmael."), 0644))
	require.NoError(t, os.WriteFile(file2, []byte("It was a dark night."), 0644))
	require.NoError(t, os.WriteFile(copy1, []byte("Call me Ishmael."), 0644))

	h1, err := ComputeHash(file1)
	require.NoError(t, err)
	h2, err := ComputeHash(file2)
	require.NoError(t, err)
	h3, err := ComputeHash(copy1)
	require.NoError(t, err)

	assert.Equal(t, h1, h3, "same content should produce same hash")
	assert.NotEqual(t, h1, h2)
	assert.Len(t, h1, 32)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	s, err := New()
	require.NoError(t, err)

	hash := "abcdef1234567890abcdef1234567890"
	assert.Equal(t, 0, s.PageIndex(hash))

	require.NoError(t, s.SetPageIndex(hash, 42))
	assert.Equal(t, 42, s.PageIndex(hash))

	require.NoError(t, s.Clear(hash))
	assert.Equal(t, 0, s.PageIndex(hash))
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	hash := "abcdef1234567890abcdef1234567890"

	s1, err := New()
	require.NoError(t, err)
	require.NoError(t, s1.SetPageIndex(hash, 12))

	s2, err := New()
	require.NoError(t, err)
	assert.Equal(t, 12, s2.PageIndex(hash))
}
