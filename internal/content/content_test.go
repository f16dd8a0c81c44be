package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tips.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Keep the room cool \n\n\nAvoid screens before bed\n   \n"), 0o644))

	lines, err := LoadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Keep the room cool", "Avoid screens before bed"}, lines)
}

func TestLoadLinesMissingFile(t *testing.T) {
	lines, err := LoadLines(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	tips := filepath.Join(dir, "tips.txt")
	require.NoError(t, os.WriteFile(tips, []byte("a\nb\n"), 0o644))

	lib, err := LoadLibrary(tips, filepath.Join(dir, "none.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lib.Tips)
	assert.Empty(t, lib.Exercises)
}

func TestPickerEmpty(t *testing.T) {
	p := NewPicker(NewMemoryStore(), nil)
	_, ok, err := p.Pick(context.Background(), "tip:u1", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPickerNeverRepeatsForSameKey(t *testing.T) {
	ctx := context.Background()
	items := []string{"one", "two", "three"}
	// Always take the first candidate so a repeat would be visible.
	p := NewPicker(NewMemoryStore(), func(int) int { return 0 })

	prev, ok, err := p.Pick(ctx, "tip:u1", items)
	require.NoError(t, err)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		next, _, err := p.Pick(ctx, "tip:u1", items)
		require.NoError(t, err)
		assert.NotEqual(t, prev, next)
		prev = next
	}
}

func TestPickerKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	items := []string{"one", "two"}
	p := NewPicker(NewMemoryStore(), func(int) int { return 0 })

	a, _, _ := p.Pick(ctx, "tip:u1", items)
	b, _, _ := p.Pick(ctx, "tip:u2", items)
	assert.Equal(t, "one", a)
	assert.Equal(t, "one", b)
}

func TestPickerSingleItemRepeats(t *testing.T) {
	ctx := context.Background()
	p := NewPicker(NewMemoryStore(), nil)
	for i := 0; i < 3; i++ {
		got, ok, err := p.Pick(ctx, "exercise:u1", []string{"breathe"})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "breathe", got)
	}
}

func TestPickerDuplicateItemsTerminate(t *testing.T) {
	ctx := context.Background()
	p := NewPicker(NewMemoryStore(), nil)
	items := []string{"same", "same"}
	for i := 0; i < 3; i++ {
		got, _, err := p.Pick(ctx, "tip:u1", items)
		require.NoError(t, err)
		assert.Equal(t, "same", got)
	}
}

type failingStore struct{}

func (failingStore) LastSent(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func (failingStore) SetLastSent(context.Context, string, string) error {
	return errors.New("store down")
}

func TestPickerStoreError(t *testing.T) {
	p := NewPicker(failingStore{}, nil)
	_, _, err := p.Pick(context.Background(), "tip:u1", []string{"a", "b"})
	assert.Error(t, err)
}
