package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptlens/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndRecent(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		r := report.Report{
			ID:              name + "-id",
			Name:            name,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
			InputCount:      2,
			Shared:          "shared text",
			CommonWordCount: 2,
			Similarity:      0.9,
		}
		require.NoError(t, s.Save(r))
	}

	got, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "third", got[0].Name)
	assert.Equal(t, "first", got[2].Name)
	assert.Equal(t, "shared text", got[0].Shared)
	assert.Equal(t, 0.9, got[0].Similarity)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestRecent_Limit(t *testing.T) {
	s := openTestStore(t)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(report.Report{
			ID:        string(rune('a' + i)),
			Name:      "n",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := s.Recent(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecent_Empty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_DuplicateID(t *testing.T) {
	s := openTestStore(t)
	r := report.Report{ID: "dup", Name: "n", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Save(r))
	assert.Error(t, s.Save(r))
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
