package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/floatscore/internal/scoring"
)

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	store := NewStore(path)

	h := New()
	h.Append(scoring.Result{FinalScore: 0.1}, "older", "0.30")
	h.Append(scoring.Result{FinalScore: 0.404}, "newer", "0.12")
	require.NoError(t, store.Save(h))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	records := loaded.Records()
	assert.Equal(t, "newer", records[0].Name)
	assert.Equal(t, "0.12", records[0].FloatRaw)
	assert.InDelta(t, 0.404, records[0].Result.FinalScore, 1e-12)
	assert.Equal(t, h.Records()[0].ID, records[0].ID)

	// Appending after load still prepends.
	loaded.Append(scoring.Result{}, "newest", "0.01")
	assert.Equal(t, "newest", loaded.Records()[0].Name)
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	h, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path)
	h, err := store.Load()
	assert.Error(t, err)
	require.NotNil(t, h)
	assert.Equal(t, 0, h.Len())

	backup, err := os.ReadFile(store.BackupPath())
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(backup))
	assert.NoFileExists(t, path)

	// A later save starts a fresh file and leaves the backup alone.
	h.Append(scoring.Result{FinalScore: 0.2}, "after", "0.3")
	require.NoError(t, store.Save(h))
	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
	assert.FileExists(t, store.BackupPath())
}
