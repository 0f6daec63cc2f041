package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.yaml")
	s := NewFileStore(path)

	values, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, s.Save(map[string]string{
		"currentPrice": "400",
		"floatValue":   "0.12",
	}))

	values, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "400", values["currentPrice"])
	assert.Equal(t, "0.12", values["floatValue"])

	require.NoError(t, s.Clear())
	values, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, values)

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0644))

	values, err := NewFileStore(path).Load()
	assert.Error(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	in := map[string]string{"averageCost": "500"}
	require.NoError(t, s.Save(in))
	in["averageCost"] = "changed"

	values, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "500", values["averageCost"])

	require.NoError(t, s.Clear())
	values, _ = s.Load()
	assert.Empty(t, values)
}
