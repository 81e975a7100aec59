package storage

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	type profile struct {
		Name  string `json:"name"`
		Stars int    `json:"stars"`
	}
	require.True(t, s.Set(KeyProfile, profile{Name: "cadet", Stars: 42}))

	var got profile
	require.True(t, s.Get(KeyProfile, &got))
	require.Equal(t, "cadet", got.Name)
	require.Equal(t, 42, got.Stars)
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	var v map[string]any
	require.False(t, s.Get("no_such_key", &v))
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.True(t, s.Set(KeySettings, map[string]bool{"sound": true}))
	require.True(t, s.Set(KeySettings, map[string]bool{"sound": false}))

	var got map[string]bool
	require.True(t, s.Get(KeySettings, &got))
	require.False(t, got["sound"])
}

func TestRemove(t *testing.T) {
	s := openTestStore(t)

	require.True(t, s.Set(KeyEquippedShip, "falcon"))
	require.True(t, s.Remove(KeyEquippedShip))

	var ship string
	require.False(t, s.Get(KeyEquippedShip, &ship))
}

func TestKeys(t *testing.T) {
	s := openTestStore(t)

	s.Set(KeyProfile, map[string]any{"name": "a"})
	s.Set(KeySettings, map[string]any{"sound": true})

	keys := s.Keys()
	require.ElementsMatch(t, []string{KeyProfile, KeySettings}, keys)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.True(t, s.Set(KeyProfile, map[string]string{"name": "cadet"}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var got map[string]string
	require.True(t, s2.Get(KeyProfile, &got))
	require.Equal(t, "cadet", got["name"])
}

func TestMemoryFallback(t *testing.T) {
	s := OpenMemory()
	defer s.Close()

	require.False(t, s.Available())
	require.True(t, s.Set(KeyProfile, map[string]string{"name": "cadet"}))

	var got map[string]string
	require.True(t, s.Get(KeyProfile, &got))
	require.Equal(t, "cadet", got["name"])
}

func TestOpenBadPathFallsBackToMemory(t *testing.T) {
	// A directory path cannot be opened as a database file. Open must
	// degrade instead of failing.
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()
	require.False(t, s.Available())
	require.True(t, s.Set(KeySettings, map[string]bool{"sound": true}))
}

func TestExportImportRoundTrip(t *testing.T) {
	s := openTestStore(t)
	s.Set(KeyProfile, map[string]any{"name": "cadet", "totalStars": 12})
	s.Set(KeyOperationProgress, map[string]any{
		"mul_3": map[string]any{"gamesPlayed": 4, "accuracy": 88},
	})
	s.Set(KeySessionHistory, []map[string]any{{"score": 1200}})

	data, err := s.Export()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "profile")
	require.Contains(t, doc, "operationProgress")
	require.Contains(t, doc, "exportDate")

	dst := OpenMemory()
	defer dst.Close()
	require.NoError(t, dst.Import(data))

	var prog map[string]map[string]any
	require.True(t, dst.Get(KeyOperationProgress, &prog))
	require.Equal(t, float64(4), prog["mul_3"]["gamesPlayed"])
}

func TestExportWithoutProfile(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Export()
	require.Error(t, err)
}

func TestImportRejectsMissingRequiredFields(t *testing.T) {
	s := openTestStore(t)
	s.Set(KeyProfile, map[string]string{"name": "existing"})

	err := s.Import([]byte(`{"profile": {"name": "x"}}`))
	require.Error(t, err)

	err = s.Import([]byte(`{"operationProgress": {}}`))
	require.Error(t, err)

	// Existing state untouched after rejected imports.
	var got map[string]string
	require.True(t, s.Get(KeyProfile, &got))
	require.Equal(t, "existing", got["name"])
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	s := openTestStore(t)
	require.Error(t, s.Import([]byte(`{not json`)))
}

func TestEvictOldSessionsTrimsToCap(t *testing.T) {
	s := openTestStore(t)

	history := make([]map[string]int, MaxSessionHistory+20)
	for i := range history {
		history[i] = map[string]int{"score": i}
	}
	require.True(t, s.Set(KeySessionHistory, history))

	s.evictOldSessions()

	var got []map[string]int
	require.True(t, s.Get(KeySessionHistory, &got))
	require.Len(t, got, MaxSessionHistory)
	// Newest-first order means the head survives.
	require.Equal(t, 0, got[0]["score"])
}
