package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-omg/pdfsearch-cli/backend"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func Test_SaveAndGet(t *testing.T) {
	s := openStore(t)

	doc := backend.GeneratedDocument{
		Content:      "# Summary\nBananas are berries.",
		DocumentType: backend.DocSummary,
		SourceFiles:  []string{"facts.pdf"},
		GeneratedAt:  "2026-08-26T10:00:00",
		Query:        "banana taxonomy",
	}

	rec, err := s.Save(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.SavedAt.IsZero())

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, doc, got.Document)
}

func Test_Get_Missing(t *testing.T) {
	s := openStore(t)

	_, err := s.Get("no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func Test_List_NewestFirst(t *testing.T) {
	s := openStore(t)

	first, err := s.Save(backend.GeneratedDocument{Query: "first"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.Save(backend.GeneratedDocument{Query: "second"})
	require.NoError(t, err)

	recs, err := s.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, second.ID, recs[0].ID)
	assert.Equal(t, first.ID, recs[1].ID)
}

func Test_Delete(t *testing.T) {
	s := openStore(t)

	rec, err := s.Save(backend.GeneratedDocument{Query: "ephemeral"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(rec.ID))

	_, err = s.Get(rec.ID)
	assert.Error(t, err)

	recs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, recs)
}
