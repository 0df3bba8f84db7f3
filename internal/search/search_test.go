package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash7367/chatlens/internal/store"
)

const sampleExport = `26/01/23, 15:30 - Alice: Hello there everyone
26/01/23, 15:31 - Bob: the agenda is attached
26/01/23, 15:40 - Chen: 你好世界
27/01/23, 09:00 - Alice: meeting agenda for friday
`

func importedDB(t *testing.T) *store.DB {
	t.Helper()
	dir := t.TempDir()
	db, err := store.OpenDB(filepath.Join(dir, "chatlens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	path := filepath.Join(dir, "team chat.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))
	_, _, err = store.ImportFile(db, path)
	require.NoError(t, err)
	return db
}

func TestSearchFTS(t *testing.T) {
	db := importedDB(t)

	results, err := Search(db, Options{Query: "agenda"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "team chat", r.ChatKey)
		assert.Contains(t, r.Snippet, ">>>agenda<<<")
	}
}

func TestSearchCaseFold(t *testing.T) {
	db := importedDB(t)
	results, err := Search(db, Options{Query: "hello"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].Author)
}

func TestSearchAuthorFilter(t *testing.T) {
	db := importedDB(t)
	results, err := Search(db, Options{Query: "agenda", Author: "Bob"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].MsgID)
}

func TestSearchSinceFilter(t *testing.T) {
	db := importedDB(t)
	results, err := Search(db, Options{Query: "agenda", Since: "2023-01-27"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].Author)
}

func TestSearchLimit(t *testing.T) {
	db := importedDB(t)
	results, err := Search(db, Options{Query: "agenda", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchCJKFallsBackToLike(t *testing.T) {
	db := importedDB(t)
	results, err := Search(db, Options{Query: "你好"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chen", results[0].Author)
	assert.Contains(t, results[0].Snippet, ">>>你好<<<")
}

func TestContainsCJK(t *testing.T) {
	assert.True(t, containsCJK("找 meeting"))
	assert.False(t, containsCJK("meeting notes"))
	assert.False(t, containsCJK(""))
}

func TestMakeSnippet(t *testing.T) {
	text := "aaaaaaaaaaaaaaaaaaaa MATCH bbbbbbbbbbbbbbbbbbbb"
	snip := makeSnippet(text, "match", 5)
	assert.Contains(t, snip, ">>>MATCH<<<", "original casing kept")
	assert.Contains(t, snip, "...")
}

func TestMakeSnippetNoMatch(t *testing.T) {
	assert.Equal(t, "short text", makeSnippet("short text", "zzz", 30))
}
