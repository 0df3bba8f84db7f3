package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `26/01/23, 15:30 - Alice: Hello there
26/01/23, 15:31 - Bob: hi, check the agenda
26/01/23, 23:05 - Alice: late reply
`

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "chatlens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestChatKey(t *testing.T) {
	assert.Equal(t, "family group", ChatKey("/tmp/exports/family group.txt"))
	assert.Equal(t, "notes.md", ChatKey("/tmp/notes.md"))
}

func TestImportFileRoundTrip(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "holiday chat.txt", sampleExport)

	key, n, err := ImportFile(db, path)
	require.NoError(t, err)
	assert.Equal(t, "holiday chat", key)
	assert.Equal(t, 3, n)

	chat, err := db.GetChatByKey(key)
	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, path, chat.FilePath)
	assert.Equal(t, "24h", chat.Format)
	assert.Equal(t, 3, chat.MessageCount)
	assert.Equal(t, "2023-01-26T15:30:00Z", chat.FirstTS)
	assert.Equal(t, "2023-01-26T23:05:00Z", chat.LastTS)

	msgs, err := db.GetMessages(key)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "Alice", msgs[0].Author)
	assert.Equal(t, "Hello there", msgs[0].Body)
	assert.Equal(t, 15, msgs[0].Hour)
	assert.Equal(t, "Thursday", msgs[0].DayName)
	assert.Equal(t, "23-00", msgs[2].HourBucket)
}

func TestImportFileRejectsNonExport(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "readme.txt", "just notes\nnothing dated\n")

	_, _, err := ImportFile(db, path)
	assert.Error(t, err)
}

func TestImportFileReplacesPreviousData(t *testing.T) {
	db := openTestDB(t)
	dir := t.TempDir()
	path := writeExport(t, dir, "chat.txt", sampleExport)

	_, _, err := ImportFile(db, path)
	require.NoError(t, err)
	_, n, err := ImportFile(db, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	total, err := db.MessageCount()
	require.NoError(t, err)
	assert.Equal(t, 3, total, "re-import must not duplicate rows")
}

func TestImportAll(t *testing.T) {
	db := openTestDB(t)
	root := t.TempDir()
	path := writeExport(t, root, "chat.txt", sampleExport)
	writeExport(t, root, "notes.log", "not an export")

	stats, err := ImportAll(db, root)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scanned)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 0, stats.Skipped)

	// unchanged file is skipped on the next pass
	stats, err = ImportAll(db, root)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 1, stats.Skipped)

	// deleted file gets pruned
	require.NoError(t, os.Remove(path))
	stats, err = ImportAll(db, root)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pruned)

	n, err := db.ChatCount()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestGetMessage(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "chat.txt", sampleExport)
	key, _, err := ImportFile(db, path)
	require.NoError(t, err)

	row, err := db.GetMessage(key, 1)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Bob", row.Author)
	assert.Equal(t, "hi, check the agenda", row.Text)

	missing, err := db.GetMessage(key, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetMessagesWindow(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "chat.txt", sampleExport)
	key, _, err := ImportFile(db, path)
	require.NoError(t, err)

	rows, hitIdx, startPos, total, err := db.GetMessagesWindow(key, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, startPos)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, hitIdx)
	assert.Equal(t, 2, rows[hitIdx].MsgID)

	// no hit id loads the whole chat
	rows, hitIdx, startPos, total, err = db.GetMessagesWindow(key, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 0, startPos)
	assert.Equal(t, -1, hitIdx)
	assert.Len(t, rows, 3)
}
