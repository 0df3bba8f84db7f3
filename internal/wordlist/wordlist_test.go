package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStopWordsEmbeddedDefault(t *testing.T) {
	set, err := StopWords("")
	require.NoError(t, err)
	assert.NotEmpty(t, set)
	assert.True(t, set.Contains("the"))
	assert.True(t, set.Contains("and"))
	assert.False(t, set.Contains("zebra"))
}

func TestStopWordsFromFile(t *testing.T) {
	path := writeList(t, "Foo\n\n# a comment\nBAR\n")
	set, err := StopWords(path)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains("foo"), "entries are lowercased")
	assert.True(t, set.Contains("bar"))
	assert.False(t, set.Contains("# a comment"))
}

func TestStopWordsMissingFile(t *testing.T) {
	_, err := StopWords(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFlaggedTermsEmbeddedDefault(t *testing.T) {
	terms, err := FlaggedTerms("")
	require.NoError(t, err)
	assert.NotEmpty(t, terms)
}

func TestFlaggedTermsKeepFileOrder(t *testing.T) {
	path := writeList(t, "gamma\nalpha\nbeta\n")
	terms, err := FlaggedTerms(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, terms)
}
