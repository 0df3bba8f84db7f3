package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash7367/chatlens/internal/parse"
	"github.com/Akash7367/chatlens/internal/wordlist"
)

func msg(t *testing.T, ts, author, body string) parse.Message {
	t.Helper()
	when, err := time.Parse("2006-01-02 15:04", ts)
	require.NoError(t, err)
	return parse.NewMessage(when, author, body)
}

func sampleChat(t *testing.T) []parse.Message {
	t.Helper()
	return []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "good morning everyone, lovely day"),
		msg(t, "2023-01-26 15:31", "Bob", "what an idiot move by the team 😂"),
		msg(t, "2023-01-26 23:05", "Alice", parse.MediaOmitted),
		msg(t, "2023-02-01 10:15", "Bob", "see https://example.com"),
	}
}

func reportOptions(t *testing.T) ReportOptions {
	t.Helper()
	stop, err := wordlist.StopWords("")
	require.NoError(t, err)
	flagged, err := wordlist.FlaggedTerms("")
	require.NoError(t, err)
	return ReportOptions{Stop: stop, Flagged: flagged, Width: 80}
}

func TestReportSections(t *testing.T) {
	out := Report(sampleChat(t), reportOptions(t))

	for _, section := range []string{
		"Top Statistics",
		"Monthly Timeline",
		"Daily Timeline",
		"Most Busy Day",
		"Most Busy Month",
		"Weekly Activity Heatmap",
		"Most Busy Users",
		"Most Common Words",
		"Emoji",
		"Sentiment",
		"Toxicity",
	} {
		assert.Contains(t, out, section)
	}

	assert.Contains(t, out, "January-2023")
	assert.Contains(t, out, "Thursday")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "😂")
	assert.Contains(t, out, "50.00%")
}

func TestReportEmpty(t *testing.T) {
	out := Report(nil, reportOptions(t))
	assert.Contains(t, out, "(no data)")
	assert.Contains(t, out, "No flagged messages.")
	assert.Contains(t, out, "Messages: 0")
}

func TestReportUserFilter(t *testing.T) {
	opts := reportOptions(t)
	opts.User = "Alice"
	out := Report(sampleChat(t), opts)

	assert.NotContains(t, out, "Most Busy Users", "ranking only renders on the unfiltered view")
	assert.Contains(t, out, "Alice")
}

func TestReportToxicityAudit(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "Bob", "you idiot"),
	}
	opts := reportOptions(t)
	out := Report(msgs, opts)
	assert.Contains(t, out, "1.5/10")
	assert.Contains(t, out, "[idiot]")
}
