package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash7367/chatlens/internal/parse"
)

// msg builds a record for tests; ts is "2006-01-02 15:04".
func msg(t *testing.T, ts, author, body string) parse.Message {
	t.Helper()
	when, err := time.Parse("2006-01-02 15:04", ts)
	require.NoError(t, err)
	return parse.NewMessage(when, author, body)
}

func sampleChat(t *testing.T) []parse.Message {
	t.Helper()
	return []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "Hello there"),
		msg(t, "2023-01-26 15:31", "Bob", "hi check https://example.com"),
		msg(t, "2023-01-26 23:05", "Alice", parse.MediaOmitted),
		msg(t, "2023-02-01 09:00", parse.Notification, "Bob joined the group"),
		msg(t, "2023-02-01 10:15", "Bob", "good morning"),
		msg(t, "2023-02-02 00:10", "Alice", "late night hello"),
	}
}

func TestUsers(t *testing.T) {
	users := Users(sampleChat(t))
	assert.Equal(t, []string{Overall, "Alice", "Bob"}, users)
}

func TestUsersEmpty(t *testing.T) {
	assert.Equal(t, []string{Overall}, Users(nil))
}

func TestFilterUser(t *testing.T) {
	msgs := sampleChat(t)

	alice := FilterUser(msgs, "Alice")
	require.Len(t, alice, 3)
	for _, m := range alice {
		assert.Equal(t, "Alice", m.Author)
	}

	// Overall and empty mean no filter
	assert.Len(t, FilterUser(msgs, Overall), len(msgs))
	assert.Len(t, FilterUser(msgs, ""), len(msgs))
}

func TestPerUserCountsSumToTotal(t *testing.T) {
	msgs := sampleChat(t)
	total := 0
	for _, u := range Users(msgs)[1:] {
		total += len(FilterUser(msgs, u))
	}
	// notification records belong to no user
	notifications := len(FilterUser(msgs, parse.Notification))
	assert.Equal(t, len(msgs), total+notifications)
}

func TestFilteredStatsNeverExceedOverall(t *testing.T) {
	msgs := sampleChat(t)
	overall := ComputeStats(msgs)
	for _, u := range Users(msgs)[1:] {
		s := ComputeStats(FilterUser(msgs, u))
		assert.LessOrEqual(t, s.Messages, overall.Messages)
		assert.LessOrEqual(t, s.Words, overall.Words)
		assert.LessOrEqual(t, s.Media, overall.Media)
		assert.LessOrEqual(t, s.Links, overall.Links)
	}
}
