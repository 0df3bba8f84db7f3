package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash7367/chatlens/internal/parse"
)

func TestBusyUsers(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "a"),
		msg(t, "2023-01-26 15:31", "Alice", "b"),
		msg(t, "2023-01-26 15:32", "Bob", "c"),
	}

	top, all := BusyUsers(msgs, 5)
	require.Len(t, all, 2)
	assert.Equal(t, UserShare{User: "Alice", Count: 2, Percent: 66.67}, all[0])
	assert.Equal(t, UserShare{User: "Bob", Count: 1, Percent: 33.33}, all[1])
	assert.Equal(t, all, top, "fewer authors than n")
}

func TestBusyUsersTopN(t *testing.T) {
	var msgs []parse.Message
	authors := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, a := range authors {
		// message counts decrease down the list so the ranking is A..G
		for j := 0; j <= len(authors)-i; j++ {
			msgs = append(msgs, msg(t, "2023-01-26 15:30", a, "hi"))
		}
	}

	top, all := BusyUsers(msgs, 5)
	require.Len(t, top, 5)
	require.Len(t, all, 7)
	assert.Equal(t, "A", top[0].User)
	assert.Equal(t, "E", top[4].User)
}

func TestBusyUsersDefaultN(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "A", "1"),
		msg(t, "2023-01-26 15:30", "B", "2"),
		msg(t, "2023-01-26 15:30", "C", "3"),
		msg(t, "2023-01-26 15:30", "D", "4"),
		msg(t, "2023-01-26 15:30", "E", "5"),
		msg(t, "2023-01-26 15:30", "F", "6"),
	}
	top, _ := BusyUsers(msgs, 0)
	assert.Len(t, top, 5)
}

func TestBusyUsersEmpty(t *testing.T) {
	top, all := BusyUsers(nil, 5)
	assert.Empty(t, top)
	assert.Empty(t, all)
}
