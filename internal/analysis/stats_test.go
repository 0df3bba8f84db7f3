package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Akash7367/chatlens/internal/parse"
)

func TestComputeStats(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "one two three"),
		msg(t, "2023-01-26 15:31", "Bob", "see https://example.com and www.test.org"),
		msg(t, "2023-01-26 15:32", "Alice", parse.MediaOmitted),
	}

	s := ComputeStats(msgs)
	assert.Equal(t, 3, s.Messages)
	assert.Equal(t, 3+5+2, s.Words)
	assert.Equal(t, 1, s.Media)
	assert.Equal(t, 2, s.Links)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestMediaExactMatchOnly(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "the <Media omitted> text inline"),
	}
	assert.Equal(t, 0, ComputeStats(msgs).Media, "sentinel compares for equality, not substring")
}
