package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash7367/chatlens/internal/parse"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.06, Positive},
		{0.05, Positive},
		{0.04, Neutral},
		{0.0, Neutral},
		{-0.04, Neutral},
		{-0.05, Negative},
		{-0.10, Negative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.score), "score %v", tt.score)
	}
}

func TestSentiment(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "I love this, it is wonderful and great!"),
		msg(t, "2023-01-26 15:31", "Bob", "this is terrible, I hate it so much"),
		msg(t, "2023-01-26 15:32", "Alice", "the meeting is at noon"),
	}

	res := Sentiment(msgs)
	require.Len(t, res.Messages, 3)
	assert.Equal(t, Positive, res.Messages[0].Category)
	assert.Equal(t, Negative, res.Messages[1].Category)
	assert.Equal(t, Neutral, res.Messages[2].Category)
	assert.Greater(t, res.Messages[0].Score, 0.05)
	assert.Less(t, res.Messages[1].Score, -0.05)

	total := 0
	for _, c := range res.Counts {
		total += c.Count
	}
	assert.Equal(t, len(msgs), total)
}

func TestSentimentEmpty(t *testing.T) {
	res := Sentiment(nil)
	assert.Empty(t, res.Counts)
	assert.Empty(t, res.Messages)
}
