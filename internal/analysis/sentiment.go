package analysis

import (
	"github.com/Akash7367/chatlens/internal/parse"
	"github.com/jonreiter/govader"
)

// Sentiment categories.
const (
	Positive = "Positive"
	Negative = "Negative"
	Neutral  = "Neutral"
)

// ScoredMessage is a record with its compound polarity score attached.
type ScoredMessage struct {
	parse.Message
	Score    float64
	Category string
}

// SentimentResult carries per-category counts plus the scored record set.
type SentimentResult struct {
	Counts   []LabelCount // ordered by count descending
	Messages []ScoredMessage
}

// Categorize maps a compound score in [-1, 1] to a category.
func Categorize(score float64) string {
	switch {
	case score >= 0.05:
		return Positive
	case score <= -0.05:
		return Negative
	default:
		return Neutral
	}
}

// Sentiment scores every message with the VADER lexicon analyzer.
func Sentiment(msgs []parse.Message) SentimentResult {
	analyzer := govader.NewSentimentIntensityAnalyzer()

	var res SentimentResult
	counts := make(map[string]int)
	var order []string
	for _, m := range msgs {
		score := analyzer.PolarityScores(m.Body).Compound
		category := Categorize(score)
		if counts[category] == 0 {
			order = append(order, category)
		}
		counts[category]++
		res.Messages = append(res.Messages, ScoredMessage{Message: m, Score: score, Category: category})
	}
	for _, c := range order {
		res.Counts = append(res.Counts, LabelCount{Label: c, Count: counts[c]})
	}
	sortByCountDesc(res.Counts)
	return res
}
