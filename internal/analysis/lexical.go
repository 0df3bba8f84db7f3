package analysis

import (
	"sort"
	"strings"

	"github.com/Akash7367/chatlens/internal/parse"
	"github.com/Akash7367/chatlens/internal/wordlist"
	"github.com/forPelevin/gomoji"
)

// WordCount is one token and its frequency.
type WordCount struct {
	Word  string
	Count int
}

// WordFrequencies builds the case-folded token frequency table over all
// chat messages, skipping notifications, media placeholders and stop
// words. Rows come back ordered by count descending, ties in first-seen
// order. This feeds both the word cloud and the common-words table.
func WordFrequencies(msgs []parse.Message, stop wordlist.Set) []WordCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range msgs {
		if m.Author == parse.Notification || m.Body == parse.MediaOmitted {
			continue
		}
		for _, w := range strings.Fields(strings.ToLower(m.Body)) {
			if stop.Contains(w) {
				continue
			}
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}
	out := make([]WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// CommonWords returns the top n rows of the frequency table.
func CommonWords(msgs []parse.Message, stop wordlist.Set, n int) []WordCount {
	if n <= 0 {
		n = 20
	}
	words := WordFrequencies(msgs, stop)
	if len(words) > n {
		words = words[:n]
	}
	return words
}

// EmojiCounts counts every emoji occurrence across all message bodies,
// ordered by count descending.
func EmojiCounts(msgs []parse.Message) []WordCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range msgs {
		for _, e := range gomoji.FindAll(m.Body) {
			ch := e.Character
			n := strings.Count(m.Body, ch)
			if n == 0 {
				continue
			}
			if counts[ch] == 0 {
				order = append(order, ch)
			}
			counts[ch] += n
		}
	}
	out := make([]WordCount, 0, len(order))
	for _, ch := range order {
		out = append(out, WordCount{Word: ch, Count: counts[ch]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
