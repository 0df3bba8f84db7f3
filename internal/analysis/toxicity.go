package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/Akash7367/chatlens/internal/parse"
)

// FlaggedMessage is one message retained for the toxicity audit view.
type FlaggedMessage struct {
	Date    time.Time
	Message string
	Words   []string // the terms that triggered, in list order
}

// UserToxicity is one author's toxicity rating.
type UserToxicity struct {
	User     string
	Score    float64 // 1..10
	Count    int     // total triggered terms across all messages
	Messages []FlaggedMessage
}

// Toxicity scans every author's messages against the flagged-term list. A
// message triggers once per flagged term found as a whole lowercase token.
// Score is 1 + 0.5 per trigger, capped at 10; authors with zero triggers
// are excluded. Result is sorted by score descending, ties keeping author
// encounter order.
func Toxicity(msgs []parse.Message, flagged []string) []UserToxicity {
	perUser := make(map[string]*UserToxicity)
	var order []string

	for _, m := range msgs {
		tokens := make(map[string]bool)
		for _, w := range strings.Fields(strings.ToLower(m.Body)) {
			tokens[w] = true
		}

		var triggered []string
		for _, term := range flagged {
			if tokens[term] {
				triggered = append(triggered, term)
			}
		}
		if len(triggered) == 0 {
			continue
		}

		ut, ok := perUser[m.Author]
		if !ok {
			ut = &UserToxicity{User: m.Author}
			perUser[m.Author] = ut
			order = append(order, m.Author)
		}
		ut.Count += len(triggered)
		ut.Messages = append(ut.Messages, FlaggedMessage{
			Date:    m.Timestamp,
			Message: m.Body,
			Words:   triggered,
		})
	}

	out := make([]UserToxicity, 0, len(order))
	for _, user := range order {
		ut := perUser[user]
		score := 1 + float64(ut.Count)*0.5
		if score > 10 {
			score = 10
		}
		ut.Score = score
		out = append(out, *ut)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
