package analysis

import (
	"math"

	"github.com/Akash7367/chatlens/internal/parse"
)

// UserShare is one row of the busiest-users ranking.
type UserShare struct {
	User    string
	Count   int
	Percent float64 // share of total messages, rounded to 2 decimals
}

// BusyUsers ranks authors by message count. It returns the top n rows and,
// separately, the full percentage table over every author. Only meaningful
// on the unfiltered view.
func BusyUsers(msgs []parse.Message, n int) (top []UserShare, all []UserShare) {
	if n <= 0 {
		n = 5
	}
	rows := countByDesc(msgs, func(m parse.Message) string { return m.Author })
	total := len(msgs)
	for _, r := range rows {
		percent := 0.0
		if total > 0 {
			percent = math.Round(float64(r.Count)/float64(total)*100*100) / 100
		}
		all = append(all, UserShare{User: r.Label, Count: r.Count, Percent: percent})
	}
	top = all
	if len(top) > n {
		top = top[:n]
	}
	return top, all
}
