// Package analysis is a library of read-only reducers over a parsed record
// set. Every function is a pure computation over []parse.Message: no shared
// state, total over the empty set, safe to run concurrently.
package analysis

import (
	"sort"

	"github.com/Akash7367/chatlens/internal/parse"
)

// Overall is the synthetic author meaning "no filter".
const Overall = "Overall"

// FilterUser returns the view of msgs restricted to one author. Overall (or
// empty) returns the input unchanged; the result is never mutated by the
// reducers.
func FilterUser(msgs []parse.Message, user string) []parse.Message {
	if user == "" || user == Overall {
		return msgs
	}
	var out []parse.Message
	for _, m := range msgs {
		if m.Author == user {
			out = append(out, m)
		}
	}
	return out
}

// Users returns the sorted distinct authors with the notification sentinel
// removed and Overall prepended.
func Users(msgs []parse.Message) []string {
	seen := make(map[string]bool)
	var users []string
	for _, m := range msgs {
		if m.Author == parse.Notification || seen[m.Author] {
			continue
		}
		seen[m.Author] = true
		users = append(users, m.Author)
	}
	sort.Strings(users)
	return append([]string{Overall}, users...)
}
