package analysis

import (
	"strings"

	"github.com/Akash7367/chatlens/internal/parse"
)

// SearchMessages is the case-insensitive substring filter over message
// bodies. No ranking; source order is preserved. An empty query matches
// nothing.
func SearchMessages(msgs []parse.Message, query string) []parse.Message {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []parse.Message
	for _, m := range msgs {
		if strings.Contains(strings.ToLower(m.Body), q) {
			out = append(out, m)
		}
	}
	return out
}
