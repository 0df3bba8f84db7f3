package analysis

import (
	"strings"

	"github.com/Akash7367/chatlens/internal/parse"
	"mvdan.cc/xurls/v2"
)

// linkRe matches URL-shaped substrings including scheme-less ones, compiled
// once at startup.
var linkRe = xurls.Relaxed()

// Stats are the headline volume numbers for a (possibly filtered) view.
type Stats struct {
	Messages int
	Words    int
	Media    int
	Links    int
}

// ComputeStats counts messages, whitespace-delimited words, media
// placeholders and shared links.
func ComputeStats(msgs []parse.Message) Stats {
	var s Stats
	s.Messages = len(msgs)
	for _, m := range msgs {
		s.Words += len(strings.Fields(m.Body))
		if m.Body == parse.MediaOmitted {
			s.Media++
		}
		s.Links += len(linkRe.FindAllString(m.Body, -1))
	}
	return s
}
