package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// authorRe splits "Name: rest" on the first ": ", non-greedy so colons
// inside the message text (URLs, times) never extend the author field.
var authorRe = regexp.MustCompile(`(?s)^(.+?):\s`)

// Parse turns a raw transcript into the record set. Records whose timestamp
// cannot be parsed are dropped silently; the result is never nil-author and
// never re-sorted, the source order is kept as encountered.
func Parse(data string) []Message {
	return ParseWith(data, Detect(data))
}

// ParseWith parses using an already selected variant.
func ParseWith(data string, v FormatVariant) []Message {
	bodies := v.Delimiter.Split(data, -1)
	tokens := v.Delimiter.FindAllString(data, -1)
	if len(tokens) == 0 {
		return nil
	}
	// text before the first delimiter is preamble, never a message
	bodies = bodies[1:]
	n := len(tokens)
	if len(bodies) < n {
		n = len(bodies)
	}

	type entry struct {
		when time.Time
		ok   bool
	}
	entries := make([]entry, n)
	cleaned := make([]string, n)

	failed := 0
	for i := 0; i < n; i++ {
		cleaned[i] = CleanToken(tokens[i])
		when, ok := parseStrict(cleaned[i], v)
		entries[i] = entry{when, ok}
		if !ok {
			failed++
		}
	}

	// Real exports occasionally mix locale conventions or contain stray
	// malformed lines. If the strict pass lost more than 10% of the batch,
	// re-parse everything leniently using the variant's day-first hint to
	// resolve ambiguous numeric dates.
	if failed*10 > n {
		for i := 0; i < n; i++ {
			when, ok := parseLenient(cleaned[i], v.DayFirst)
			entries[i] = entry{when, ok}
		}
	}

	var msgs []Message
	for i := 0; i < n; i++ {
		if !entries[i].ok {
			continue
		}
		author, text := splitAuthor(bodies[i])
		msgs = append(msgs, NewMessage(entries[i].when, author, text))
	}
	return msgs
}

// CleanToken strips the delimiter artifacts from a raw timestamp token:
// surrounding brackets, the trailing " -" separator, and whitespace.
func CleanToken(token string) string {
	s := strings.TrimSpace(token)
	if strings.HasPrefix(s, "[") {
		s = strings.ReplaceAll(s, "[", "")
		s = strings.ReplaceAll(s, "]", "")
	}
	s = strings.ReplaceAll(s, " -", "")
	return strings.TrimSpace(s)
}

func parseStrict(s string, v FormatVariant) (time.Time, bool) {
	for _, layout := range v.Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// lenientRe pulls the numeric components out of nearly any date-time string
// the export family produces: / or - separators, optional seconds, optional
// AM/PM marker.
var lenientRe = regexp.MustCompile(`(\d{1,4})[/-](\d{1,2})[/-](\d{2,4})[,\s]+(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([apAP][mM])?`)

func parseLenient(s string, dayFirst bool) (time.Time, bool) {
	m := lenientRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	sec := 0
	if m[6] != "" {
		sec, _ = strconv.Atoi(m[6])
	}

	day, month := a, b
	// an out-of-range month disambiguates regardless of the hint
	if a <= 12 && (b > 12 || !dayFirst) {
		day, month = b, a
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}

	if m[7] != "" {
		pm := strings.EqualFold(m[7], "pm")
		if pm && hour < 12 {
			hour += 12
		} else if !pm && hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	// reject normalized overflow like Feb 30
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// splitAuthor separates the author prefix from the message text. Bodies
// without a "Name: " prefix are system notifications and keep the whole
// line as the message.
func splitAuthor(body string) (author, text string) {
	body = strings.TrimSpace(body)
	if m := authorRe.FindStringSubmatchIndex(body); m != nil {
		author = body[m[2]:m[3]]
		text = strings.TrimSpace(body[m[1]:])
		return author, text
	}
	return Notification, body
}
