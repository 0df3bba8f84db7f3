package parse

import (
	"regexp"
	"strings"
)

// detectWindow bounds how much of the transcript format detection inspects.
// An early match is a far stronger signal of the export's convention than
// date-like substrings buried in message bodies.
const detectWindow = 4000

// FormatVariant is one recognized timestamp convention. Delimiter is the
// record separator pattern; Layouts are the strict time.Parse layouts tried
// in order (2-digit and 4-digit years, and both AM/PM cases where relevant).
type FormatVariant struct {
	Name      string
	Delimiter *regexp.Regexp
	Layouts   []string
	DayFirst  bool
}

// variants in priority order. The bracketed form is unmistakable and the
// 12h delimiter requires an AM/PM marker before " - ", so the three
// patterns stay mutually exclusive even though 12h and 24h share the
// separator.
var variants = []FormatVariant{
	{
		// [26/01/23, 15:30:00] sometimes followed by a space
		Name:      "bracketed",
		Delimiter: regexp.MustCompile(`\[\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}:\d{2}\]\s?`),
		Layouts:   []string{"2/1/06, 15:04:05", "2/1/2006, 15:04:05"},
		DayFirst:  true,
	},
	{
		// 12/31/23, 11:59 PM -
		Name:      "12h",
		Delimiter: regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}\s[apAP][mM]\s-\s`),
		Layouts:   []string{"1/2/06, 3:04 PM", "1/2/2006, 3:04 PM", "1/2/06, 3:04 pm", "1/2/2006, 3:04 pm"},
		DayFirst:  false,
	},
	{
		// 26/01/23, 15:30 -
		Name:      "24h",
		Delimiter: regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}\s-\s`),
		Layouts:   []string{"2/1/06, 15:04", "2/1/2006, 15:04"},
		DayFirst:  true,
	},
}

// Detect picks the first variant whose delimiter matches within the leading
// window, falling back to the 24h variant so the pipeline stays total on
// malformed input.
func Detect(data string) FormatVariant {
	window := data
	if len(window) > detectWindow {
		window = window[:detectWindow]
	}
	for _, v := range variants {
		if v.Delimiter.MatchString(window) {
			return v
		}
	}
	return variants[2]
}

// VariantByName returns the variant stored under name, falling back to the
// 24h variant for unknown names.
func VariantByName(name string) FormatVariant {
	for _, v := range variants {
		if v.Name == name {
			return v
		}
	}
	return variants[2]
}

// exportLine matches the loose shape of a WhatsApp timestamp at the start of
// a line, with either / or - date separators. Used only for upfront
// validation of uploaded files, not for parsing.
var exportLine = regexp.MustCompile(`^\[?\d{1,2}[/-]\d{1,2}[/-]\d{2,4},? \d{1,2}:\d{2}`)

// LooksLikeExport reports whether any of the first few lines starts with a
// WhatsApp-style timestamp.
func LooksLikeExport(data string) bool {
	lines := strings.SplitN(data, "\n", 6)
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if exportLine.MatchString(line) {
			return true
		}
	}
	return false
}
