// Package wordlist loads the static stop-word and flagged-term resources.
// Both ship as embedded defaults and may be overridden by a file from
// config; they are loaded once at startup and passed explicitly into the
// reducers that need them.
package wordlist

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed stop_words.txt
var defaultStopWords string

//go:embed flagged_terms.txt
var defaultFlaggedTerms string

// Set is a read-only membership set of lowercased words.
type Set map[string]struct{}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// StopWords returns the stop-word set, from path if given, otherwise the
// embedded default.
func StopWords(path string) (Set, error) {
	words, err := loadLines(path, defaultStopWords)
	if err != nil {
		return nil, fmt.Errorf("stop words: %w", err)
	}
	set := make(Set, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

// FlaggedTerms returns the toxicity term list in file order. Order matters:
// the audit output reports triggered terms in list order.
func FlaggedTerms(path string) ([]string, error) {
	terms, err := loadLines(path, defaultFlaggedTerms)
	if err != nil {
		return nil, fmt.Errorf("flagged terms: %w", err)
	}
	return terms, nil
}

// loadLines reads one lowercased entry per line, skipping blanks and
// # comments.
func loadLines(path, fallback string) ([]string, error) {
	data := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = string(b)
	}

	var words []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}
