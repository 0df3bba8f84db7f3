package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Akash7367/chatlens/internal/config"
	"github.com/Akash7367/chatlens/internal/wordlist"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "chatlens",
		Short:   "chatlens - analytics over exported WhatsApp chat transcripts",
		Version: version,
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadWordlists loads the stop-word set and flagged-term list configured in
// cfg, falling back to the embedded defaults.
func loadWordlists(cfg *config.Config) (wordlist.Set, []string, error) {
	stop, err := wordlist.StopWords(cfg.StopWordsPath)
	if err != nil {
		return nil, nil, err
	}
	flagged, err := wordlist.FlaggedTerms(cfg.FlaggedTermsPath)
	if err != nil {
		return nil, nil, err
	}
	return stop, flagged, nil
}

// reportWidth returns the terminal width, or 80 when stdout is not a
// terminal.
func reportWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
