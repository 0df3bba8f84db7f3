package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Akash7367/chatlens/internal/config"
	"github.com/Akash7367/chatlens/internal/scan"
	"github.com/Akash7367/chatlens/internal/store"
	"github.com/Akash7367/chatlens/internal/wordlist"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify export root, word lists, DB, FTS5, and show stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			// check export root
			fmt.Println("=== Export Root ===")
			checkDir("Exports", cfg.ExportRoot)

			fmt.Println("\n=== File Scan ===")
			files, err := scan.Exports(cfg.ExportRoot)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				fmt.Printf("  .txt exports found: %d\n", len(files))
			}

			// check word lists
			fmt.Println("\n=== Word Lists ===")
			if stop, err := wordlist.StopWords(cfg.StopWordsPath); err != nil {
				fmt.Printf("  Stop words: ERROR %v\n", err)
			} else {
				fmt.Printf("  Stop words:    %d entries\n", len(stop))
			}
			if flagged, err := wordlist.FlaggedTerms(cfg.FlaggedTermsPath); err != nil {
				fmt.Printf("  Flagged terms: ERROR %v\n", err)
			} else {
				fmt.Printf("  Flagged terms: %d entries\n", len(flagged))
			}

			// check DB
			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'chatlens import' first)")
				return nil
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			chatCount, err := db.ChatCount()
			if err != nil {
				return fmt.Errorf("count chats: %w", err)
			}

			msgCount, err := db.MessageCount()
			if err != nil {
				return fmt.Errorf("count messages: %w", err)
			}

			fmt.Printf("  Chats:    %d\n", chatCount)
			fmt.Printf("  Messages: %d\n", msgCount)

			// check FTS5
			fmt.Println("\n=== FTS5 ===")
			var ftsCount int
			err = db.Raw().QueryRow("SELECT COUNT(*) FROM messages_fts").Scan(&ftsCount)
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
			} else {
				fmt.Printf("  FTS5 entries: %d\n", ftsCount)
				if ftsCount == msgCount {
					fmt.Println("  Status: OK (synced)")
				} else {
					fmt.Printf("  Status: MISMATCH (messages=%d, fts=%d)\n", msgCount, ftsCount)
				}
			}

			// check DB file size
			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}

			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
