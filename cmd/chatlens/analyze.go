package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Akash7367/chatlens/internal/config"
	"github.com/Akash7367/chatlens/internal/parse"
	"github.com/Akash7367/chatlens/internal/render"
)

func analyzeCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "analyze <export.txt>",
		Short: "Parse an exported chat and print the full analytics report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			if !parse.LooksLikeExport(string(data)) {
				return fmt.Errorf("%s does not look like a WhatsApp chat export", args[0])
			}

			stop, flagged, err := loadWordlists(cfg)
			if err != nil {
				return err
			}

			msgs := parse.Parse(string(data))
			title := strings.TrimSuffix(filepath.Base(args[0]), ".txt")
			fmt.Print(render.Report(msgs, render.ReportOptions{
				Title:    title,
				User:     user,
				Stop:     stop,
				Flagged:  flagged,
				TopWords: cfg.TopWords,
				TopUsers: cfg.TopUsers,
				Width:    reportWidth(),
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "Overall", "Restrict the report to one author")

	return cmd
}
