package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Akash7367/chatlens/internal/config"
	"github.com/Akash7367/chatlens/internal/render"
	"github.com/Akash7367/chatlens/internal/store"
)

func reportCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "report [chat]",
		Short: "Render the analytics report for a stored chat",
		Long:  `Renders the full analytics report for a previously imported chat. Without an argument, lists the stored chats.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			if len(args) == 0 {
				chats, err := db.ListChats()
				if err != nil {
					return fmt.Errorf("list chats: %w", err)
				}
				if len(chats) == 0 {
					fmt.Println("No chats imported yet. Run 'chatlens import <export.txt>' first.")
					return nil
				}
				for _, c := range chats {
					fmt.Printf("%-30s %6d messages  %s .. %s\n", c.ChatKey, c.MessageCount, c.FirstTS, c.LastTS)
				}
				return nil
			}

			chat, err := db.GetChatByKey(args[0])
			if err != nil {
				return fmt.Errorf("get chat: %w", err)
			}
			if chat == nil {
				return fmt.Errorf("chat not found: %s", args[0])
			}

			msgs, err := db.GetMessages(chat.ChatKey)
			if err != nil {
				return fmt.Errorf("load messages: %w", err)
			}

			stop, flagged, err := loadWordlists(cfg)
			if err != nil {
				return err
			}

			fmt.Print(render.Report(msgs, render.ReportOptions{
				Title:    chat.ChatKey,
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
