package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Akash7367/chatlens/internal/config"
	"github.com/Akash7367/chatlens/internal/open"
	"github.com/Akash7367/chatlens/internal/store"
)

func openCmd() *cobra.Command {
	var msgID int

	cmd := &cobra.Command{
		Use:   "open <chat>",
		Short: "Open a chat's source export file in $EDITOR",
		Args:  cobra.ExactArgs(1),
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

			return open.Export(db, args[0], msgID)
		},
	}

	cmd.Flags().IntVar(&msgID, "msg", -1, "Jump to this message id (as shown by search)")

	return cmd
}
