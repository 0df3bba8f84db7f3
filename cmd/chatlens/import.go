package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Akash7367/chatlens/internal/config"
	"github.com/Akash7367/chatlens/internal/store"
)

func importCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "import [export.txt]",
		Short: "Parse chat exports and store them for report and search",
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

			if all {
				fmt.Fprintf(os.Stderr, "Scanning %s...\n", cfg.ExportRoot)
				stats, err := store.ImportAll(db, cfg.ExportRoot)
				if err != nil {
					return fmt.Errorf("import: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("give an export file or --all")
			}
			key, count, err := store.ImportFile(db, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Imported %s: %d messages\n", key, count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Import every .txt export under the configured export_root")

	return cmd
}
