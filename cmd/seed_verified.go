package cmd

import (
	"github.com/ooxo-pl/machines-data/database"
	"github.com/ooxo-pl/machines-data/refdata"
	"github.com/ooxo-pl/machines-data/services"
	"github.com/spf13/cobra"
)

func seedVerifiedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-verified",
		Short: "Replace the catalog with the hand-verified machine dataset",
		Long: `Clears all catalog tables and imports the hand-verified machine
specifications shipped with the binary. This removes every previously
imported row, including scraped and synthetic data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(a.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			store := database.NewStore(db, a.log)
			if err := store.EnsureSchema(); err != nil {
				return err
			}

			importer := services.NewImportService(store, a.cfg.Import.BatchSize, a.log)
			return importer.SeedVerified(refdata.AllMachines())
		},
	}
}
