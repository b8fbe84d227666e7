package cmd

import (
	"path/filepath"

	"github.com/ooxo-pl/machines-data/database"
	"github.com/ooxo-pl/machines-data/services"
	"github.com/spf13/cobra"
)

func importCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import the combined CSV files into the catalog database",
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
			if err := importer.ImportMachinesCSV(filepath.Join(a.cfg.Paths.ProcessedDir, "combined_machines.csv")); err != nil {
				return err
			}
			return importer.ImportPartsCSV(filepath.Join(a.cfg.Paths.ProcessedDir, "combined_oem_parts.csv"))
		},
	}
}
