package cmd

import (
	"github.com/ooxo-pl/machines-data/database"
	"github.com/ooxo-pl/machines-data/services"
	"github.com/spf13/cobra"
)

func validateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Write a JSON validation report of the catalog contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(a.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			store := database.NewStore(db, a.log)
			validator := services.NewValidateService(store, a.log)
			_, err = validator.WriteReport(a.cfg.Paths.ReportFile)
			return err
		},
	}
}
