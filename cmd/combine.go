package cmd

import (
	"github.com/ooxo-pl/machines-data/combiner"
	"github.com/spf13/cobra"
)

func combineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "combine",
		Short: "Merge raw CSV files into the canonical combined files",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := combiner.New(a.cfg.Paths.DownloadsDir, a.cfg.Paths.ProcessedDir, a.log)

			machines, err := c.CombineMachines()
			if err != nil {
				return err
			}
			parts, err := c.CombineParts()
			if err != nil {
				return err
			}

			a.log.Infof("Combine stage finished: %d machine rows, %d part rows", machines, parts)
			return nil
		},
	}
}
