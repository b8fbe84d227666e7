package cmd

import (
	"time"

	"github.com/ooxo-pl/machines-data/scraper"
	"github.com/spf13/cobra"
)

func sampleCommand(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate synthetic sample CSV data for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			g := scraper.NewSampleGenerator(a.cfg.Paths.DownloadsDir, a.log, seed)
			return g.Generate()
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output (0 means time-based)")
	return cmd
}
