package cmd

import (
	"github.com/ooxo-pl/machines-data/scraper"
	"github.com/spf13/cobra"
)

func downloadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Download machine data from the Wikidata SPARQL endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := scraper.NewWikidataDownloader(a.cfg.Wikidata, a.cfg.Paths.DownloadsDir, a.log)
			n := d.DownloadAll()
			a.log.Infof("Download stage finished: %d query result files written", n)
			return nil
		},
	}
}
