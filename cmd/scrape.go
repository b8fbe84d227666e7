package cmd

import (
	"github.com/ooxo-pl/machines-data/scraper"
	"github.com/spf13/cobra"
)

func scrapeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Scrape OEM part numbers from the parts catalog site",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scraper.NewPartsCatalogScraper(a.cfg.PartsCatalog, a.cfg.Paths.DownloadsDir, a.log)
			n := s.ScrapeAll()
			a.log.Infof("Scrape stage finished: %d parts scraped", n)
			return nil
		},
	}
}
