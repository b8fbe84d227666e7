package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ooxo-pl/machines-data/config"
	"github.com/ooxo-pl/machines-data/models"
	"github.com/sirupsen/logrus"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// PartsCatalogScraper pulls OEM part tables from the parts catalog site, one
// search page per manufacturer, and writes one raw CSV per manufacturer into
// the downloads directory.
type PartsCatalogScraper struct {
	cfg    config.PartsCatalogConfig
	outDir string
	log    *logrus.Logger
	client *http.Client
}

func NewPartsCatalogScraper(cfg config.PartsCatalogConfig, outDir string, log *logrus.Logger) *PartsCatalogScraper {
	return &PartsCatalogScraper{
		cfg:    cfg,
		outDir: outDir,
		log:    log,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// ScrapeAll walks the configured manufacturers with a fixed delay between
// requests. A failing manufacturer is logged and skipped. Returns the total
// number of parts scraped.
func (s *PartsCatalogScraper) ScrapeAll() int {
	total := 0
	for i, mfg := range s.cfg.Manufacturers {
		if i > 0 {
			time.Sleep(s.cfg.Delay)
		}
		parts, err := s.scrapeManufacturer(mfg)
		if err != nil {
			s.log.Errorf("Failed to scrape %s: %v", mfg, err)
			continue
		}
		if len(parts) == 0 {
			s.log.Warnf("No part tables found for %s", mfg)
			continue
		}

		outPath := filepath.Join(s.outDir, fmt.Sprintf("777parts_%s.csv", mfg))
		if err := writeCSV(outPath, parts); err != nil {
			s.log.Errorf("Failed to save parts for %s: %v", mfg, err)
			continue
		}
		s.log.Infof("Scraped %d parts for %s", len(parts), mfg)
		total += len(parts)
	}
	return total
}

func (s *PartsCatalogScraper) scrapeManufacturer(mfg string) ([]models.ScrapedPart, error) {
	pageURL := fmt.Sprintf("%s/%s/search.html", s.cfg.BaseURL, mfg)

	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get %s: received status code %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	source := s.sourceHost()
	var parts []models.ScrapedPart
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
			if rowIdx == 0 {
				// Header row.
				return
			}
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}
			part := models.ScrapedPart{
				PartNumber:   strings.TrimSpace(cells.Eq(0).Text()),
				Description:  strings.TrimSpace(cells.Eq(1).Text()),
				Manufacturer: strings.ToUpper(mfg),
				Source:       source,
				SourceURL:    pageURL,
			}
			if cells.Length() > 2 {
				part.Model = strings.TrimSpace(cells.Eq(2).Text())
			}
			parts = append(parts, part)
		})
	})
	return parts, nil
}

func (s *PartsCatalogScraper) sourceHost() string {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil || u.Host == "" {
		return s.cfg.BaseURL
	}
	return u.Host
}
