package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ooxo-pl/machines-data/config"
	"github.com/sirupsen/logrus"
)

// sparqlQueries are the machine classes pulled from the knowledge base.
// Query order is fixed so runs are comparable.
var sparqlQueries = []struct {
	Name  string
	Query string
}{
	{"excavators", `
		SELECT ?machine ?machineLabel ?manufacturer ?manufacturerLabel ?yearFrom ?yearTo
		WHERE {
			?machine wdt:P31 wd:Q107099.
			?machine wdt:P176 ?manufacturer.
			OPTIONAL { ?machine wdt:P571 ?yearFrom. }
			OPTIONAL { ?machine wdt:P576 ?yearTo. }
			SERVICE wikibase:label {
				bd:serviceParam wikibase:language "[AUTO_LANGUAGE],en".
			}
		}
		LIMIT 1000
	`},
	{"wheel_loaders", `
		SELECT ?machine ?machineLabel ?manufacturer ?manufacturerLabel
		WHERE {
			?machine wdt:P31 wd:Q1452524.
			?machine wdt:P176 ?manufacturer.
			SERVICE wikibase:label {
				bd:serviceParam wikibase:language "[AUTO_LANGUAGE],en".
			}
		}
		LIMIT 500
	`},
	{"dozers", `
		SELECT ?machine ?machineLabel ?manufacturer ?manufacturerLabel
		WHERE {
			?machine wdt:P31 wd:Q1230649.
			?machine wdt:P176 ?manufacturer.
			SERVICE wikibase:label {
				bd:serviceParam wikibase:language "[AUTO_LANGUAGE],en".
			}
		}
		LIMIT 500
	`},
	{"engines", `
		SELECT ?engine ?engineLabel ?manufacturer ?manufacturerLabel ?displacement
		WHERE {
			?engine wdt:P31 wd:Q615645.
			?engine wdt:P176 ?manufacturer.
			OPTIONAL { ?engine wdt:P1672 ?displacement. }
			SERVICE wikibase:label {
				bd:serviceParam wikibase:language "[AUTO_LANGUAGE],en".
			}
		}
		LIMIT 2000
	`},
}

// WikidataDownloader pulls machine data from the SPARQL endpoint as CSV
// files, one per query, into the downloads directory.
type WikidataDownloader struct {
	cfg    config.WikidataConfig
	outDir string
	log    *logrus.Logger
	client *http.Client
}

func NewWikidataDownloader(cfg config.WikidataConfig, outDir string, log *logrus.Logger) *WikidataDownloader {
	return &WikidataDownloader{
		cfg:    cfg,
		outDir: outDir,
		log:    log,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// DownloadAll runs every query. A failing query is logged and skipped so one
// unreachable class does not lose the rest; the returned count is the number
// of files written.
func (d *WikidataDownloader) DownloadAll() int {
	downloaded := 0
	for _, q := range sparqlQueries {
		path, err := d.downloadQuery(q.Name, q.Query)
		if err != nil {
			d.log.Errorf("Failed to download %s: %v", q.Name, err)
			continue
		}
		d.log.Infof("Downloaded %s to %s", q.Name, path)
		downloaded++
	}
	return downloaded
}

func (d *WikidataDownloader) downloadQuery(name, sparql string) (string, error) {
	params := url.Values{}
	params.Set("query", sparql)
	params.Set("format", "csv")

	req, err := http.NewRequest(http.MethodGet, d.cfg.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", name, err)
	}
	req.Header.Set("User-Agent", d.cfg.UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query endpoint for %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to query endpoint for %s: received status code %d", name, resp.StatusCode)
	}

	if err := os.MkdirAll(d.outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create downloads directory: %w", err)
	}

	outPath := filepath.Join(d.outDir, fmt.Sprintf("wikidata_%s.csv", name))
	outFile, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}
