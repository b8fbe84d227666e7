// Package combiner turns the loosely-specified CSVs produced by the
// extractors into the canonical CSVs consumed by the importer: columns are
// renamed to the canonical schema, files are concatenated in directory
// listing order, and part rows are deduplicated.
package combiner

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Canonical column sets. Downstream stages rely on these names, not on
// whatever the extractors happened to emit.
var (
	machineColumns = []string{"manufacturer", "model_code", "model_family", "year_from", "year_to", "data_source", "machine"}
	partColumns    = []string{"oem_part_number", "description_en", "manufacturer", "data_source"}
)

// Column renames from raw extractor output to the canonical schema.
var (
	wikidataColumnMap = map[string]string{
		"machineLabel":      "model_code",
		"manufacturerLabel": "manufacturer",
		"yearFrom":          "year_from",
		"yearTo":            "year_to",
	}
	partsCatalogColumnMap = map[string]string{
		"part_number": "oem_part_number",
		"description": "description_en",
		"source":      "data_source",
	}
)

var yearPattern = regexp.MustCompile(`\d{4}`)

type Combiner struct {
	downloadsDir string
	processedDir string
	log          *logrus.Logger
}

func New(downloadsDir, processedDir string, log *logrus.Logger) *Combiner {
	return &Combiner{downloadsDir: downloadsDir, processedDir: processedDir, log: log}
}

// CombineMachines merges the wikidata downloads with the sample machines
// into combined_machines.csv. Unlike parts, both sources are concatenated
// whenever they are non-empty; the sample set is additional coverage here,
// not a fallback. No admissibility filtering happens at this stage.
func (c *Combiner) CombineMachines() (int, error) {
	wikidata := c.collect("wikidata_", wikidataColumnMap)
	for _, row := range wikidata {
		if row["data_source"] == "" {
			row["data_source"] = "wikidata"
		}
		// Knowledge-base year values arrive as full timestamps.
		row["year_from"] = normalizeYear(row["year_from"])
		row["year_to"] = normalizeYear(row["year_to"])
	}

	sample := c.collect("sample_machines", nil)
	rows := append(wikidata, sample...)

	if err := c.writeCombined("combined_machines.csv", machineColumns, rows); err != nil {
		return 0, err
	}
	c.log.Infof("Combined %d machine rows (%d wikidata, %d sample)", len(rows), len(wikidata), len(sample))
	return len(rows), nil
}

// CombineParts produces combined_oem_parts.csv from the parts catalog
// scrape. When the scrape yielded nothing the sample parts substitute for it
// entirely; the two sources are never merged.
func (c *Combiner) CombineParts() (int, error) {
	rows := c.collect("777parts_", partsCatalogColumnMap)
	if len(rows) == 0 {
		c.log.Warn("No scraped parts found, falling back to sample parts")
		rows = c.collect("sample_oem_parts", nil)
	}
	rows = dedupeParts(rows)

	if err := c.writeCombined("combined_oem_parts.csv", partColumns, rows); err != nil {
		return 0, err
	}
	c.log.Infof("Combined %d OEM part rows", len(rows))
	return len(rows), nil
}

// collect reads every <prefix>*.csv in the downloads directory, renaming
// columns per the mapping. A file that cannot be read or parsed is logged
// and skipped; it never aborts the run. No matching files is an empty
// result, not an error.
func (c *Combiner) collect(prefix string, mapping map[string]string) []map[string]string {
	entries, err := os.ReadDir(c.downloadsDir)
	if err != nil {
		c.log.Errorf("Failed to list downloads directory %s: %v", c.downloadsDir, err)
		return nil
	}

	var rows []map[string]string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".csv") {
			continue
		}
		fileRows, err := readCSVFile(filepath.Join(c.downloadsDir, name), mapping)
		if err != nil {
			c.log.Errorf("Skipping unreadable file %s: %v", name, err)
			continue
		}
		rows = append(rows, fileRows...)
	}
	return rows
}

func readCSVFile(path string, mapping map[string]string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		// Includes empty files; nothing to combine.
		return nil, nil
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		raw := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				raw[col] = record[i]
			}
		}
		rows = append(rows, renameColumns(raw, mapping))
	}
	return rows, nil
}

// renameColumns applies the mapping with mapped targets taking priority:
// when a raw column (for example the wikidata "manufacturer" URI) collides
// with a mapped target name, the mapped value wins.
func renameColumns(raw map[string]string, mapping map[string]string) map[string]string {
	if len(mapping) == 0 {
		return raw
	}
	out := make(map[string]string, len(raw))
	for src, dst := range mapping {
		if v, ok := raw[src]; ok {
			out[dst] = v
		}
	}
	for col, v := range raw {
		if _, isMapped := mapping[col]; isMapped {
			continue
		}
		if _, taken := out[col]; !taken {
			out[col] = v
		}
	}
	return out
}

// dedupeParts collapses rows sharing (oem_part_number, manufacturer) to the
// first occurrence.
func dedupeParts(rows []map[string]string) []map[string]string {
	seen := make(map[string]bool, len(rows))
	out := rows[:0]
	for _, row := range rows {
		key := row["oem_part_number"] + "\x00" + row["manufacturer"]
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

func (c *Combiner) writeCombined(filename string, columns []string, rows []map[string]string) error {
	if err := os.MkdirAll(c.processedDir, 0755); err != nil {
		return fmt.Errorf("failed to create processed directory: %w", err)
	}

	path := filepath.Join(c.processedDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// normalizeYear extracts the four-digit year from a raw value, which may be
// a plain year or a full timestamp. Anything else becomes empty (NULL at
// import time).
func normalizeYear(v string) string {
	return yearPattern.FindString(v)
}
