package models

import "time"

// OemPart is one row of the oem_parts table. The csv tags match the canonical
// combined_oem_parts.csv produced by the combiner.
type OemPart struct {
	ID int64 `csv:"-" db:"id"`

	Manufacturer  string `csv:"manufacturer" db:"manufacturer"`
	OemPartNumber string `csv:"oem_part_number" db:"oem_part_number"`
	DescriptionEN string `csv:"description_en" db:"description_en"`
	Subsystem     string `csv:"-" db:"subsystem"`
	ComponentType string `csv:"-" db:"component_type"`
	DataSource    string `csv:"data_source" db:"data_source"`

	CreatedAt time.Time `csv:"-" db:"created_at"`
	UpdatedAt time.Time `csv:"-" db:"updated_at"`
}

// ScrapedPart is the raw row shape written by the parts catalog scraper.
// Column names match the raw 777parts_<manufacturer>.csv files; the combiner
// renames them to the canonical schema.
type ScrapedPart struct {
	PartNumber   string `csv:"part_number"`
	Description  string `csv:"description"`
	Model        string `csv:"model"`
	Manufacturer string `csv:"manufacturer"`
	Source       string `csv:"source"`
	SourceURL    string `csv:"source_url"`
}

// SamplePart is the raw row shape written by the sample data generator.
type SamplePart struct {
	OemPartNumber string `csv:"oem_part_number"`
	DescriptionEN string `csv:"description_en"`
	DescriptionPL string `csv:"description_pl"`
	Manufacturer  string `csv:"manufacturer"`
	Model         string `csv:"model"`
	PartType      string `csv:"part_type"`
	DataSource    string `csv:"data_source"`
}
