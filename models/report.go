package models

import "time"

// ImportStat is one append-only audit row in import_stats. A pipeline run
// writes exactly one row per entity type it processed.
type ImportStat struct {
	ID            int64     `db:"id"`
	Source        string    `db:"source"`
	EntityType    string    `db:"entity_type"`
	CountImported int       `db:"count_imported"`
	CountSkipped  int       `db:"count_skipped"`
	Errors        int       `db:"errors"`
	ImportDate    time.Time `db:"import_date"`
}

// ManufacturerCount is one entry of a top-manufacturers ranking.
type ManufacturerCount struct {
	Manufacturer string `json:"manufacturer"`
	Count        int    `json:"count"`
}

// ImportHistoryEntry is one entry of the recent-imports section of the
// validation report.
type ImportHistoryEntry struct {
	Source     string `json:"source"`
	EntityType string `json:"entity_type"`
	Count      int    `json:"count"`
	Date       string `json:"date"`
}

// ValidationReport is the JSON document emitted by the validate stage.
type ValidationReport struct {
	Machines             int                  `json:"machines"`
	OemParts             int                  `json:"oem_parts"`
	Mappings             int                  `json:"mappings"`
	MachineManufacturers int                  `json:"machine_manufacturers"`
	PartsManufacturers   int                  `json:"parts_manufacturers"`
	TopMachineMfrs       []ManufacturerCount  `json:"top_machine_manufacturers"`
	TopPartsMfrs         []ManufacturerCount  `json:"top_parts_manufacturers"`
	RecentImports        []ImportHistoryEntry `json:"recent_imports"`
}
