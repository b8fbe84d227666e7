package models

import "time"

// Machine is one row of the machines catalog table. The csv tags match the
// canonical combined_machines.csv produced by the combiner.
type Machine struct {
	ID int64 `csv:"-" db:"id"`

	Manufacturer     string `csv:"manufacturer" db:"manufacturer"`
	ModelCode        string `csv:"model_code" db:"model_code"`
	ModelFamily      string `csv:"model_family,omitempty" db:"model_family"`
	SerialRangeStart string `csv:"-" db:"serial_range_start"`
	SerialRangeEnd   string `csv:"-" db:"serial_range_end"`
	YearFrom         *int   `csv:"year_from,omitempty" db:"year_from"`
	YearTo           *int   `csv:"year_to,omitempty" db:"year_to"`

	EngineManufacturer string `csv:"-" db:"engine_manufacturer"`
	EngineModel        string `csv:"-" db:"engine_model"`

	DataSource string `csv:"data_source" db:"data_source"`
	// SourceURL carries the wikidata entity URL when the row came from the
	// SPARQL download ("machine" column in the canonical CSV).
	SourceURL string `csv:"machine,omitempty" db:"source_url"`
	Notes     string `csv:"-" db:"notes"`

	CreatedAt time.Time `csv:"-" db:"created_at"`
	UpdatedAt time.Time `csv:"-" db:"updated_at"`
}

// VerifiedMachine is one entry of the hand-curated verified specifications
// dataset in the refdata package. The importer derives model_family and
// engine_manufacturer from it at import time.
type VerifiedMachine struct {
	Manufacturer string
	Model        string
	Type         string
	YearFrom     *int
	YearTo       *int
	WeightKg     int
	Engine       string
}
