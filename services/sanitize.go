package services

import (
	"strings"

	"github.com/ooxo-pl/machines-data/models"
)

// Column width caps. Overlong values are cut silently; the database schema
// uses the same widths.
const (
	maxManufacturerLen = 100
	maxModelCodeLen    = 100
	maxPartNumberLen   = 150
	maxDescriptionLen  = 1000
	maxDataSourceLen   = 255
	maxURLNotesLen     = 500
)

const defaultDescription = "No description"
const unknownDataSource = "unknown"

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// sanitizeMachines trims, caps and admissibility-filters machine rows. Rows
// missing a manufacturer or model code after trimming are dropped (counted,
// not errored).
func sanitizeMachines(rows []models.Machine) (admissible []models.Machine, dropped int) {
	for _, m := range rows {
		m.Manufacturer = strings.TrimSpace(m.Manufacturer)
		m.ModelCode = strings.TrimSpace(m.ModelCode)
		if m.Manufacturer == "" || m.ModelCode == "" {
			dropped++
			continue
		}

		m.Manufacturer = truncate(m.Manufacturer, maxManufacturerLen)
		m.ModelCode = truncate(m.ModelCode, maxModelCodeLen)
		m.ModelFamily = truncate(m.ModelFamily, maxModelCodeLen)
		m.EngineManufacturer = truncate(m.EngineManufacturer, maxManufacturerLen)
		m.EngineModel = truncate(m.EngineModel, maxManufacturerLen)
		if m.DataSource == "" {
			m.DataSource = unknownDataSource
		}
		m.DataSource = truncate(m.DataSource, maxDataSourceLen)
		m.SourceURL = truncate(m.SourceURL, maxURLNotesLen)
		m.Notes = truncate(m.Notes, maxURLNotesLen)

		admissible = append(admissible, m)
	}
	return admissible, dropped
}

// sanitizeParts trims, caps and admissibility-filters OEM part rows. An
// empty description becomes a placeholder rather than an empty cell.
func sanitizeParts(rows []models.OemPart) (admissible []models.OemPart, dropped int) {
	for _, p := range rows {
		p.Manufacturer = strings.TrimSpace(p.Manufacturer)
		p.OemPartNumber = strings.TrimSpace(p.OemPartNumber)
		if p.Manufacturer == "" || p.OemPartNumber == "" {
			dropped++
			continue
		}

		p.Manufacturer = truncate(p.Manufacturer, maxManufacturerLen)
		p.OemPartNumber = truncate(p.OemPartNumber, maxPartNumberLen)
		p.DescriptionEN = strings.TrimSpace(p.DescriptionEN)
		if p.DescriptionEN == "" {
			p.DescriptionEN = defaultDescription
		}
		p.DescriptionEN = truncate(p.DescriptionEN, maxDescriptionLen)
		if p.Subsystem == "" {
			p.Subsystem = "general"
		}
		if p.ComponentType == "" {
			p.ComponentType = "part"
		}
		if p.DataSource == "" {
			p.DataSource = unknownDataSource
		}
		p.DataSource = truncate(p.DataSource, maxDataSourceLen)

		admissible = append(admissible, p)
	}
	return admissible, dropped
}
