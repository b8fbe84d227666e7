package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ooxo-pl/machines-data/database"
	"github.com/ooxo-pl/machines-data/models"
	"github.com/sirupsen/logrus"
)

const (
	topManufacturersLimit = 10
	recentImportsLimit    = 10
)

// ValidateService builds the post-import validation report. Report building
// is all or nothing: if any catalog query fails, no report file is written.
type ValidateService struct {
	store *database.Store
	log   *logrus.Logger
}

func NewValidateService(store *database.Store, log *logrus.Logger) *ValidateService {
	return &ValidateService{store: store, log: log}
}

// BuildReport queries the catalog aggregates and assembles the report
// document without touching the filesystem.
func (s *ValidateService) BuildReport() (*models.ValidationReport, error) {
	report := &models.ValidationReport{}
	var err error

	if report.Machines, err = s.store.CountMachines(); err != nil {
		return nil, err
	}
	if report.OemParts, err = s.store.CountParts(); err != nil {
		return nil, err
	}
	if report.Mappings, err = s.store.CountSerialPartMappings(); err != nil {
		return nil, err
	}
	if report.MachineManufacturers, err = s.store.CountMachineManufacturers(); err != nil {
		return nil, err
	}
	if report.PartsManufacturers, err = s.store.CountPartManufacturers(); err != nil {
		return nil, err
	}

	if report.TopMachineMfrs, err = s.store.TopMachineManufacturers(topManufacturersLimit); err != nil {
		return nil, err
	}
	if report.TopPartsMfrs, err = s.store.TopPartManufacturers(topManufacturersLimit); err != nil {
		return nil, err
	}

	recent, err := s.store.RecentImports(recentImportsLimit)
	if err != nil {
		return nil, err
	}
	for _, st := range recent {
		report.RecentImports = append(report.RecentImports, models.ImportHistoryEntry{
			Source:     st.Source,
			EntityType: st.EntityType,
			Count:      st.CountImported,
			Date:       st.ImportDate.Format("2006-01-02 15:04:05"),
		})
	}

	// Empty sections serialize as [] rather than null.
	if report.TopMachineMfrs == nil {
		report.TopMachineMfrs = []models.ManufacturerCount{}
	}
	if report.TopPartsMfrs == nil {
		report.TopPartsMfrs = []models.ManufacturerCount{}
	}
	if report.RecentImports == nil {
		report.RecentImports = []models.ImportHistoryEntry{}
	}
	return report, nil
}

// WriteReport builds the report and writes it as indented JSON to path.
func (s *ValidateService) WriteReport(path string) (*models.ValidationReport, error) {
	report, err := s.BuildReport()
	if err != nil {
		return nil, fmt.Errorf("failed to build validation report: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode validation report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write validation report: %w", err)
	}

	s.log.Infof("Validation report written to %s: %d machines, %d parts, %d mappings",
		path, report.Machines, report.OemParts, report.Mappings)
	return report, nil
}
