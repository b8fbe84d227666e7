package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/ooxo-pl/machines-data/database"
	"github.com/ooxo-pl/machines-data/models"
	"github.com/sirupsen/logrus"
)

// Audit source tags, one per upstream.
const (
	SourceWikidata     = "wikidata"
	SourcePartsCatalog = "777parts"
	SourceVerified     = "verified_specs"
)

// ImportService loads canonical row sets and upserts them into the catalog.
// Every entity type it processes appends exactly one import_stats row, even
// when nothing was imported.
type ImportService struct {
	store     *database.Store
	batchSize int
	log       *logrus.Logger
}

func NewImportService(store *database.Store, batchSize int, log *logrus.Logger) *ImportService {
	return &ImportService{store: store, batchSize: batchSize, log: log}
}

// ImportMachinesCSV upserts the canonical machines CSV. A missing file is an
// empty import, not an error; the audit row is written either way.
func (s *ImportService) ImportMachinesCSV(path string) error {
	rows, badRows := s.readMachines(path)
	admissible, dropped := sanitizeMachines(rows)
	imported, failed := s.store.UpsertMachines(admissible, s.batchSize)

	s.log.Infof("Machines import: %d imported, %d skipped, %d errored", imported, dropped+badRows, failed)
	return s.store.LogImportStats(SourceWikidata, "machines", imported, dropped+badRows, failed)
}

// ImportPartsCSV inserts the canonical OEM parts CSV. Existing part keys are
// left untouched (first write wins).
func (s *ImportService) ImportPartsCSV(path string) error {
	rows, badRows := s.readParts(path)
	admissible, dropped := sanitizeParts(rows)
	imported, failed := s.store.InsertParts(admissible, s.batchSize)

	s.log.Infof("OEM parts import: %d imported, %d skipped, %d errored", imported, dropped+badRows, failed)
	return s.store.LogImportStats(SourcePartsCatalog, "oem_parts", imported, dropped+badRows, failed)
}

// SeedVerified replaces the whole catalog with the verified dataset: the
// destructive clear runs first so no synthetic row survives, then the
// verified machines are imported with their derived fields.
func (s *ImportService) SeedVerified(verified []models.VerifiedMachine) error {
	if err := s.store.ClearCatalog(); err != nil {
		return fmt.Errorf("failed to clear catalog before seeding: %w", err)
	}

	rows := make([]models.Machine, 0, len(verified))
	for _, v := range verified {
		rows = append(rows, models.Machine{
			Manufacturer:       v.Manufacturer,
			ModelCode:          v.Model,
			ModelFamily:        ModelFamily(v.Model),
			YearFrom:           v.YearFrom,
			YearTo:             v.YearTo,
			EngineManufacturer: EngineManufacturer(v.Engine),
			EngineModel:        v.Engine,
			DataSource:         SourceVerified,
			Notes:              fmt.Sprintf("Type: %s, Weight: %dkg", v.Type, v.WeightKg),
		})
	}

	admissible, dropped := sanitizeMachines(rows)
	imported, failed := s.store.UpsertMachines(admissible, s.batchSize)

	s.log.Infof("Verified machines import: %d imported, %d skipped, %d errored", imported, dropped, failed)
	return s.store.LogImportStats(SourceVerified, "machines", imported, dropped, failed)
}

// readMachines decodes the canonical machines CSV record by record. A record
// that does not decode (for example a year that is not a number) is logged
// and skipped without losing the rest of the file.
func (s *ImportService) readMachines(path string) (rows []models.Machine, badRows int) {
	f, err := os.Open(path)
	if err != nil {
		s.log.Warnf("Machines CSV not readable, treating as empty: %v", err)
		return nil, 0
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if err != nil {
		s.log.Warnf("Machines CSV has no usable header, treating as empty: %v", err)
		return nil, 0
	}
	for {
		var m models.Machine
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Warnf("Skipping malformed machine row: %v", err)
			badRows++
			continue
		}
		rows = append(rows, m)
	}
	return rows, badRows
}

func (s *ImportService) readParts(path string) (rows []models.OemPart, badRows int) {
	f, err := os.Open(path)
	if err != nil {
		s.log.Warnf("Parts CSV not readable, treating as empty: %v", err)
		return nil, 0
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if err != nil {
		s.log.Warnf("Parts CSV has no usable header, treating as empty: %v", err)
		return nil, 0
	}
	for {
		var p models.OemPart
		err := dec.Decode(&p)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Warnf("Skipping malformed part row: %v", err)
			badRows++
			continue
		}
		rows = append(rows, p)
	}
	return rows, badRows
}
