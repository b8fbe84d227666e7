package database

import (
	"fmt"
	"strings"

	"github.com/ooxo-pl/machines-data/models"
)

const machineInsertColumns = `manufacturer, model_code, model_family,
		serial_range_start, serial_range_end, year_from, year_to,
		engine_manufacturer, engine_model, data_source, source_url, notes,
		created_at, updated_at`

const machineRowPlaceholders = "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())"

// UpsertMachines writes machines in fixed-size batches, one multi-row
// statement per batch, each batch in its own transaction. A re-imported
// identity key (manufacturer, model_code, serial range) refreshes the year
// range, engine fields and notes instead of duplicating the row.
//
// A failed batch is rolled back and logged; batches committed before it stay
// committed and the remaining batches are still attempted. The returned
// counts are rows in committed batches and rows in failed batches.
func (s *Store) UpsertMachines(machines []models.Machine, batchSize int) (imported, failed int) {
	if batchSize <= 0 {
		batchSize = 100
	}

	for start := 0; start < len(machines); start += batchSize {
		end := start + batchSize
		if end > len(machines) {
			end = len(machines)
		}
		batch := machines[start:end]

		if err := s.upsertMachineBatch(batch); err != nil {
			s.log.WithField("batch_start", start).Errorf("Failed to import machine batch: %v", err)
			failed += len(batch)
			continue
		}
		imported += len(batch)
	}
	return imported, failed
}

func (s *Store) upsertMachineBatch(batch []models.Machine) error {
	placeholders := make([]string, 0, len(batch))
	args := make([]interface{}, 0, len(batch)*12)
	for _, m := range batch {
		placeholders = append(placeholders, machineRowPlaceholders)
		args = append(args,
			m.Manufacturer, m.ModelCode, m.ModelFamily,
			m.SerialRangeStart, m.SerialRangeEnd,
			nullInt(m.YearFrom), nullInt(m.YearTo),
			m.EngineManufacturer, m.EngineModel,
			m.DataSource, m.SourceURL, m.Notes,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO machines (%s)
		VALUES %s
		ON DUPLICATE KEY UPDATE
			year_from = VALUES(year_from),
			year_to = VALUES(year_to),
			engine_manufacturer = VALUES(engine_manufacturer),
			engine_model = VALUES(engine_model),
			notes = VALUES(notes),
			updated_at = NOW()
	`, machineInsertColumns, strings.Join(placeholders, ", "))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for machine batch: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute machine batch insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit machine batch: %w", err)
	}
	return nil
}
