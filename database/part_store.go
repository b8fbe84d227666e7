package database

import (
	"fmt"
	"strings"

	"github.com/ooxo-pl/machines-data/models"
)

const partRowPlaceholders = "(?, ?, ?, ?, ?, ?, NOW(), NOW())"

// InsertParts writes OEM parts in fixed-size batches, one multi-row INSERT
// IGNORE per batch in its own transaction. A part key (manufacturer,
// oem_part_number) that already exists is left untouched: first write wins,
// unlike machines.
func (s *Store) InsertParts(parts []models.OemPart, batchSize int) (imported, failed int) {
	if batchSize <= 0 {
		batchSize = 100
	}

	for start := 0; start < len(parts); start += batchSize {
		end := start + batchSize
		if end > len(parts) {
			end = len(parts)
		}
		batch := parts[start:end]

		if err := s.insertPartBatch(batch); err != nil {
			s.log.WithField("batch_start", start).Errorf("Failed to import OEM part batch: %v", err)
			failed += len(batch)
			continue
		}
		imported += len(batch)
	}
	return imported, failed
}

func (s *Store) insertPartBatch(batch []models.OemPart) error {
	placeholders := make([]string, 0, len(batch))
	args := make([]interface{}, 0, len(batch)*6)
	for _, p := range batch {
		placeholders = append(placeholders, partRowPlaceholders)
		args = append(args,
			p.Manufacturer, p.OemPartNumber, p.DescriptionEN,
			p.Subsystem, p.ComponentType, p.DataSource,
		)
	}

	query := fmt.Sprintf(`
		INSERT IGNORE INTO oem_parts (
			manufacturer, oem_part_number, description_en,
			subsystem, component_type, data_source,
			created_at, updated_at
		) VALUES %s
	`, strings.Join(placeholders, ", "))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for part batch: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute part batch insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit part batch: %w", err)
	}
	return nil
}
