package database

import (
	"fmt"

	"github.com/ooxo-pl/machines-data/models"
)

// LogImportStats appends one audit row for a pipeline run. Rows are never
// updated or deleted afterwards.
func (s *Store) LogImportStats(source, entityType string, imported, skipped, errs int) error {
	_, err := s.db.Exec(`
		INSERT INTO import_stats (source, entity_type, count_imported, count_skipped, errors)
		VALUES (?, ?, ?, ?, ?)
	`, source, entityType, imported, skipped, errs)
	if err != nil {
		return fmt.Errorf("failed to log import stats for %s/%s: %w", source, entityType, err)
	}
	return nil
}

// RecentImports returns the most recent audit rows, newest first.
func (s *Store) RecentImports(limit int) ([]models.ImportStat, error) {
	rows, err := s.db.Query(`
		SELECT source, entity_type, count_imported, import_date
		FROM import_stats
		ORDER BY import_date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent imports: %w", err)
	}
	defer rows.Close()

	var stats []models.ImportStat
	for rows.Next() {
		var st models.ImportStat
		if err := rows.Scan(&st.Source, &st.EntityType, &st.CountImported, &st.ImportDate); err != nil {
			return nil, fmt.Errorf("failed to scan import stats row: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import stats rows: %w", err)
	}
	return stats, nil
}
