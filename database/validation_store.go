package database

import (
	"fmt"

	"github.com/ooxo-pl/machines-data/models"
)

// Read-only aggregate queries backing the validate stage. Any failure is
// returned as-is; the validator treats them as fatal.

func (s *Store) CountMachines() (int, error) {
	return s.countQuery("SELECT COUNT(*) FROM machines")
}

func (s *Store) CountParts() (int, error) {
	return s.countQuery("SELECT COUNT(*) FROM oem_parts")
}

func (s *Store) CountSerialPartMappings() (int, error) {
	return s.countQuery("SELECT COUNT(*) FROM machine_serial_part_map")
}

func (s *Store) CountMachineManufacturers() (int, error) {
	return s.countQuery("SELECT COUNT(DISTINCT manufacturer) FROM machines")
}

func (s *Store) CountPartManufacturers() (int, error) {
	return s.countQuery("SELECT COUNT(DISTINCT manufacturer) FROM oem_parts")
}

func (s *Store) countQuery(query string) (int, error) {
	var count int
	if err := s.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to run count query: %w", err)
	}
	return count, nil
}

// TopMachineManufacturers ranks manufacturers by machine model count,
// descending. Ties keep natural database row order.
func (s *Store) TopMachineManufacturers(limit int) ([]models.ManufacturerCount, error) {
	return s.topManufacturers("machines", limit)
}

// TopPartManufacturers ranks manufacturers by OEM part count, descending.
func (s *Store) TopPartManufacturers(limit int) ([]models.ManufacturerCount, error) {
	return s.topManufacturers("oem_parts", limit)
}

func (s *Store) topManufacturers(table string, limit int) ([]models.ManufacturerCount, error) {
	query := fmt.Sprintf(`
		SELECT manufacturer, COUNT(*) AS count
		FROM %s
		GROUP BY manufacturer
		ORDER BY count DESC
		LIMIT ?
	`, table)

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top manufacturers from %s: %w", table, err)
	}
	defer rows.Close()

	var ranking []models.ManufacturerCount
	for rows.Next() {
		var mc models.ManufacturerCount
		if err := rows.Scan(&mc.Manufacturer, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan manufacturer count row: %w", err)
		}
		ranking = append(ranking, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating manufacturer count rows: %w", err)
	}
	return ranking, nil
}
