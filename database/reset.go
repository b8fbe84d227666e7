package database

import "fmt"

// clearOrder lists the catalog tables children-first. Deleting in any other
// order trips the foreign keys from oem_part_products and
// machine_serial_part_map.
var clearOrder = []string{
	"oem_part_products",
	"machine_serial_part_map",
	"oem_parts",
	"machines",
	"import_stats",
}

// ClearCatalog deletes every catalog row in one transaction. Only the
// seed-verified path uses it, to guarantee no synthetic rows survive a
// re-seed from the verified dataset.
func (s *Store) ClearCatalog() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for catalog clear: %w", err)
	}
	defer tx.Rollback()

	for _, table := range clearOrder {
		res, err := tx.Exec("DELETE FROM " + table)
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			s.log.Infof("Cleared %d rows from %s", n, table)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog clear: %w", err)
	}
	return nil
}
