package database

import "fmt"

// Schema setup is a handful of idempotent DDL statements, mirroring the rest
// of the catalog deployment. Child tables reference machines/oem_parts and
// drive the delete order in ClearCatalog.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS machines (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		manufacturer VARCHAR(100) NOT NULL,
		model_code VARCHAR(100) NOT NULL,
		model_family VARCHAR(100) NOT NULL DEFAULT '',
		serial_range_start VARCHAR(50) NOT NULL DEFAULT '',
		serial_range_end VARCHAR(50) NOT NULL DEFAULT '',
		year_from INT NULL,
		year_to INT NULL,
		engine_manufacturer VARCHAR(100) NOT NULL DEFAULT '',
		engine_model VARCHAR(100) NOT NULL DEFAULT '',
		data_source VARCHAR(255) NOT NULL DEFAULT '',
		source_url VARCHAR(500) NOT NULL DEFAULT '',
		notes VARCHAR(500) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_machines_identity (manufacturer, model_code, serial_range_start, serial_range_end)
	)`,
	`CREATE TABLE IF NOT EXISTS oem_parts (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		manufacturer VARCHAR(100) NOT NULL,
		oem_part_number VARCHAR(150) NOT NULL,
		description_en VARCHAR(1000) NOT NULL DEFAULT '',
		subsystem VARCHAR(100) NOT NULL DEFAULT '',
		component_type VARCHAR(100) NOT NULL DEFAULT '',
		data_source VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_oem_parts_identity (manufacturer, oem_part_number)
	)`,
	`CREATE TABLE IF NOT EXISTS oem_part_products (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		oem_part_id BIGINT NOT NULL,
		product_id VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_opp_part FOREIGN KEY (oem_part_id) REFERENCES oem_parts (id)
	)`,
	`CREATE TABLE IF NOT EXISTS machine_serial_part_map (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		machine_id BIGINT NOT NULL,
		oem_part_id BIGINT NOT NULL,
		serial_range VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_mspm_machine FOREIGN KEY (machine_id) REFERENCES machines (id),
		CONSTRAINT fk_mspm_part FOREIGN KEY (oem_part_id) REFERENCES oem_parts (id)
	)`,
	`CREATE TABLE IF NOT EXISTS import_stats (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		source VARCHAR(255) NOT NULL,
		entity_type VARCHAR(50) NOT NULL,
		count_imported INT NOT NULL DEFAULT 0,
		count_skipped INT NOT NULL DEFAULT 0,
		errors INT NOT NULL DEFAULT 0,
		import_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates the catalog tables if they do not exist yet.
func (s *Store) EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	s.log.Info("Database schema is in place")
	return nil
}
