package database

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ooxo-pl/machines-data/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewStore(db, log), mock
}

func TestUpsertMachines_RefreshClause(t *testing.T) {
	store, mock := newMockStore(t)

	year := 2015
	machines := []models.Machine{{
		Manufacturer: "HITACHI",
		ModelCode:    "ZX350LC-6",
		YearFrom:     &year,
		DataSource:   "wikidata",
	}}

	mock.ExpectBegin()
	mock.ExpectExec(`ON DUPLICATE KEY UPDATE\s+year_from = VALUES\(year_from\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	imported, failed := store.UpsertMachines(machines, 100)
	assert.Equal(t, 1, imported)
	assert.Zero(t, failed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMachines_BatchSplitting(t *testing.T) {
	store, mock := newMockStore(t)

	machines := make([]models.Machine, 5)
	for i := range machines {
		machines[i] = models.Machine{Manufacturer: "VOLVO", ModelCode: "EC220E"}
	}

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO machines").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()
	}

	imported, failed := store.UpsertMachines(machines, 2)
	assert.Equal(t, 5, imported)
	assert.Zero(t, failed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMachines_FailedBatchIsCounted(t *testing.T) {
	store, mock := newMockStore(t)

	machines := []models.Machine{
		{Manufacturer: "DOOSAN", ModelCode: "DX225LC"},
		{Manufacturer: "DOOSAN", ModelCode: "DX300LC"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO machines").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO machines").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	imported, failed := store.UpsertMachines(machines, 1)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, failed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertParts_FirstWriteWins(t *testing.T) {
	store, mock := newMockStore(t)

	parts := []models.OemPart{{
		Manufacturer:  "CATERPILLAR",
		OemPartNumber: "1R-0750",
		DescriptionEN: "Fuel filter",
		Subsystem:     "general",
		ComponentType: "part",
		DataSource:    "777parts",
	}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT IGNORE INTO oem_parts").
		WithArgs("CATERPILLAR", "1R-0750", "Fuel filter", "general", "part", "777parts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	imported, failed := store.InsertParts(parts, 100)
	assert.Equal(t, 1, imported)
	assert.Zero(t, failed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearCatalog_ChildTablesFirst(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM oem_part_products").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM machine_serial_part_map").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM oem_parts").WillReturnResult(sqlmock.NewResult(0, 240))
	mock.ExpectExec("DELETE FROM machines").WillReturnResult(sqlmock.NewResult(0, 130))
	mock.ExpectExec("DELETE FROM import_stats").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	require.NoError(t, store.ClearCatalog())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearCatalog_FailureRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM oem_part_products").WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	require.Error(t, store.ClearCatalog())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogImportStats(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO import_stats").
		WithArgs("wikidata", "machines", 120, 4, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.LogImportStats("wikidata", "machines", 120, 4, 0))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentImports(t *testing.T) {
	store, mock := newMockStore(t)

	when := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM import_stats").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"source", "entity_type", "count_imported", "import_date"}).
			AddRow("777parts", "oem_parts", 240, when).
			AddRow("wikidata", "machines", 130, when.Add(-time.Hour)))

	stats, err := store.RecentImports(10)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "777parts", stats[0].Source)
	assert.Equal(t, 240, stats[0].CountImported)
	assert.Equal(t, when, stats[0].ImportDate)
}

func TestTopMachineManufacturers(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("GROUP BY manufacturer").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"manufacturer", "count"}).
			AddRow("CATERPILLAR", 40).
			AddRow("KOMATSU", 30))

	ranking, err := store.TopMachineManufacturers(10)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, models.ManufacturerCount{Manufacturer: "CATERPILLAR", Count: 40}, ranking[0])
}

func TestCountQueriesPropagateErrors(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection reset"))

	_, err := store.CountMachines()
	require.Error(t, err)
}
