package services

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ooxo-pl/machines-data/database"
	"github.com/ooxo-pl/machines-data/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return database.NewStore(db, log), mock
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportMachinesCSV(t *testing.T) {
	store, mock := newTestStore(t)
	svc := NewImportService(store, 100, logrus.New())

	path := writeCSV(t, "combined_machines.csv",
		"manufacturer,model_code,data_source,year_from,year_to\n"+
			"CATERPILLAR,320D2,wikidata,2012,2018\n"+
			",,wikidata,,\n"+
			"KOMATSU,PC200-8,wikidata,,\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO machines").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO import_stats").
		WithArgs("wikidata", "machines", 2, 1, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, svc.ImportMachinesCSV(path))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportMachinesCSV_MissingFileStillLogsStats(t *testing.T) {
	store, mock := newTestStore(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewImportService(store, 100, log)

	mock.ExpectExec("INSERT INTO import_stats").
		WithArgs("wikidata", "machines", 0, 0, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, svc.ImportMachinesCSV(filepath.Join(t.TempDir(), "missing.csv")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportMachinesCSV_SkipsMalformedRows(t *testing.T) {
	store, mock := newTestStore(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewImportService(store, 100, log)

	path := writeCSV(t, "combined_machines.csv",
		"manufacturer,model_code,data_source,year_from\n"+
			"CATERPILLAR,320D,wikidata,notayear\n"+
			"KOMATSU,PC200-8,wikidata,2010\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO machines").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO import_stats").
		WithArgs("wikidata", "machines", 1, 1, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, svc.ImportMachinesCSV(path))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportMachinesCSV_FailedBatchDoesNotStopRemaining(t *testing.T) {
	store, mock := newTestStore(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewImportService(store, 1, log)

	path := writeCSV(t, "combined_machines.csv",
		"manufacturer,model_code,data_source\n"+
			"CATERPILLAR,320D2,wikidata\n"+
			"KOMATSU,PC200-8,wikidata\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO machines").WillReturnError(os.ErrDeadlineExceeded)
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO machines").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO import_stats").
		WithArgs("wikidata", "machines", 1, 0, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, svc.ImportMachinesCSV(path))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportPartsCSV(t *testing.T) {
	store, mock := newTestStore(t)
	svc := NewImportService(store, 100, logrus.New())

	path := writeCSV(t, "combined_oem_parts.csv",
		"manufacturer,oem_part_number,description_en,data_source\n"+
			"CATERPILLAR,1R-0750,Fuel filter,777parts\n"+
			"KOMATSU,600-211-1340,Oil filter,777parts\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT IGNORE INTO oem_parts").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO import_stats").
		WithArgs("777parts", "oem_parts", 2, 0, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, svc.ImportPartsCSV(path))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedVerified(t *testing.T) {
	store, mock := newTestStore(t)
	svc := NewImportService(store, 100, logrus.New())

	yearFrom, yearTo := 2012, 2018
	verified := []models.VerifiedMachine{{
		Manufacturer: "CATERPILLAR",
		Model:        "320D2",
		Type:         "Crawler Excavator",
		YearFrom:     &yearFrom,
		YearTo:       &yearTo,
		WeightKg:     20100,
		Engine:       "Cat C7.1 ACERT",
	}}

	mock.ExpectBegin()
	for _, table := range []string{"oem_part_products", "machine_serial_part_map", "oem_parts", "machines", "import_stats"} {
		mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO machines").
		WithArgs(
			"CATERPILLAR", "320D2", "32", "", "",
			int64(2012), int64(2018),
			"Cat", "Cat C7.1 ACERT",
			"verified_specs", "", "Type: Crawler Excavator, Weight: 20100kg",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectExec("INSERT INTO import_stats").
		WithArgs("verified_specs", "machines", 1, 0, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, svc.SeedVerified(verified))
	require.NoError(t, mock.ExpectationsWereMet())
}
