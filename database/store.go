package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
)

// Store bundles all catalog database access. One instance is built per
// process and passed to the pipeline stages that need it.
type Store struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewStore(db *sql.DB, log *logrus.Logger) *Store {
	return &Store{db: db, log: log}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
