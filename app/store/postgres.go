package store

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const stateKey = "scholarflow_db_v6"

// PostgresBackend keeps the whole state blob in one row of a key-value
// table. The database is a durable string store here, not a relational
// schema; there is still exactly one key and one atomic write per save.
type PostgresBackend struct {
	db *sqlx.DB
}

func NewPostgresBackend(uri string) (*PostgresBackend, error) {
	db, err := sqlx.Connect("postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create app_state table: %w", err)
	}
	return &PostgresBackend{db: db}, nil
}

func (b *PostgresBackend) Load() ([]byte, bool, error) {
	var value string
	err := b.db.Get(&value, `SELECT value FROM app_state WHERE key = $1`, stateKey)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (b *PostgresBackend) Save(data []byte) error {
	_, err := b.db.Exec(`INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, stateKey, string(data))
	return err
}

func (b *PostgresBackend) Close() error {
	return b.db.Close()
}
