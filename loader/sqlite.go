// Package loader collects example Loader implementations: host collaborators
// that materialize engine.Value instances from external state. None of this
// is part of the execution engine itself — the engine ships only
// engine.DefaultLoader, which rejects every load.
package loader

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"bookmark/engine"
)

// SQLite is a Loader backed by a `variables(key TEXT PRIMARY KEY, value TEXT)`
// table: Load looks up the row keyed by the request (which must be a
// String) and unmarshals its stored JSON text as an engine.Value.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the sqlite database at path and ensures the
// backing table exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "loader: open sqlite database")
	}
	const ddl = `CREATE TABLE IF NOT EXISTS variables (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "loader: create variables table")
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Put stores v's JSON encoding under key, overwriting any existing row.
// This is test/seed plumbing for SQLite, not part of the Loader contract.
func (s *SQLite) Put(key string, v engine.Value) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "loader: marshal value for %q", key)
	}
	_, err = s.db.Exec(`INSERT INTO variables(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
	return errors.Wrapf(err, "loader: store value for %q", key)
}

// Load implements engine.Loader. The request value must be a String naming
// the row's key; any other kind fails UnloadableValue, as does a missing
// key or malformed stored JSON.
func (s *SQLite) Load(request engine.Value) (engine.Value, error) {
	if request.Kind() != engine.TypeString {
		return engine.Value{}, unloadable(request)
	}
	var raw string
	err := s.db.QueryRow(`SELECT value FROM variables WHERE key = ?`, request.StringValue()).Scan(&raw)
	if err != nil {
		return engine.Value{}, unloadable(request)
	}
	var v engine.Value
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return engine.Value{}, unloadable(request)
	}
	return v, nil
}

func unloadable(v engine.Value) error {
	return &engine.Error{Kind: engine.ErrUnloadableValue, Value: v}
}
