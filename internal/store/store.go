// Package store implements the generic collection store: durable,
// synchronous, namespaced storage of JSON values keyed by a string slot
// name. A slot holds either a single scalar value (the session token,
// admin settings) or an ordered JSON array of records (a collection).
//
// The backing medium is an embedded SQLite database (modernc.org/sqlite —
// pure Go, no CGo) with a single key/value table. SQLite gives us a durable
// single file and atomic per-slot writes; everything above it is plain
// marshal-whole-value / unmarshal-whole-value, matching the store's
// contract: linear scans, insertion order, last-writer-wins, and no
// atomicity across slots. A crash between two related slot writes (say a
// user and its role profile) leaves them inconsistent — the design accepts
// that for a single local session.
//
// Error policy: writes return an apperror.ErrStorage-wrapped error and
// leave the prior value in place; reads degrade to the caller's default on
// absence or malformed content. Both paths log. Nothing here is fatal.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shoofli/shoofli/internal/apperror"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection pool behind the slot get/put API.
type Store struct {
	conn   *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the store at path and runs the schema
// migration. Use ":memory:" in tests.
func Open(path string, logger *slog.Logger) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}

	// The store's contract is single-threaded, synchronous access. One
	// connection enforces that at the pool level, and keeps ":memory:"
	// databases (which exist per connection) coherent in tests.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}

	// WAL keeps readers unblocked during a write. The store is effectively
	// single-threaded, but a second process tailing the file stays happy.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: setting WAL mode: %w", err)
	}

	s := &Store{conn: conn, logger: logger}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: running migrations: %w", err)
	}

	return s, nil
}

// Close closes the connection pool. Defer it next to Open.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating slots table: %w", err)
	}
	return nil
}

// getRaw returns the serialized value stored under key, with ok=false when
// the slot is absent.
func (s *Store) getRaw(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.conn.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: reading slot %s: %w", key, err)
	}
	return value, true, nil
}

// putRaw overwrites the value stored under key. The upsert is a single
// statement, so a failure leaves the prior value untouched.
func (s *Store) putRaw(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store: writing slot %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot entirely. Subsequent Gets return the default.
// Deleting an absent slot is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	if err != nil {
		s.logger.Error("store: deleting slot failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return apperror.Storage("delete "+key, err)
	}
	return nil
}

// Put serializes value and persists it under key, overwriting any prior
// value. On serialization or storage failure the prior persisted value is
// left unchanged and the error is logged and returned wrapped in
// apperror.ErrStorage.
//
// Put and Get are package-level generic functions rather than methods
// because Go methods cannot introduce type parameters.
func Put[T any](ctx context.Context, s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("store: serializing value failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return apperror.Storage("encode "+key, err)
	}

	if err := s.putRaw(ctx, key, data); err != nil {
		s.logger.Error("store: writing value failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return apperror.Storage("put "+key, err)
	}
	return nil
}

// Get deserializes and returns the value stored under key, or defaultValue
// when the slot is absent, unreadable, or malformed. Malformed content is
// treated as absent, not as fatal — the store must keep the application
// usable even over a corrupted slot.
func Get[T any](ctx context.Context, s *Store, key string, defaultValue T) T {
	raw, ok, err := s.getRaw(ctx, key)
	if err != nil {
		s.logger.Error("store: reading value failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return defaultValue
	}
	if !ok {
		return defaultValue
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("store: malformed value, using default",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return defaultValue
	}
	return value
}
