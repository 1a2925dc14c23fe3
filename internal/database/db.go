// Package database owns the sqlite file behind riparto: the embedded schema
// migrations, the sample roster seed and the connection settings the
// repositories depend on.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the store at path and checks that it is usable.
// Allocation rows are removed with their run through ON DELETE CASCADE, which
// sqlite only honours with foreign keys enabled per connection. The pool is
// capped at one connection so roster replacements and run inserts never
// contend for the write lock.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// Now is the timestamp given to a new run, at the one-second precision the
// created_at columns keep.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
