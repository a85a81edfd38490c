package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// sqlite pragmas applied on open. WAL keeps the calculator responsive
// while presets are edited; the busy timeout covers concurrent admin
// writes.
const pragmas = `
	PRAGMA journal_mode = WAL;
	PRAGMA foreign_keys = ON;
	PRAGMA busy_timeout = 5000;
`

// Open opens the SQLite database at path and validates connectivity.
func Open(path string) (*sql.DB, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := handle.Exec(pragmas); err != nil {
		handle.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := handle.Ping(); err != nil {
		handle.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return handle, nil
}
