// Package db provides the SQLite-backed session telemetry store. Only
// analytics bookkeeping lives here; user queries are never persisted.
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"xsearch/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createEventsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create events schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// InsertEvent stores a single telemetry event
func (db *DB) InsertEvent(r models.EventRecord) error {
	attrs := r.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	encoded, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("failed to encode event attrs: %w", err)
	}

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = db.conn.Exec(insertEvent,
		r.SessionID,
		r.Name,
		string(encoded),
		createdAt.Format("2006-01-02T15:04:05Z"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert event %s: %w", r.Name, err)
	}
	return nil
}

// EventCounts returns per-event-name counts for a session
func (db *DB) EventCounts(sessionID string) ([]models.EventCount, error) {
	rows, err := db.conn.Query(selectEventCounts, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event counts: %w", err)
	}
	defer rows.Close()

	var counts []models.EventCount
	for rows.Next() {
		var c models.EventCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// TotalEvents returns the number of events recorded for a session
func (db *DB) TotalEvents(sessionID string) (int, error) {
	var total int
	if err := db.conn.QueryRow(selectTotalEvents, sessionID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return total, nil
}
