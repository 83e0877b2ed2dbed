package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/haulage-game/haulage/pkg/console"
)

// CmdLog records executed console lines in a SQLite database. It
// implements console.History.
type CmdLog struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// OpenCmdLog opens the command log database, sets WAL mode and creates
// the schema.
func OpenCmdLog(path string) (*CmdLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	// WAL mode for concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	schema := `CREATE TABLE IF NOT EXISTS command_log (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		at      TIMESTAMP NOT NULL,
		session TEXT NOT NULL,
		line    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_command_log_at ON command_log(at);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &CmdLog{db: db, path: path}, nil
}

// Close closes the database connection.
func (c *CmdLog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the filesystem path of the SQLite database.
func (c *CmdLog) Path() string { return c.path }

// Record implements console.History.
func (c *CmdLog) Record(e console.HistoryEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.db.Exec("INSERT INTO command_log (at, session, line) VALUES (?, ?, ?)",
		e.When.UTC(), e.Session, e.Line)
	return err
}

// Recent implements console.History; entries come back oldest first.
func (c *CmdLog) Recent(n int) ([]console.HistoryEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows, err := c.db.Query(
		"SELECT at, session, line FROM (SELECT * FROM command_log ORDER BY id DESC LIMIT ?) ORDER BY id ASC", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []console.HistoryEntry
	for rows.Next() {
		var e console.HistoryEntry
		if err := rows.Scan(&e.When, &e.Session, &e.Line); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune deletes entries older than the retention window.
func (c *CmdLog) Prune(retention time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := time.Now().UTC().Add(-retention)
	_, err := c.db.Exec("DELETE FROM command_log WHERE at < ?", cutoff)
	return err
}

// StartRetentionCleanup prunes the log hourly until ctx is cancelled.
func (c *CmdLog) StartRetentionCleanup(ctx context.Context, retention time.Duration) {
	if retention <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.Prune(retention); err != nil {
					log.Printf("cmdlog: prune failed: %v", err)
				}
			}
		}
	}()
}
