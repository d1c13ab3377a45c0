package cases

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init initializes the case database and ensures all necessary tables are created.
func Init(dbPath string) (*sqlx.DB, error) {
	// _txlock=immediate takes the write lock up front so two concurrent
	// case insertions queue on the busy timeout instead of deadlocking
	// on a deferred-to-write upgrade.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate", dbPath)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	casesSchema := `CREATE TABLE IF NOT EXISTS cases (
	          case_id TEXT NOT NULL PRIMARY KEY,
	          guild_id TEXT NOT NULL,
	          case_number INTEGER NOT NULL,
	          case_type TEXT NOT NULL,
	          target_id TEXT NOT NULL,
	          moderator_id TEXT NOT NULL,
	          reason TEXT NOT NULL,
	          status TEXT NOT NULL DEFAULT 'not_applicable',
	          created_at INTEGER NOT NULL,
	          UNIQUE(guild_id, case_number)
	      );`
	if _, err = db.Exec(casesSchema); err != nil {
		return nil, fmt.Errorf("failed to create cases table: %w", err)
	}

	// Per-guild counter backing the case number sequence. Incremented in
	// the same transaction as the insert, so numbers stay dense: a
	// rolled-back insert rolls the counter back with it.
	countersSchema := `CREATE TABLE IF NOT EXISTS case_counters (
	          guild_id TEXT NOT NULL PRIMARY KEY,
	          last_number INTEGER NOT NULL
	      );`
	if _, err = db.Exec(countersSchema); err != nil {
		return nil, fmt.Errorf("failed to create case_counters table: %w", err)
	}

	return db, nil
}
