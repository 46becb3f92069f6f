package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Driver returns the configured database type ("sqlite" or "postgres").
// This is a local single-user app, so sqlite is the default.
func Driver() string {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}
	return dbType
}

// Connect establishes a connection to the database and initializes the schema
func Connect() error {
	var db *sqlx.DB
	var err error

	if Driver() == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	} else {
		dbPath := os.Getenv("DATABASE_PATH")
		if dbPath == "" {
			dataDir := "data"
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %v", err)
			}
			dbPath = filepath.Join(dataDir, "nexus.db")
		}

		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		// Enable foreign keys
		if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// Create decks table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			subject TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create decks table: %v", err)
	}

	// Create cards table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			deck_id TEXT NOT NULL,
			front TEXT NOT NULL,
			back TEXT DEFAULT '',
			card_type TEXT NOT NULL DEFAULT 'basic',
			status TEXT NOT NULL DEFAULT 'new',
			interval REAL NOT NULL DEFAULT 0,
			ease_factor REAL NOT NULL DEFAULT 2.5,
			reps INTEGER NOT NULL DEFAULT 0,
			lapses INTEGER NOT NULL DEFAULT 0,
			due_date TIMESTAMP NOT NULL,
			step_index INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_reviewed TIMESTAMP,
			FOREIGN KEY (deck_id) REFERENCES decks(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create cards table: %v", err)
	}

	// Create settings table (single row)
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY,
			learning_steps TEXT NOT NULL,
			graduating_interval REAL NOT NULL,
			easy_bonus REAL NOT NULL,
			leech_threshold INTEGER NOT NULL,
			reaction_time_target INTEGER NOT NULL,
			max_new_per_day INTEGER NOT NULL,
			max_reviews_per_day INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create settings table: %v", err)
	}

	// Create user_stats table (single row)
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS user_stats (
			id INTEGER PRIMARY KEY,
			xp INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			streak INTEGER NOT NULL DEFAULT 0,
			last_study_date TIMESTAMP,
			cards_learned INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_stats table: %v", err)
	}

	// Create daily_progress table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS daily_progress (
			date TEXT PRIMARY KEY,
			new_studied INTEGER NOT NULL DEFAULT 0,
			review_studied INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create daily_progress table: %v", err)
	}

	return nil
}
