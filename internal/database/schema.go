package database

import (
	"database/sql"
	"fmt"
)

// mysqlSchema creates the directory tables on MySQL.  InnoDB enforces the
// show foreign keys; deleting a venue or artist that still has shows fails.
// Show times keep microseconds so the upcoming/past split matches SQLite.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  BIGINT AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(500) NOT NULL DEFAULT '',
		city                VARCHAR(500) NOT NULL DEFAULT '',
		state               VARCHAR(500) NOT NULL DEFAULT '',
		address             VARCHAR(500) NOT NULL DEFAULT '',
		phone               VARCHAR(500) NOT NULL DEFAULT '',
		genres              VARCHAR(500) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		website             VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(200) NOT NULL DEFAULT '',
		seeking_talent      BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS artists (
		id                  BIGINT AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(500) NOT NULL DEFAULT '',
		city                VARCHAR(120) NOT NULL DEFAULT '',
		state               VARCHAR(120) NOT NULL DEFAULT '',
		phone               VARCHAR(120) NOT NULL DEFAULT '',
		genres              VARCHAR(120) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
		seeking_venue       BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description TEXT NOT NULL,
		website             VARCHAR(120) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS shows (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		start_time DATETIME(6) NOT NULL,
		artist_id  BIGINT NOT NULL,
		venue_id   BIGINT NOT NULL,
		INDEX idx_shows_start_time (start_time),
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id),
		CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT NOT NULL DEFAULT '',
		city                TEXT NOT NULL DEFAULT '',
		state               TEXT NOT NULL DEFAULT '',
		address             TEXT NOT NULL DEFAULT '',
		phone               TEXT NOT NULL DEFAULT '',
		genres              TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		website             TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		seeking_talent      BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT NOT NULL DEFAULT '',
		city                TEXT NOT NULL DEFAULT '',
		state               TEXT NOT NULL DEFAULT '',
		phone               TEXT NOT NULL DEFAULT '',
		genres              TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		seeking_venue       BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT '',
		website             TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		start_time DATETIME NOT NULL,
		artist_id  INTEGER NOT NULL REFERENCES artists (id),
		venue_id   INTEGER NOT NULL REFERENCES venues (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_start_time ON shows (start_time)`,
}

// Migrate creates the directory tables if they do not exist yet.  It is
// safe to run on every start.
func Migrate(db *sql.DB, driver string) error {
	stmts := sqliteSchema
	if driver == DriverMySQL {
		stmts = mysqlSchema
	}
	for i, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("database: migration step %d: %w", i+1, err)
		}
	}
	return nil
}
