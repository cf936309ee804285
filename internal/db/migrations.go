package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS days (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			date       DATE NOT NULL UNIQUE,
			punches    TEXT NOT NULL DEFAULT '',
			note       TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_days_date ON days(date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating days table: %w", err)
	}

	return nil
}
