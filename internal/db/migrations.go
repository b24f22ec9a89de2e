package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS courses (
			code       TEXT NOT NULL,
			section    TEXT NOT NULL,
			title      TEXT NOT NULL,
			instructor TEXT NOT NULL DEFAULT '',
			credits    INTEGER NOT NULL DEFAULT 0,
			category   TEXT CHECK(category IN ('major', 'general', 'elective')),
			schedule   TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (code, section)
		);

		CREATE TABLE IF NOT EXISTS selection (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			code     TEXT NOT NULL,
			section  TEXT NOT NULL,
			color    INTEGER NOT NULL,
			added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (code, section),
			FOREIGN KEY (code, section) REFERENCES courses(code, section)
		);

		CREATE TABLE IF NOT EXISTS timetables (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			name     TEXT NOT NULL UNIQUE,
			priority INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS timetable_courses (
			timetable_id INTEGER NOT NULL REFERENCES timetables(id) ON DELETE CASCADE,
			position     INTEGER NOT NULL,
			code         TEXT NOT NULL,
			section      TEXT NOT NULL,
			PRIMARY KEY (timetable_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_courses_title ON courses(title);
		CREATE INDEX IF NOT EXISTS idx_timetables_priority ON timetables(priority);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
