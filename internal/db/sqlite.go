// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/haneul/sugang/internal/course"
)

// SQLite implements course.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ImportCourses inserts or replaces catalog entries in a single transaction.
func (s *SQLite) ImportCourses(ctx context.Context, entries []course.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO courses (code, section, title, instructor, credits, category, schedule)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (code, section) DO UPDATE SET
			title = excluded.title,
			instructor = excluded.instructor,
			credits = excluded.credits,
			category = excluded.category,
			schedule = excluded.schedule
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx,
			e.Code,
			e.Section,
			e.Title,
			e.Instructor,
			e.Credits,
			string(e.Category),
			e.Schedule,
		)
		if err != nil {
			return fmt.Errorf("inserting course %s: %w", e.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// SearchCourses returns catalog entries matching the query over code, title,
// and instructor. An empty query returns all entries up to limit.
func (s *SQLite) SearchCourses(ctx context.Context, query string, limit int) ([]course.Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	sqlQuery := `
		SELECT code, section, title, instructor, credits, category, schedule
		FROM courses
		WHERE code LIKE ? OR title LIKE ? OR instructor LIKE ?
		ORDER BY code, section
		LIMIT ?
	`
	pattern := "%" + strings.TrimSpace(query) + "%"

	rows, err := s.db.QueryContext(ctx, sqlQuery, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []course.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	return entries, nil
}

// GetCourse retrieves one catalog entry, or ErrCourseNotFound.
func (s *SQLite) GetCourse(ctx context.Context, code, section string) (*course.Entry, error) {
	query := `
		SELECT code, section, title, instructor, credits, category, schedule
		FROM courses
		WHERE code = ? AND section = ?
	`

	var (
		e        course.Entry
		category string
	)
	err := s.db.QueryRowContext(ctx, query, code, section).Scan(
		&e.Code,
		&e.Section,
		&e.Title,
		&e.Instructor,
		&e.Credits,
		&category,
		&e.Schedule,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s-%s: %w", code, section, course.ErrCourseNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying course: %w", err)
	}

	e.Category = course.Category(category)
	return &e, nil
}

// AddSelection adds a catalog entry to the working list and assigns it the
// lowest free color index. Returns ErrAlreadySelected on duplicates.
func (s *SQLite) AddSelection(ctx context.Context, code, section string) (*course.Selected, error) {
	entry, err := s.GetCourse(ctx, code, section)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM selection WHERE code = ? AND section = ?`,
		code, section,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking selection: %w", err)
	}
	if exists > 0 {
		return nil, fmt.Errorf("%s-%s: %w", code, section, course.ErrAlreadySelected)
	}

	color, err := lowestFreeColor(ctx, tx)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO selection (code, section, color) VALUES (?, ?, ?)`,
		code, section, color,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting selection: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &course.Selected{Entry: *entry, Color: color}, nil
}

// lowestFreeColor returns the smallest color index not used by the current
// selection, so removed colors get recycled.
func lowestFreeColor(ctx context.Context, tx *sql.Tx) (int, error) {
	rows, err := tx.QueryContext(ctx, `SELECT color FROM selection ORDER BY color`)
	if err != nil {
		return 0, fmt.Errorf("querying colors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	used := make(map[int]bool)
	for rows.Next() {
		var c int
		if err := rows.Scan(&c); err != nil {
			return 0, fmt.Errorf("scanning color: %w", err)
		}
		used[c] = true
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating colors: %w", err)
	}

	color := 0
	for used[color] {
		color++
	}
	return color, nil
}

// RemoveSelection removes an entry from the working list.
func (s *SQLite) RemoveSelection(ctx context.Context, code, section string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM selection WHERE code = ? AND section = ?`,
		code, section,
	)
	if err != nil {
		return fmt.Errorf("removing selection: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s-%s: %w", code, section, course.ErrNotSelected)
	}

	return nil
}

// ListSelection returns the working list ordered by insertion.
func (s *SQLite) ListSelection(ctx context.Context) ([]course.Selected, error) {
	query := `
		SELECT c.code, c.section, c.title, c.instructor, c.credits, c.category, c.schedule, s.color
		FROM selection s
		JOIN courses c ON c.code = s.code AND c.section = s.section
		ORDER BY s.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying selection: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var selected []course.Selected
	for rows.Next() {
		var (
			e        course.Entry
			category string
			color    int
		)
		err := rows.Scan(
			&e.Code,
			&e.Section,
			&e.Title,
			&e.Instructor,
			&e.Credits,
			&category,
			&e.Schedule,
			&color,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		e.Category = course.Category(category)
		selected = append(selected, course.Selected{Entry: e, Color: color})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selection: %w", err)
	}

	return selected, nil
}

// ClearSelection empties the working list.
func (s *SQLite) ClearSelection(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM selection`); err != nil {
		return fmt.Errorf("clearing selection: %w", err)
	}
	return nil
}

// SaveTimetable stores the given entry keys under a name and priority.
// Returns ErrTimetableExists if the name is taken.
func (s *SQLite) SaveTimetable(ctx context.Context, name string, priority int, keys []string) (*course.Timetable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("timetable name cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM timetables WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking timetable name: %w", err)
	}
	if exists > 0 {
		return nil, fmt.Errorf("%q: %w", name, course.ErrTimetableExists)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO timetables (name, priority) VALUES (?, ?)`,
		name, priority,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting timetable: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting timetable id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO timetable_courses (timetable_id, position, code, section) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, key := range keys {
		code, section, err := course.SplitKey(key)
		if err != nil {
			return nil, fmt.Errorf("timetable entry %q: %w", key, err)
		}
		if _, err := stmt.ExecContext(ctx, id, i, code, section); err != nil {
			return nil, fmt.Errorf("inserting timetable entry %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &course.Timetable{ID: id, Name: name, Priority: priority, Keys: keys}, nil
}

// ListTimetables returns saved timetables ordered by priority, then name.
func (s *SQLite) ListTimetables(ctx context.Context) ([]course.Timetable, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, priority FROM timetables ORDER BY priority, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying timetables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var timetables []course.Timetable
	for rows.Next() {
		var t course.Timetable
		if err := rows.Scan(&t.ID, &t.Name, &t.Priority); err != nil {
			return nil, fmt.Errorf("scanning timetable: %w", err)
		}
		timetables = append(timetables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timetables: %w", err)
	}

	for i := range timetables {
		keys, err := s.timetableKeys(ctx, timetables[i].ID)
		if err != nil {
			return nil, err
		}
		timetables[i].Keys = keys
	}

	return timetables, nil
}

// GetTimetable resolves a saved timetable and its entries by name.
func (s *SQLite) GetTimetable(ctx context.Context, name string) (*course.Timetable, []course.Entry, error) {
	var t course.Timetable
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, priority FROM timetables WHERE name = ?`, name,
	).Scan(&t.ID, &t.Name, &t.Priority)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("%q: %w", name, course.ErrNoSuchTimetable)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("querying timetable: %w", err)
	}

	keys, err := s.timetableKeys(ctx, t.ID)
	if err != nil {
		return nil, nil, err
	}
	t.Keys = keys

	var entries []course.Entry
	for _, key := range keys {
		code, section, err := course.SplitKey(key)
		if err != nil {
			return nil, nil, fmt.Errorf("timetable entry %q: %w", key, err)
		}
		e, err := s.GetCourse(ctx, code, section)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, *e)
	}

	return &t, entries, nil
}

// DeleteTimetable removes a saved timetable by name.
func (s *SQLite) DeleteTimetable(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM timetables WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%q: %w", name, course.ErrNoSuchTimetable)
	}
	if err != nil {
		return fmt.Errorf("querying timetable: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM timetable_courses WHERE timetable_id = ?`, id); err != nil {
		return fmt.Errorf("deleting timetable entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM timetables WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting timetable: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// timetableKeys returns the saved entry keys of one timetable in saved order.
func (s *SQLite) timetableKeys(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, code, section FROM timetable_courses WHERE timetable_id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying timetable entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type entryRow struct {
		position int
		key      string
	}
	var entryRows []entryRow
	for rows.Next() {
		var (
			r             entryRow
			code, section string
		)
		if err := rows.Scan(&r.position, &code, &section); err != nil {
			return nil, fmt.Errorf("scanning timetable entry: %w", err)
		}
		r.key = code + "-" + section
		entryRows = append(entryRows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timetable entries: %w", err)
	}

	sort.Slice(entryRows, func(i, j int) bool { return entryRows[i].position < entryRows[j].position })

	var keys []string
	for _, r := range entryRows {
		keys = append(keys, r.key)
	}
	return keys, nil
}

// scanEntry scans one courses row into an Entry.
func scanEntry(rows *sql.Rows) (course.Entry, error) {
	var (
		e        course.Entry
		category string
	)
	err := rows.Scan(
		&e.Code,
		&e.Section,
		&e.Title,
		&e.Instructor,
		&e.Credits,
		&category,
		&e.Schedule,
	)
	if err != nil {
		return course.Entry{}, fmt.Errorf("scanning course: %w", err)
	}
	e.Category = course.Category(category)
	return e, nil
}
