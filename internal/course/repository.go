package course

import "context"

// Selected is a catalog entry that the user has added to the working list,
// together with its assigned display color index.
type Selected struct {
	Entry Entry
	Color int
}

// Timetable is a saved, priority-ranked subset of the selection.
type Timetable struct {
	ID       int64
	Name     string
	Priority int
	Keys     []string // entry keys in saved order
}

// Repository defines the storage interface for the catalog, the working
// selection, and saved timetables.
type Repository interface {
	// ImportCourses replaces or inserts catalog entries in a batch.
	ImportCourses(ctx context.Context, entries []Entry) error

	// SearchCourses returns catalog entries matching the query over code,
	// title, and instructor. An empty query returns all entries up to limit.
	SearchCourses(ctx context.Context, query string, limit int) ([]Entry, error)

	// GetCourse retrieves one catalog entry, or ErrCourseNotFound.
	GetCourse(ctx context.Context, code, section string) (*Entry, error)

	// AddSelection adds a catalog entry to the working list and assigns it
	// the lowest free color index. Returns ErrAlreadySelected on duplicates.
	AddSelection(ctx context.Context, code, section string) (*Selected, error)

	// RemoveSelection removes an entry from the working list.
	RemoveSelection(ctx context.Context, code, section string) error

	// ListSelection returns the working list ordered by insertion.
	ListSelection(ctx context.Context) ([]Selected, error)

	// ClearSelection empties the working list.
	ClearSelection(ctx context.Context) error

	// SaveTimetable stores the given entry keys under a name and priority.
	SaveTimetable(ctx context.Context, name string, priority int, keys []string) (*Timetable, error)

	// ListTimetables returns saved timetables ordered by priority, then name.
	ListTimetables(ctx context.Context) ([]Timetable, error)

	// GetTimetable resolves a saved timetable and its entries by name.
	GetTimetable(ctx context.Context, name string) (*Timetable, []Entry, error)

	// DeleteTimetable removes a saved timetable by name.
	DeleteTimetable(ctx context.Context, name string) error

	// Close releases any resources held by the repository.
	Close() error
}
