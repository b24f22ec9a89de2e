package course

import "strings"

// Filter narrows a list of catalog entries. Zero values mean "no constraint".
type Filter struct {
	Keyword  string   // matched against code, title, and instructor
	Category Category // exact match when set
	Credits  int      // exact match when > 0
}

// Matches reports whether the entry satisfies every set constraint.
func (f Filter) Matches(e Entry) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Credits > 0 && e.Credits != f.Credits {
		return false
	}
	if f.Keyword == "" {
		return true
	}
	kw := strings.ToLower(f.Keyword)
	return strings.Contains(strings.ToLower(e.Code), kw) ||
		strings.Contains(strings.ToLower(e.Title), kw) ||
		strings.Contains(strings.ToLower(e.Instructor), kw)
}

// Apply returns the entries matching the filter, preserving input order.
func (f Filter) Apply(entries []Entry) []Entry {
	var result []Entry
	for _, e := range entries {
		if f.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}
