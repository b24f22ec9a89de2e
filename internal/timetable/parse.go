// Package timetable turns raw course schedule strings into a renderable
// weekly grid: parsing, conflict-aware consolidation, and proportional
// layout over a user-adjustable time window.
package timetable

import (
	"strconv"
	"strings"
)

const (
	// PeriodStart is where period 0 begins: 07:30 in minutes since midnight.
	PeriodStart = 450
	// PeriodMinutes is the length of one class period.
	PeriodMinutes = 90
)

// dayLabels maps the single-character Korean weekday labels used in schedule
// strings to day indices (0=Monday .. 6=Sunday).
var dayLabels = map[rune]int{
	'월': 0,
	'화': 1,
	'수': 2,
	'목': 3,
	'금': 4,
	'토': 5,
	'일': 6,
}

// Slot is a single contiguous half-open interval [Start, End) on one day,
// in minutes since midnight.
type Slot struct {
	Day   int
	Start int
	End   int
}

// Parse converts a raw schedule string into lecture slots. Tokens are
// whitespace separated, each a day label followed by a period number
// ("월4 수3"). Malformed tokens are skipped; Parse never fails.
// The result follows token order and repeated tokens are parsed twice.
func Parse(raw string) []Slot {
	slots, _ := ParseReport(raw)
	return slots
}

// ParseReport is Parse plus the tokens that were skipped, for callers that
// want to surface diagnostics. The slot output is identical to Parse.
func ParseReport(raw string) (slots []Slot, ignored []string) {
	for _, token := range strings.Fields(raw) {
		slot, ok := parseToken(token)
		if !ok {
			ignored = append(ignored, token)
			continue
		}
		slots = append(slots, slot)
	}
	return slots, ignored
}

// parseToken parses one <day-label><digits> token.
func parseToken(token string) (Slot, bool) {
	runes := []rune(token)
	if len(runes) < 2 {
		return Slot{}, false
	}

	day, ok := dayLabels[runes[0]]
	if !ok {
		return Slot{}, false
	}

	for _, r := range runes[1:] {
		if r < '0' || r > '9' {
			return Slot{}, false
		}
	}
	period, err := strconv.Atoi(string(runes[1:]))
	if err != nil {
		return Slot{}, false
	}

	start := PeriodStart + period*PeriodMinutes
	return Slot{Day: day, Start: start, End: start + PeriodMinutes}, true
}
