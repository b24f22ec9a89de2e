package timetable

import "fmt"

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns -1 for invalid input so callers can fall back to defaults.
func TimeToMinutes(t string) int {
	if len(t) != 5 || t[2] != ':' {
		return -1
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return -1
		}
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	if hours > 23 || mins > 59 {
		return -1
	}
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps returns true if two half-open minute ranges overlap.
// Touching endpoints (end1 == start2) do not count as overlap.
func Overlaps(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}
