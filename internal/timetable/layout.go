package timetable

import "sort"

// Default window bounds used when neither overrides nor slot data are
// available: 09:00 to 18:00.
const (
	DefaultWindowStart = 540
	DefaultWindowEnd   = 1080
)

const (
	timeLabelStep = 30

	// Display periods are one-based and anchored at 09:00. This is a
	// different epoch from the parser's data-entry periods on purpose.
	displayPeriodStart = 540
	displayPeriodCount = 6
)

// ViewState carries the optional user overrides for the visible grid.
// Empty strings and a nil day slice mean "use the derived defaults".
type ViewState struct {
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Days      []int  // 0=Monday .. 6=Sunday
}

// PositionedBlock is a display block with percentage-based geometry inside
// the resolved window.
type PositionedBlock struct {
	Block
	Top    float64 // percent from window start
	Height float64 // percent of window duration
}

// TimeLabel is one tick on the clock-time axis.
type TimeLabel struct {
	Minutes int
	Label   string  // "HH:MM"
	Top     float64 // percent from window start
}

// PeriodLabel is one tick on the display-period axis, clipped to the window.
type PeriodLabel struct {
	Period int // 1-based
	Top    float64
	Height float64
}

// Grid is the render-ready result of the layout pass.
type Grid struct {
	WindowStart  int
	WindowEnd    int
	Days         []int
	Blocks       []PositionedBlock
	TimeLabels   []TimeLabel
	PeriodLabels []PeriodLabel
}

// Layout computes the visible grid for the given blocks. The slot list is
// the flat parse output for all entries and drives the data-derived window
// bounds and day set; view supplies the user overrides.
func Layout(blocks []Block, slots []Slot, view ViewState) Grid {
	windowStart, windowEnd := resolveWindow(slots, view)

	duration := windowEnd - windowStart
	if duration < 1 {
		duration = 1
	}

	grid := Grid{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Days:        resolveDays(slots, view),
	}

	for _, b := range blocks {
		pb, ok := position(b, windowStart, windowEnd, duration)
		if !ok {
			continue
		}
		grid.Blocks = append(grid.Blocks, pb)
	}

	grid.TimeLabels = timeLabels(windowStart, windowEnd, duration)
	grid.PeriodLabels = periodLabels(windowStart, windowEnd, duration)

	return grid
}

// resolveWindow picks the visible time bounds. A valid "HH:MM" override wins
// per field; otherwise bounds come from the slot data, extended to cover the
// default business-hours window. With no data either, the defaults stand.
func resolveWindow(slots []Slot, view ViewState) (int, int) {
	dataStart, dataEnd := DefaultWindowStart, DefaultWindowEnd
	for _, s := range slots {
		dataStart = min(dataStart, s.Start)
		dataEnd = max(dataEnd, s.End)
	}

	start := dataStart
	if m := TimeToMinutes(view.StartTime); m >= 0 {
		start = m
	}
	end := dataEnd
	if m := TimeToMinutes(view.EndTime); m >= 0 {
		end = m
	}
	return start, end
}

// resolveDays picks the visible day columns: the override set when present,
// otherwise Monday..Friday plus any day that actually has a slot.
func resolveDays(slots []Slot, view ViewState) []int {
	included := make(map[int]bool)

	if view.Days != nil {
		for _, d := range view.Days {
			if d >= 0 && d <= 6 {
				included[d] = true
			}
		}
	} else {
		for d := 0; d < 5; d++ {
			included[d] = true
		}
		for _, s := range slots {
			if s.Day >= 0 && s.Day <= 6 {
				included[s.Day] = true
			}
		}
	}

	days := make([]int, 0, len(included))
	for d := range included {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// position clips a block to the window and converts it to percentages.
// Blocks that end up with no visible height are dropped.
func position(b Block, windowStart, windowEnd, duration int) (PositionedBlock, bool) {
	clippedStart := max(b.Start, windowStart)
	clippedEnd := min(b.End, windowEnd)
	if clippedEnd <= clippedStart {
		return PositionedBlock{}, false
	}

	top := float64(clippedStart-windowStart) / float64(duration) * 100
	height := float64(clippedEnd-clippedStart) / float64(duration) * 100
	return PositionedBlock{
		Block:  b,
		Top:    clampPercent(top),
		Height: clampPercent(height),
	}, true
}

// timeLabels generates ticks every 30 minutes from windowStart through
// windowEnd, appending windowEnd itself when the steps fall short of it.
func timeLabels(windowStart, windowEnd, duration int) []TimeLabel {
	var labels []TimeLabel
	last := -1
	for m := windowStart; m <= windowEnd; m += timeLabelStep {
		labels = append(labels, makeTimeLabel(m, windowStart, duration))
		last = m
	}
	if last < windowEnd {
		labels = append(labels, makeTimeLabel(windowEnd, windowStart, duration))
	}
	return labels
}

func makeTimeLabel(m, windowStart, duration int) TimeLabel {
	return TimeLabel{
		Minutes: m,
		Label:   MinutesToTime(m),
		Top:     clampPercent(float64(m-windowStart) / float64(duration) * 100),
	}
}

// periodLabels generates the one-based display periods whose 90-minute
// interval intersects the window, clipped to the window bounds.
func periodLabels(windowStart, windowEnd, duration int) []PeriodLabel {
	var labels []PeriodLabel
	for p := 1; p <= displayPeriodCount; p++ {
		start := displayPeriodStart + (p-1)*PeriodMinutes
		end := start + PeriodMinutes
		if !Overlaps(start, end, windowStart, windowEnd) {
			continue
		}

		clippedStart := max(start, windowStart)
		clippedEnd := min(end, windowEnd)
		labels = append(labels, PeriodLabel{
			Period: p,
			Top:    clampPercent(float64(clippedStart-windowStart) / float64(duration) * 100),
			Height: clampPercent(float64(clippedEnd-clippedStart) / float64(duration) * 100),
		})
	}
	return labels
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
