package timetable

import "github.com/haneul/sugang/internal/course"

// Build runs the whole pipeline for a set of catalog entries: parse every
// schedule string, consolidate the slots into blocks, and lay the blocks out
// on the grid described by view. The result is fully determined by its
// inputs and recomputed wholesale on every call.
func Build(entries []course.Entry, view ViewState) Grid {
	var inputs []SlotInput
	var slots []Slot

	for _, e := range entries {
		for _, s := range Parse(e.Schedule) {
			inputs = append(inputs, SlotInput{Entry: e, Slot: s})
			slots = append(slots, s)
		}
	}

	return Layout(Consolidate(inputs), slots, view)
}

// Conflicts returns only the conflicting blocks of a built grid, in grid
// order. Useful for warnings in the CLI and for the advisor prompt.
func Conflicts(grid Grid) []PositionedBlock {
	var out []PositionedBlock
	for _, b := range grid.Blocks {
		if b.Conflict {
			out = append(out, b)
		}
	}
	return out
}
