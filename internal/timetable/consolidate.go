package timetable

import (
	"sort"

	"github.com/haneul/sugang/internal/course"
)

// SlotInput is a lecture slot together with its owning catalog entry.
type SlotInput struct {
	Entry course.Entry
	Slot  Slot
}

// Block is the final visual unit on the grid: the union of all consolidated
// intervals on one day whose time ranges transitively overlap. Entries holds
// each distinct contributing offering once, in first-seen order.
type Block struct {
	Day      int
	Start    int
	End      int
	Entries  []course.Entry
	Conflict bool
}

// interval is one or more adjacent slots of a single offering on one day,
// merged across exact adjacency.
type interval struct {
	entry course.Entry
	day   int
	start int
	end   int
}

// Consolidate merges slots into display blocks in two stages: first adjacent
// slots of the same offering are joined into intervals (double and triple
// periods), then overlapping intervals across offerings are grouped into
// blocks, flagging multi-offering blocks as conflicts.
func Consolidate(inputs []SlotInput) []Block {
	intervals := mergeAdjacent(inputs)

	byDay := make(map[int][]interval)
	for _, iv := range intervals {
		byDay[iv.day] = append(byDay[iv.day], iv)
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	var blocks []Block
	for _, day := range days {
		blocks = append(blocks, groupOverlapping(byDay[day])...)
	}
	return blocks
}

// mergeAdjacent joins consecutive slots of the same offering and day when one
// ends exactly where the next starts. A gap of even one minute keeps them
// separate.
func mergeAdjacent(inputs []SlotInput) []interval {
	type groupKey struct {
		key string
		day int
	}

	grouped := make(map[groupKey][]SlotInput)
	var order []groupKey
	for _, in := range inputs {
		k := groupKey{key: in.Entry.Key(), day: in.Slot.Day}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], in)
	}

	var intervals []interval
	for _, k := range order {
		slots := grouped[k]
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].Slot.Start < slots[j].Slot.Start
		})

		run := interval{
			entry: slots[0].Entry,
			day:   k.day,
			start: slots[0].Slot.Start,
			end:   slots[0].Slot.End,
		}
		for _, in := range slots[1:] {
			if in.Slot.Start == run.end {
				if in.Slot.End > run.end {
					run.end = in.Slot.End
				}
				continue
			}
			intervals = append(intervals, run)
			run.start = in.Slot.Start
			run.end = in.Slot.End
		}
		intervals = append(intervals, run)
	}
	return intervals
}

// groupArena is a union-find arena over interval groups. Groups are indexed
// by integer handle; merged groups point at their absorbing root.
type groupArena struct {
	parent  []int
	start   []int
	end     []int
	members [][]interval
}

func (a *groupArena) add(iv interval) int {
	h := len(a.parent)
	a.parent = append(a.parent, h)
	a.start = append(a.start, iv.start)
	a.end = append(a.end, iv.end)
	a.members = append(a.members, []interval{iv})
	return h
}

func (a *groupArena) find(h int) int {
	for a.parent[h] != h {
		a.parent[h] = a.parent[a.parent[h]]
		h = a.parent[h]
	}
	return h
}

// union absorbs group b into group a, expanding a's envelope.
func (a *groupArena) union(ra, rb int) {
	if ra == rb {
		return
	}
	a.parent[rb] = ra
	if a.start[rb] < a.start[ra] {
		a.start[ra] = a.start[rb]
	}
	if a.end[rb] > a.end[ra] {
		a.end[ra] = a.end[rb]
	}
	a.members[ra] = append(a.members[ra], a.members[rb]...)
	a.members[rb] = nil
}

// groupOverlapping merges one day's intervals into blocks. An interval joins
// every group whose envelope it overlaps; those groups coalesce into one, so
// a chain of partial overlaps collapses into a single block.
func groupOverlapping(intervals []interval) []Block {
	sort.SliceStable(intervals, func(i, j int) bool {
		if intervals[i].start != intervals[j].start {
			return intervals[i].start < intervals[j].start
		}
		if intervals[i].end != intervals[j].end {
			return intervals[i].end < intervals[j].end
		}
		return intervals[i].entry.Key() < intervals[j].entry.Key()
	})

	arena := &groupArena{}
	var roots []int

	for _, iv := range intervals {
		var matched []int
		for _, r := range roots {
			root := arena.find(r)
			if arena.members[root] == nil {
				continue
			}
			if Overlaps(iv.start, iv.end, arena.start[root], arena.end[root]) {
				matched = append(matched, root)
			}
		}

		if len(matched) == 0 {
			roots = append(roots, arena.add(iv))
			continue
		}

		first := matched[0]
		for _, other := range matched[1:] {
			arena.union(first, other)
		}
		arena.members[first] = append(arena.members[first], iv)
		if iv.start < arena.start[first] {
			arena.start[first] = iv.start
		}
		if iv.end > arena.end[first] {
			arena.end[first] = iv.end
		}
	}

	var blocks []Block
	for _, r := range roots {
		root := arena.find(r)
		if root != r || arena.members[root] == nil {
			continue
		}

		seen := make(map[string]bool)
		var entries []course.Entry
		for _, m := range arena.members[root] {
			key := m.entry.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, m.entry)
		}

		blocks = append(blocks, Block{
			Day:      arena.members[root][0].day,
			Start:    arena.start[root],
			End:      arena.end[root],
			Entries:  entries,
			Conflict: len(entries) > 1,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start < blocks[j].Start
	})
	return blocks
}
