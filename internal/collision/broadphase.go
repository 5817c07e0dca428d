package collision

import "sort"

// PossibleCollisions returns every pair of entries whose bounding boxes may
// overlap, found by recursively splitting the set at the median box center
// along cycling axes. The result is a superset of the truly overlapping
// pairs: a candidate pair still has to pass the narrow phase. Each pair is
// reported once, in ascending index order.
func PossibleCollisions(entries []BoxEntry, dim int) [][2]int {
	if len(entries) < 2 {
		return nil
	}
	work := make([]BoxEntry, len(entries))
	copy(work, entries)
	seen := make(map[[2]int]struct{})
	partition(work, dim, 0, 0, seen)

	pairs := make([][2]int, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// partition splits entries at the median center along axis, sends each half
// down the next axis, and falls back to pairwise testing once every axis has
// failed to shrink the set. stuck counts those consecutive failures.
//
// The halves are boundary-inclusive: a box whose minimum sits at or below
// the median goes left, one whose maximum sits at or above it goes right.
// A box straddling the median lands in both halves, which keeps every
// overlapping pair of boxes together in at least one half.
func partition(entries []BoxEntry, dim, axis, stuck int, seen map[[2]int]struct{}) {
	if len(entries) < 2 {
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return center(entries[i], axis) < center(entries[j], axis)
	})
	var median float64
	if n := len(entries); n%2 == 0 {
		median = (center(entries[n/2-1], axis) + center(entries[n/2], axis)) / 2
	} else {
		median = center(entries[n/2], axis)
	}

	next := (axis + 1) % dim

	low := make([]BoxEntry, 0, len(entries))
	for _, e := range entries {
		if e.Box.Min.At(axis) <= median {
			low = append(low, e)
		}
	}
	if len(low) == len(entries) {
		if stuck+1 >= dim {
			pairwise(entries, seen)
			return
		}
		partition(entries, dim, next, stuck+1, seen)
		return
	}

	high := make([]BoxEntry, 0, len(entries))
	for _, e := range entries {
		if e.Box.Max.At(axis) >= median {
			high = append(high, e)
		}
	}
	if len(high) == len(entries) {
		if stuck+1 >= dim {
			pairwise(entries, seen)
			return
		}
		partition(entries, dim, next, stuck+1, seen)
		return
	}

	descend(low, dim, next, seen)
	descend(high, dim, next, seen)
}

func descend(half []BoxEntry, dim, axis int, seen map[[2]int]struct{}) {
	if len(half) == 2 {
		if half[0].Box.Overlaps(half[1].Box) {
			record(seen, half[0].Index, half[1].Index)
		}
		return
	}
	partition(half, dim, axis, 0, seen)
}

func pairwise(entries []BoxEntry, seen map[[2]int]struct{}) {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].Box.Overlaps(entries[j].Box) {
				record(seen, entries[i].Index, entries[j].Index)
			}
		}
	}
}

func record(seen map[[2]int]struct{}, i, j int) {
	if j < i {
		i, j = j, i
	}
	seen[[2]int{i, j}] = struct{}{}
}

func center(e BoxEntry, axis int) float64 {
	return (e.Box.Min.At(axis) + e.Box.Max.At(axis)) / 2
}
