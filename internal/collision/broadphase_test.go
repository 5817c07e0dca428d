package collision

import (
	"math/rand"
	"testing"

	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

func boxAt(min, max []float64) body.Box {
	return body.Box{
		Min: quantity.NewVector(min, quantity.Meter),
		Max: quantity.NewVector(max, quantity.Meter),
	}
}

func bruteForcePairs(entries []BoxEntry) map[[2]int]struct{} {
	pairs := make(map[[2]int]struct{})
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].Box.Overlaps(entries[j].Box) {
				a, b := entries[i].Index, entries[j].Index
				if b < a {
					a, b = b, a
				}
				pairs[[2]int{a, b}] = struct{}{}
			}
		}
	}
	return pairs
}

func randomEntries(rng *rand.Rand, n, dim int) []BoxEntry {
	entries := make([]BoxEntry, n)
	for i := range entries {
		min := make([]float64, dim)
		max := make([]float64, dim)
		for d := 0; d < dim; d++ {
			min[d] = rng.Float64() * 10
			max[d] = min[d] + rng.Float64()*3
		}
		entries[i] = BoxEntry{Index: i, Box: boxAt(min, max)}
	}
	return entries
}

func TestPossibleCollisions_SmallSets(t *testing.T) {
	if got := PossibleCollisions(nil, 2); len(got) != 0 {
		t.Errorf("expected no pairs for empty input, got %v", got)
	}
	one := []BoxEntry{{Index: 0, Box: boxAt([]float64{0, 0}, []float64{1, 1})}}
	if got := PossibleCollisions(one, 2); len(got) != 0 {
		t.Errorf("expected no pairs for single box, got %v", got)
	}

	overlapping := []BoxEntry{
		{Index: 0, Box: boxAt([]float64{0, 0}, []float64{2, 2})},
		{Index: 1, Box: boxAt([]float64{1, 1}, []float64{3, 3})},
	}
	got := PossibleCollisions(overlapping, 2)
	if len(got) != 1 || got[0] != [2]int{0, 1} {
		t.Errorf("expected [[0 1]], got %v", got)
	}

	disjoint := []BoxEntry{
		{Index: 0, Box: boxAt([]float64{0, 0}, []float64{1, 1})},
		{Index: 1, Box: boxAt([]float64{5, 5}, []float64{6, 6})},
	}
	if got := PossibleCollisions(disjoint, 2); len(got) != 0 {
		t.Errorf("expected no pairs for disjoint boxes, got %v", got)
	}
}

func TestPossibleCollisions_TouchingBoxesIncluded(t *testing.T) {
	entries := []BoxEntry{
		{Index: 0, Box: boxAt([]float64{0, 0}, []float64{1, 1})},
		{Index: 1, Box: boxAt([]float64{1, 0}, []float64{2, 1})},
	}
	got := PossibleCollisions(entries, 2)
	if len(got) != 1 || got[0] != [2]int{0, 1} {
		t.Errorf("expected touching boxes to pair, got %v", got)
	}
}

func TestPossibleCollisions_IdenticalBoxes(t *testing.T) {
	var entries []BoxEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, BoxEntry{Index: i, Box: boxAt([]float64{0, 0}, []float64{1, 1})})
	}
	got := PossibleCollisions(entries, 2)
	if len(got) != 10 {
		t.Fatalf("expected all 10 pairs among 5 identical boxes, got %d: %v", len(got), got)
	}
}

func TestPossibleCollisions_SupersetOfBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for dim := 1; dim <= 3; dim++ {
		for n := 0; n <= 50; n++ {
			entries := randomEntries(rng, n, dim)
			got := PossibleCollisions(entries, dim)

			candidates := make(map[[2]int]struct{}, len(got))
			for _, p := range got {
				if p[0] >= p[1] {
					t.Fatalf("dim=%d n=%d: pair %v not in ascending order", dim, n, p)
				}
				candidates[p] = struct{}{}
			}
			if len(candidates) != len(got) {
				t.Fatalf("dim=%d n=%d: duplicate pairs in %v", dim, n, got)
			}
			for p := range bruteForcePairs(entries) {
				if _, ok := candidates[p]; !ok {
					t.Errorf("dim=%d n=%d: overlapping pair %v missing from candidates", dim, n, p)
				}
			}
		}
	}
}

func TestPossibleCollisions_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	entries := randomEntries(rng, 40, 2)
	want := PossibleCollisions(entries, 2)

	shuffled := make([]BoxEntry, len(entries))
	copy(shuffled, entries)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	got := PossibleCollisions(shuffled, 2)

	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
