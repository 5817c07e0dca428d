package body

import "github.com/Bunch-of-cells/oganesson/internal/quantity"

// Box is an axis-aligned bounding box. Boxes are recomputed from body state
// every step and never persisted across steps.
type Box struct {
	Min quantity.Vector
	Max quantity.Vector
}

// Overlaps treats the box as a closed interval on every axis, so boxes that
// merely touch still overlap.
func (b Box) Overlaps(o Box) bool {
	for i := 0; i < b.Min.Len(); i++ {
		if b.Min.At(i) > o.Max.At(i) || b.Max.At(i) < o.Min.At(i) {
			return false
		}
	}
	return true
}

func (b Box) Center() quantity.Vector {
	return b.Min.Add(b.Max).Scale(0.5)
}
