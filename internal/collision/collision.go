package collision

import (
	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// Collision pairs two body indices with their contact vector. The contact
// direction pushes A away from B; its magnitude is the penetration depth.
// Collisions are produced and consumed within a single step, never stored.
type Collision struct {
	A       int
	B       int
	Contact quantity.Vector
}

// BoxEntry tags a bounding box with the index of the body it belongs to, so
// candidate pairs survive the sorting the partitioner does internally.
type BoxEntry struct {
	Index int
	Box   body.Box
}
