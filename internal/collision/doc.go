// Package collision finds overlapping bodies in two phases.
//
// [PossibleCollisions] is the broad phase. It recursively halves the set of
// bounding boxes at the median box center, cycling the split axis, and
// reports candidate index pairs. Boxes straddling a median are kept in both
// halves, so the candidates are always a superset of the truly overlapping
// pairs. When the boxes pile up so that no axis separates them the
// partitioner degrades to plain pairwise testing.
//
// [Collide] is the narrow phase. Point bodies never collide, sphere pairs
// are solved in closed form, and every remaining pairing runs GJK on the
// Minkowski difference of the two shapes. A sphere enters GJK through its
// support function, so sphere against polygon needs no special casing. The
// returned contact vector points from the second body toward the first and
// is as long as the penetration depth along that axis.
package collision
