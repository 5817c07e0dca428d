package collision

import (
	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// maxIterations bounds the GJK refinement loop. Well-conditioned shapes
// converge in a handful of iterations; the cap turns pathological inputs
// into a no-collision verdict instead of a hang.
const maxIterations = 64

// gjkEpsilon is the squared-sine threshold below which simplex vectors are
// treated as collinear.
const gjkEpsilon = 1e-16

// Collide reports whether two bodies overlap and, if so, the contact vector
// pushing a away from b with the penetration depth as its magnitude. Point
// bodies never collide. Sphere pairs are solved in closed form, every other
// shape pairing goes through GJK.
func Collide(a, b *body.Body) (quantity.Vector, bool) {
	if _, ok := a.Shape().(body.Point); ok {
		return quantity.Vector{}, false
	}
	if _, ok := b.Shape().(body.Point); ok {
		return quantity.Vector{}, false
	}
	sa, aSphere := a.Shape().(body.Sphere)
	sb, bSphere := b.Shape().(body.Sphere)
	if aSphere && bSphere {
		return sphereSphere(a.Position(), b.Position(), sa.Radius, sb.Radius)
	}
	return gjkCollide(a, b)
}

func sphereSphere(posA, posB quantity.Vector, rA, rB quantity.Scalar) (quantity.Vector, bool) {
	d := posA.Sub(posB)
	dist := d.Magnitude()
	reach := rA.Add(rB)
	if dist.Value >= reach.Value {
		return quantity.Vector{}, false
	}
	return d.Normalized().MulScalar(reach.Sub(dist)), true
}

func gjkCollide(a, b *body.Body) (quantity.Vector, bool) {
	axis := a.Position().Sub(b.Position()).Normalized()
	if axis.IsZero() {
		comps := make([]float64, a.Dim())
		comps[0] = 1
		axis = quantity.NewVector(comps, quantity.None)
	}
	if !gjk(a, b, axis) {
		return quantity.Vector{}, false
	}
	// Penetration along the center axis: how far the Minkowski difference
	// extends past the origin against that axis.
	depth := minkowskiSupport(a, b, axis.Neg()).Dot(axis.Neg())
	return axis.MulScalar(depth), true
}

// gjk reports whether the Minkowski difference of a and b contains the
// origin, growing a simplex from support points until the origin is enclosed
// or provably outside.
func gjk(a, b *body.Body, seed quantity.Vector) bool {
	s := minkowskiSupport(a, b, seed)
	if s.IsZero() {
		return true
	}
	d := s.Normalized().Neg()
	simplex := []quantity.Vector{s}

	for i := 0; i < maxIterations; i++ {
		x := minkowskiSupport(a, b, d)
		if x.Dot(d).Value < 0 {
			return false
		}
		simplex = append(simplex, x)

		var enclosed bool
		simplex, d, enclosed = refineSimplex(simplex)
		if enclosed {
			return true
		}
	}
	return false
}

// refineSimplex keeps the simplex feature nearest the origin and returns the
// next search direction, reporting whether the origin is already enclosed.
// The newest point is always last.
func refineSimplex(simplex []quantity.Vector) ([]quantity.Vector, quantity.Vector, bool) {
	if len(simplex) == 2 {
		a, b := simplex[1], simplex[0]
		ab := b.Sub(a)
		ao := a.Neg()
		perp := quantity.Triple(ab, ao, ab)
		if collinear(perp, ab, ao) {
			// The origin sits on the segment itself: the two support
			// points straddle it.
			return simplex, perp, true
		}
		return simplex, perp, false
	}

	a, b, c := simplex[2], simplex[1], simplex[0]
	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Neg()

	abPerp := quantity.Triple(ac, ab, ab)
	if abPerp.Dot(ao).Value > 0 {
		return []quantity.Vector{b, a}, abPerp, false
	}
	acPerp := quantity.Triple(ab, ac, ac)
	if acPerp.Dot(ao).Value > 0 {
		return []quantity.Vector{c, a}, acPerp, false
	}
	return simplex, ao, true
}

// collinear tests whether perp = triple(u, v, u) vanished because u and v
// are parallel. The threshold is relative: |perp|^2 scales as
// |u|^4 |v|^2 sin^2(angle).
func collinear(perp, u, v quantity.Vector) bool {
	uu := u.MagnitudeSquared().Value
	return perp.MagnitudeSquared().Value <= gjkEpsilon*uu*uu*v.MagnitudeSquared().Value
}

// minkowskiSupport returns the support point of the Minkowski difference
// a - b in direction d.
func minkowskiSupport(a, b *body.Body, d quantity.Vector) quantity.Vector {
	return support(a, d).Sub(support(b, d.Neg()))
}

// support returns the world-space point of b furthest along d.
func support(b *body.Body, d quantity.Vector) quantity.Vector {
	switch s := b.Shape().(type) {
	case body.Sphere:
		return b.Position().Add(d.Normalized().MulScalar(s.Radius))
	case body.Polygon:
		best := b.Position().Add(s.Points[0])
		bestDot := best.Dot(d).Value
		for _, p := range s.Points[1:] {
			world := b.Position().Add(p)
			if dot := world.Dot(d).Value; dot > bestDot {
				best, bestDot = world, dot
			}
		}
		return best
	default:
		return b.Position()
	}
}
