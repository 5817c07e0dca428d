package universe

import (
	"math"

	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/collision"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// Solver resolves the collisions found in one step. Implementations mutate
// the bodies directly; the collision indices refer to the bodies slice.
type Solver interface {
	Solve(bodies []*body.Body, collisions []collision.Collision, dt quantity.Scalar)
}

// ImpulseSolver resolves collisions with a restitution-scaled impulse along
// the contact normal and splits the penetration depth evenly between the
// movable bodies. The restitution of a pair is the larger of the two
// coefficients.
type ImpulseSolver struct{}

func (ImpulseSolver) Solve(bodies []*body.Body, collisions []collision.Collision, _ quantity.Scalar) {
	for _, c := range collisions {
		a, b := bodies[c.A], bodies[c.B]
		if a.Static() && b.Static() {
			continue
		}
		n := c.Contact.Normalized()
		if n.IsZero() {
			continue
		}

		// Impulse only when the bodies are still closing along the
		// normal; a pair already separating keeps its velocities.
		approach := a.Velocity().Sub(b.Velocity()).Dot(n)
		if approach.Value < 0 {
			e := math.Max(a.Attributes().Restitution, b.Attributes().Restitution)
			j := approach.Scale(-(1 + e)).Div(a.Mass().Recip().Add(b.Mass().Recip()))
			if !a.Static() {
				a.ApplyImpulse(n.MulScalar(j.Div(a.Mass())))
			}
			if !b.Static() {
				b.ApplyImpulse(n.MulScalar(j.Div(b.Mass())).Neg())
			}
		}

		half := c.Contact.Scale(0.5)
		if !a.Static() {
			a.Translate(half)
		}
		if !b.Static() {
			b.Translate(half.Neg())
		}
	}
}
