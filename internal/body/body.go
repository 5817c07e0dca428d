package body

import (
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// Attributes hold the collision-response properties of a body. Static
// bodies never move: integration skips them and impulses are not applied
// to them. Restitution is the ratio of post- to pre-collision relative
// speed along the contact normal (1 elastic, 0 inelastic).
type Attributes struct {
	Static      bool
	Restitution float64
}

// Body is one simulated object. It is owned exclusively by the universe
// that holds it; bodies never reference each other.
//
// The velocity field keeps the last four computed velocities; the
// integrator advances position with their [1 3 3 1]/8 weighted average,
// which damps oscillation in the force-driven velocity sequence.
type Body struct {
	position quantity.Vector
	velocity [4]quantity.Vector
	mass     quantity.Scalar
	charge   quantity.Scalar
	shape    Shape
	attrs    Attributes
	force    quantity.Vector
}

func (b *Body) Position() quantity.Vector { return b.position }

// Velocity returns the most recently computed velocity.
func (b *Body) Velocity() quantity.Vector { return b.velocity[3] }

// RestMass is the configured mass, regardless of build mode.
func (b *Body) RestMass() quantity.Scalar { return b.mass }

func (b *Body) Charge() quantity.Scalar { return b.charge }

func (b *Body) Shape() Shape { return b.shape }

func (b *Body) Attributes() Attributes { return b.attrs }

func (b *Body) Static() bool { return b.attrs.Static }

// Dim is the spatial dimension the body lives in.
func (b *Body) Dim() int { return b.position.Len() }

func (b *Body) BoundingBox() Box {
	return b.shape.boundingBox(b.position)
}

// ApplyForce adds an external force for the next integration step. The
// accumulator is consumed and cleared by that step.
func (b *Body) ApplyForce(f quantity.Vector) error {
	if err := f.Expect(quantity.Newton, "force"); err != nil {
		return err
	}
	sum, ok := b.force.CheckedAdd(f)
	if !ok {
		return &quantity.DimensionError{
			Expected: quantity.Newton, Found: f.Dim(), Context: "force",
		}
	}
	b.force = sum
	return nil
}

// Integrate advances the body by dt under the given net force plus any
// pending externally applied force. Static bodies do not move; their
// pending force is still cleared.
func (b *Body) Integrate(force quantity.Vector, dt quantity.Scalar) {
	pending := b.force
	b.force = quantity.ZeroVector(b.Dim(), quantity.Newton)
	if b.attrs.Static {
		return
	}

	accel := force.Add(pending).DivScalar(b.Mass())
	v := accel.MulScalar(dt).Add(b.averageVelocity())
	b.position = b.position.Add(v.MulScalar(dt))
	b.velocity[0], b.velocity[1], b.velocity[2] = b.velocity[1], b.velocity[2], b.velocity[3]
	b.velocity[3] = v
}

func (b *Body) averageVelocity() quantity.Vector {
	return b.velocity[0].
		Add(b.velocity[1].Scale(3)).
		Add(b.velocity[2].Scale(3)).
		Add(b.velocity[3]).
		Scale(1.0 / 8.0)
}

// ApplyImpulse shifts every velocity history slot by dv. Translating the
// whole history keeps the integrator's weighted average from blending
// pre-impulse velocities back in on the following step.
func (b *Body) ApplyImpulse(dv quantity.Vector) {
	for i := range b.velocity {
		b.velocity[i] = b.velocity[i].Add(dv)
	}
}

// Translate displaces the body without touching its velocities.
func (b *Body) Translate(delta quantity.Vector) {
	b.position = b.position.Add(delta)
}
