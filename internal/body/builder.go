package body

import (
	"fmt"

	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// Builder assembles and validates a [Body]. Every quantity is dimension
// checked at Build time; dimension violations come back as
// *quantity.DimensionError, geometric invariants (radius, vertex count) as
// plain errors.
type Builder struct {
	position    quantity.Vector
	velocity    quantity.Vector
	mass        quantity.Scalar
	charge      quantity.Scalar
	shape       Shape
	attrs       Attributes
	hasVelocity bool
	hasCharge   bool
}

// NewBuilder starts a body at the given position. The position fixes the
// spatial dimension every other vector must match.
func NewBuilder(position quantity.Vector) *Builder {
	return &Builder{
		position: position,
		shape:    Point{},
		attrs:    Attributes{Restitution: 1},
	}
}

func (bl *Builder) Velocity(v quantity.Vector) *Builder {
	bl.velocity = v
	bl.hasVelocity = true
	return bl
}

func (bl *Builder) Mass(m quantity.Scalar) *Builder {
	bl.mass = m
	return bl
}

func (bl *Builder) Charge(q quantity.Scalar) *Builder {
	bl.charge = q
	bl.hasCharge = true
	return bl
}

func (bl *Builder) Shape(s Shape) *Builder {
	bl.shape = s
	return bl
}

func (bl *Builder) Static(static bool) *Builder {
	bl.attrs.Static = static
	return bl
}

func (bl *Builder) Restitution(e float64) *Builder {
	bl.attrs.Restitution = e
	return bl
}

func (bl *Builder) Build() (*Body, error) {
	if err := bl.position.Expect(quantity.Meter, "position"); err != nil {
		return nil, err
	}
	dim := bl.position.Len()
	if dim == 0 {
		return nil, fmt.Errorf("body: position must have at least one component")
	}

	velocity := bl.velocity
	if !bl.hasVelocity {
		velocity = quantity.ZeroVector(dim, quantity.Velocity)
	}
	if err := velocity.Expect(quantity.Velocity, "velocity"); err != nil {
		return nil, err
	}
	if velocity.Len() != dim {
		return nil, fmt.Errorf("body: velocity has %d components, expected %d", velocity.Len(), dim)
	}

	if err := bl.mass.Expect(quantity.Kilogram, "mass"); err != nil {
		return nil, err
	}
	if bl.mass.Value <= 0 {
		return nil, fmt.Errorf("body: mass must be positive, got %v", bl.mass)
	}

	charge := bl.charge
	if !bl.hasCharge {
		charge = quantity.Coulombs(0)
	}
	if err := charge.Expect(quantity.Coulomb, "charge"); err != nil {
		return nil, err
	}

	if err := bl.shape.validate(dim); err != nil {
		return nil, err
	}

	if bl.attrs.Restitution < 0 || bl.attrs.Restitution > 1 {
		return nil, fmt.Errorf("body: restitution must be in [0, 1], got %g", bl.attrs.Restitution)
	}

	checkVelocityLimit(velocity)

	return &Body{
		position: bl.position,
		velocity: [4]quantity.Vector{velocity, velocity, velocity, velocity},
		mass:     bl.mass,
		charge:   charge,
		shape:    bl.shape,
		attrs:    bl.attrs,
		force:    quantity.ZeroVector(dim, quantity.Newton),
	}, nil
}
