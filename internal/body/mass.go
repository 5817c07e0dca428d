//go:build !relativistic

package body

import "github.com/Bunch-of-cells/oganesson/internal/quantity"

// Mass is the configured rest mass. Build with the relativistic tag for the
// Lorentz-corrected variant.
func (b *Body) Mass() quantity.Scalar { return b.mass }

// KineticEnergy is m v^2 / 2.
func (b *Body) KineticEnergy() quantity.Scalar {
	return b.mass.Mul(b.velocity[3].MagnitudeSquared()).Scale(0.5)
}

// Momentum is m v.
func (b *Body) Momentum() quantity.Vector {
	return b.velocity[3].MulScalar(b.mass)
}

func checkVelocityLimit(quantity.Vector) {}
