//go:build relativistic

package body

import (
	"fmt"
	"math"

	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// Mass is the relativistic mass gamma * m0. It panics when the body has
// reached the speed of light, which no massive body may do.
func (b *Body) Mass() quantity.Scalar {
	return b.mass.Scale(b.LorentzFactor())
}

// LorentzFactor computes gamma = 1 / sqrt(1 - v^2/c^2) for the current
// velocity.
func (b *Body) LorentzFactor() float64 {
	v := b.velocity[3]
	if v.IsZero() {
		return 1
	}
	beta2 := v.MagnitudeSquared().Div(quantity.C2).Value
	if beta2 >= 1 {
		panic(fmt.Sprintf("body: velocity %v is at or above the speed of light", v))
	}
	return 1 / math.Sqrt(1-beta2)
}

// KineticEnergy is (gamma - 1) m c^2.
func (b *Body) KineticEnergy() quantity.Scalar {
	return b.mass.Mul(quantity.C2).Scale(b.LorentzFactor() - 1)
}

// Momentum is gamma m v.
func (b *Body) Momentum() quantity.Vector {
	return b.velocity[3].MulScalar(b.mass).Scale(b.LorentzFactor())
}

func checkVelocityLimit(v quantity.Vector) {
	if v.IsZero() {
		return
	}
	if v.MagnitudeSquared().Div(quantity.C2).Value >= 1 {
		panic(fmt.Sprintf("body: velocity %v is at or above the speed of light", v))
	}
}
