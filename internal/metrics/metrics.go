// Package metrics provides observers that summarize a simulation run: total
// energies, momentum, and their drift over time. An observer is polled after
// each step and reduces what it saw to a single number.
package metrics

import (
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
	"github.com/Bunch-of-cells/oganesson/internal/universe"
)

// Metric accumulates one summary statistic over the course of a run.
type Metric interface {
	Name() string
	Observe(u *universe.Universe)
	Value() float64
	Reset()
}

// TotalMomentum sums the momentum of every body.
func TotalMomentum(u *universe.Universe) quantity.Vector {
	p := quantity.ZeroVector(u.Dim(), quantity.Momentum)
	for _, b := range u.Objects() {
		p = p.Add(b.Momentum())
	}
	return p
}

// TotalEnergy sums kinetic energy, the potential energy of the uniform
// fields, and the pairwise gravitational and Coulomb potentials. The
// magnetic field does no work and contributes nothing.
func TotalEnergy(u *universe.Universe) quantity.Scalar {
	bodies := u.Objects()
	total := quantity.NewScalar(0, quantity.Joule)

	gravity := u.Gravity()
	electric := u.ElectricField()
	for _, b := range bodies {
		total = total.Add(b.KineticEnergy())
		if !gravity.IsZero() {
			total = total.Sub(gravity.Dot(b.Position()).Mul(b.Mass()))
		}
		if !electric.IsZero() {
			total = total.Sub(electric.Dot(b.Position()).Mul(b.Charge()))
		}
	}

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[i].Position().Sub(bodies[j].Position()).Magnitude()
			if r.IsZero() {
				continue
			}
			grav := quantity.G.Mul(bodies[i].Mass()).Mul(bodies[j].Mass())
			coul := quantity.Ke.Mul(bodies[i].Charge()).Mul(bodies[j].Charge())
			total = total.Add(coul.Sub(grav).Div(r))
		}
	}
	return total
}
