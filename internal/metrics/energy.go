package metrics

import (
	"math"

	"github.com/Bunch-of-cells/oganesson/internal/universe"
)

// KineticEnergy reports the mean total kinetic energy across observations.
type KineticEnergy struct {
	name    string
	sum     float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(u *universe.Universe) {
	total := 0.0
	for _, b := range u.Objects() {
		total += b.KineticEnergy().Value
	}
	k.sum += total
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.sum / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.sum = 0
	k.samples = 0
}

// EnergyDrift tracks the worst relative deviation of the total mechanical
// energy from its first observation. For a conservative scene the value
// stays near zero; solver losses and integration error show up directly.
// When the initial energy is exactly zero the drift is absolute instead.
type EnergyDrift struct {
	name    string
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(u *universe.Universe) {
	energy := TotalEnergy(u).Value

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.max = math.Max(e.max, drift)
	} else {
		e.max = math.Max(e.max, math.Abs(energy))
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.max
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}
