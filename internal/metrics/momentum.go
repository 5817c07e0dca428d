package metrics

import (
	"math"

	"github.com/Bunch-of-cells/oganesson/internal/universe"
)

// MomentumDrift tracks the worst deviation of the total momentum magnitude
// from its first observation, relative when the initial momentum is nonzero
// and absolute otherwise. Internal forces and impulse resolution should
// leave it near zero; uniform fields legitimately move it.
type MomentumDrift struct {
	name    string
	initial float64
	max     float64
	samples int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(u *universe.Universe) {
	p := TotalMomentum(u).Magnitude().Value

	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	if m.initial != 0 {
		m.max = math.Max(m.max, math.Abs(p-m.initial)/m.initial)
	} else {
		m.max = math.Max(m.max, p)
	}
}

func (m *MomentumDrift) Value() float64 {
	return m.max
}

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.max = 0
	m.samples = 0
}
