package metrics

import (
	"math"
	"testing"

	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
	"github.com/Bunch-of-cells/oganesson/internal/universe"
)

func addTestBody(t *testing.T, u *universe.Universe, mass, charge float64, pos, vel []float64) *body.Body {
	t.Helper()
	b, err := body.NewBuilder(quantity.NewVector(pos, quantity.Meter)).
		Velocity(quantity.NewVector(vel, quantity.Velocity)).
		Mass(quantity.Kilograms(mass)).
		Charge(quantity.Coulombs(charge)).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := u.AddObject(b); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestTotalMomentum(t *testing.T) {
	u := universe.New(2)
	addTestBody(t, u, 2, 0, []float64{0, 0}, []float64{3, 0})
	addTestBody(t, u, 1, 0, []float64{5, 0}, []float64{-1, 0})

	p := TotalMomentum(u)
	if got := p.At(0); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected px=5, got %v", got)
	}
	if got := p.At(1); got != 0 {
		t.Errorf("expected py=0, got %v", got)
	}
}

func TestTotalEnergy_PairPotentials(t *testing.T) {
	u := universe.New(2)
	addTestBody(t, u, 1e6, 1e-6, []float64{0, 0}, []float64{0, 0})
	addTestBody(t, u, 1e6, -1e-6, []float64{2, 0}, []float64{0, 0})

	// KE = 0; gravitational pair term -G m^2 / r plus an attractive
	// Coulomb pair at -ke q^2 / r.
	want := -quantity.G.Value*1e12/2 - quantity.Ke.Value*1e-12/2
	got := TotalEnergy(u).Value
	if math.Abs(got-want) > math.Abs(want)*1e-9 {
		t.Errorf("expected total energy %v, got %v", want, got)
	}
}

func TestTotalEnergy_UniformFieldPotential(t *testing.T) {
	u := universe.New(2)
	if err := u.SetGravity(quantity.NewVector([]float64{0, -10}, quantity.Acceleration)); err != nil {
		t.Fatal(err)
	}
	addTestBody(t, u, 1, 0, []float64{0, 3}, []float64{4, 0})

	// KE = 8 J, potential -m g.x = 30 J.
	if got := TotalEnergy(u).Value; math.Abs(got-38) > 1e-9 {
		t.Errorf("expected total energy 38, got %v", got)
	}
}

func TestKineticEnergyMean(t *testing.T) {
	u := universe.New(2)
	addTestBody(t, u, 2, 0, []float64{0, 0}, []float64{3, 4})

	m := NewKineticEnergy()
	m.Observe(u)
	m.Observe(u)
	if got := m.Value(); math.Abs(got-25) > 1e-12 {
		t.Errorf("expected mean kinetic energy 25, got %v", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyDrift_ConservativeScene(t *testing.T) {
	u := universe.New(2)
	addTestBody(t, u, 1, 0, []float64{0, 0}, []float64{1, 0})

	d := NewEnergyDrift()
	d.Observe(u)
	for i := 0; i < 5; i++ {
		u.Step(quantity.Seconds(0.1))
		d.Observe(u)
	}

	if got := d.Value(); got > 1e-9 {
		t.Errorf("free body leaked energy: drift %v", got)
	}
}

func TestEnergyDrift_DetectsImpulse(t *testing.T) {
	u := universe.New(2)
	b := addTestBody(t, u, 1, 0, []float64{0, 0}, []float64{1, 0})

	d := NewEnergyDrift()
	d.Observe(u)
	b.ApplyImpulse(quantity.MetersPerSecond(3, 0))
	d.Observe(u)

	if got := d.Value(); got < 1 {
		t.Errorf("expected large drift after external impulse, got %v", got)
	}
}
