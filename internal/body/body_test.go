package body

import (
	"errors"
	"math"
	"testing"

	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

func mustBuild(t *testing.T, bl *Builder) *Body {
	t.Helper()
	b, err := bl.Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return b
}

func TestBuilderDefaults(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(1, 2)).Mass(quantity.Kilograms(3)))

	if !b.Velocity().IsZero() {
		t.Errorf("expected zero default velocity, got %v", b.Velocity())
	}
	if !b.Charge().IsZero() {
		t.Errorf("expected zero default charge, got %v", b.Charge())
	}
	if _, ok := b.Shape().(Point); !ok {
		t.Errorf("expected point shape by default, got %T", b.Shape())
	}
	if b.Attributes().Restitution != 1 {
		t.Errorf("expected restitution 1, got %g", b.Attributes().Restitution)
	}
	if b.Dim() != 2 {
		t.Errorf("expected dimension 2, got %d", b.Dim())
	}
}

func TestBuilderRejectsWrongDimensions(t *testing.T) {
	tests := []struct {
		name string
		bl   *Builder
	}{
		{"position not meters", NewBuilder(quantity.MetersPerSecond(1, 2)).Mass(quantity.Kilograms(1))},
		{"velocity not m/s", NewBuilder(quantity.Position(1, 2)).Mass(quantity.Kilograms(1)).Velocity(quantity.Position(1, 2))},
		{"mass not kilograms", NewBuilder(quantity.Position(1, 2)).Mass(quantity.Meters(1))},
		{"charge not coulombs", NewBuilder(quantity.Position(1, 2)).Mass(quantity.Kilograms(1)).Charge(quantity.Meters(1))},
	}

	for _, tt := range tests {
		_, err := tt.bl.Build()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		var dimErr *quantity.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("%s: expected *quantity.DimensionError, got %T", tt.name, err)
		}
	}
}

func TestBuilderRejectsInvalidShape(t *testing.T) {
	if _, err := NewBuilder(quantity.Position(0, 0)).
		Mass(quantity.Kilograms(1)).
		Shape(Sphere{Radius: quantity.Meters(0)}).
		Build(); err == nil {
		t.Error("expected error for zero radius")
	}

	if _, err := NewBuilder(quantity.Position(0, 0)).
		Mass(quantity.Kilograms(1)).
		Shape(Sphere{Radius: quantity.Meters(-1)}).
		Build(); err == nil {
		t.Error("expected error for negative radius")
	}

	// Two vertices cannot enclose area in two dimensions.
	flat := Polygon{Points: []quantity.Vector{
		quantity.Position(0, 0), quantity.Position(1, 0),
	}}
	if _, err := NewBuilder(quantity.Position(0, 0)).
		Mass(quantity.Kilograms(1)).
		Shape(flat).
		Build(); err == nil {
		t.Error("expected error for too few polygon vertices")
	}
}

func TestBuilderRejectsLengthMismatch(t *testing.T) {
	if _, err := NewBuilder(quantity.Position(0, 0)).
		Mass(quantity.Kilograms(1)).
		Velocity(quantity.MetersPerSecond(1, 0, 0)).
		Build(); err == nil {
		t.Error("expected error for 3-component velocity on 2-D body")
	}
}

func TestBuilderRejectsNonPositiveMass(t *testing.T) {
	if _, err := NewBuilder(quantity.Position(0)).Mass(quantity.Kilograms(0)).Build(); err == nil {
		t.Error("expected error for zero mass")
	}
	if _, err := NewBuilder(quantity.Position(0)).Mass(quantity.Kilograms(-2)).Build(); err == nil {
		t.Error("expected error for negative mass")
	}
}

func TestIntegrate_UniformMotion(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(0, 0)).
		Mass(quantity.Kilograms(1)).
		Velocity(quantity.MetersPerSecond(1, 0)))

	zero := quantity.ZeroVector(2, quantity.Newton)
	for i := 0; i < 4; i++ {
		b.Integrate(zero, quantity.Seconds(0.5))
	}

	if math.Abs(b.Position().At(0)-2) > 1e-12 {
		t.Errorf("expected x=2 after 4 half-second steps, got %g", b.Position().At(0))
	}
	if math.Abs(b.Velocity().At(0)-1) > 1e-12 {
		t.Errorf("uniform motion should preserve velocity, got %v", b.Velocity())
	}
}

func TestIntegrate_RestStaysAtRest(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(3, -1)).Mass(quantity.Kilograms(2)))

	zero := quantity.ZeroVector(2, quantity.Newton)
	for i := 0; i < 100; i++ {
		b.Integrate(zero, quantity.Seconds(0.1))
	}

	if b.Position().At(0) != 3 || b.Position().At(1) != -1 {
		t.Errorf("force-free body at rest moved to %v", b.Position())
	}
}

func TestIntegrate_ConstantForce(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(0, 0)).Mass(quantity.Kilograms(2)))

	f := quantity.NewVector([]float64{8, 0}, quantity.Newton)
	b.Integrate(f, quantity.Seconds(1))

	// a = 4 m/s^2, history was all zero: v = a dt = 4, x = v dt = 4.
	if math.Abs(b.Velocity().At(0)-4) > 1e-12 {
		t.Errorf("expected velocity 4, got %g", b.Velocity().At(0))
	}
	if math.Abs(b.Position().At(0)-4) > 1e-12 {
		t.Errorf("expected position 4, got %g", b.Position().At(0))
	}
}

func TestIntegrate_StaticBodyNeverMoves(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(1, 1)).
		Mass(quantity.Kilograms(1)).
		Velocity(quantity.MetersPerSecond(5, 5)).
		Static(true))

	if err := b.ApplyForce(quantity.NewVector([]float64{100, 0}, quantity.Newton)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Integrate(quantity.NewVector([]float64{50, 50}, quantity.Newton), quantity.Seconds(1))

	if b.Position().At(0) != 1 || b.Position().At(1) != 1 {
		t.Errorf("static body moved to %v", b.Position())
	}
	if b.Velocity().At(0) != 5 {
		t.Errorf("static body velocity changed to %v", b.Velocity())
	}
}

func TestApplyForce_AccumulatesUntilStep(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(0)).Mass(quantity.Kilograms(1)))

	f := quantity.NewVector([]float64{3}, quantity.Newton)
	if err := b.ApplyForce(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.ApplyForce(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Integrate(quantity.ZeroVector(1, quantity.Newton), quantity.Seconds(1))
	if math.Abs(b.Velocity().At(0)-6) > 1e-12 {
		t.Errorf("expected accumulated force to give velocity 6, got %g", b.Velocity().At(0))
	}

	// The accumulator must be consumed by the step.
	b.Integrate(quantity.ZeroVector(1, quantity.Newton), quantity.Seconds(1))
	if b.Velocity().At(0) > 6+1e-12 {
		t.Errorf("pending force leaked into a second step: %g", b.Velocity().At(0))
	}
}

func TestApplyForce_WrongDimension(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(0)).Mass(quantity.Kilograms(1)))

	err := b.ApplyForce(quantity.Position(1))
	if err == nil {
		t.Fatal("expected error applying meters as force")
	}
	var dimErr *quantity.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("expected *quantity.DimensionError, got %T", err)
	}
}

func TestApplyImpulse_TranslatesHistory(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(0, 0)).
		Mass(quantity.Kilograms(1)).
		Velocity(quantity.MetersPerSecond(1, 0)))

	b.ApplyImpulse(quantity.MetersPerSecond(-2, 0))
	if b.Velocity().At(0) != -1 {
		t.Fatalf("expected velocity -1 after impulse, got %g", b.Velocity().At(0))
	}

	// The next force-free step must keep the post-impulse velocity: the
	// whole history moved, so the weighted average cannot drag it back.
	b.Integrate(quantity.ZeroVector(2, quantity.Newton), quantity.Seconds(1))
	if math.Abs(b.Velocity().At(0)+1) > 1e-12 {
		t.Errorf("history average diluted the impulse: velocity %g", b.Velocity().At(0))
	}
}

func TestMomentumAndKineticEnergy(t *testing.T) {
	b := mustBuild(t, NewBuilder(quantity.Position(0, 0)).
		Mass(quantity.Kilograms(2)).
		Velocity(quantity.MetersPerSecond(3, 4)))

	p := b.Momentum()
	if p.Dim() != quantity.Momentum {
		t.Errorf("momentum has dimension %s", p.Dim())
	}
	if p.At(0) != 6 || p.At(1) != 8 {
		t.Errorf("expected momentum (6, 8), got %v", p)
	}

	ke := b.KineticEnergy()
	if ke.Dim != quantity.Joule {
		t.Errorf("kinetic energy has dimension %s", ke.Dim)
	}
	if math.Abs(ke.Value-25) > 1e-12 {
		t.Errorf("expected 25 J, got %g", ke.Value)
	}
}

func TestBoundingBoxes(t *testing.T) {
	sphere := mustBuild(t, NewBuilder(quantity.Position(2, 3)).
		Mass(quantity.Kilograms(1)).
		Shape(Sphere{Radius: quantity.Meters(1)}))
	box := sphere.BoundingBox()
	if box.Min.At(0) != 1 || box.Min.At(1) != 2 || box.Max.At(0) != 3 || box.Max.At(1) != 4 {
		t.Errorf("sphere box wrong: min %v max %v", box.Min, box.Max)
	}

	tri := Polygon{Points: []quantity.Vector{
		quantity.Position(-1, 0), quantity.Position(1, 0), quantity.Position(0, 2),
	}}
	poly := mustBuild(t, NewBuilder(quantity.Position(10, 10)).
		Mass(quantity.Kilograms(1)).
		Shape(tri))
	box = poly.BoundingBox()
	if box.Min.At(0) != 9 || box.Max.At(0) != 11 || box.Min.At(1) != 10 || box.Max.At(1) != 12 {
		t.Errorf("polygon box wrong: min %v max %v", box.Min, box.Max)
	}

	pt := mustBuild(t, NewBuilder(quantity.Position(5, 5)).Mass(quantity.Kilograms(1)))
	box = pt.BoundingBox()
	if !box.Min.Sub(box.Max).IsZero() {
		t.Errorf("point box should be degenerate: min %v max %v", box.Min, box.Max)
	}
}

func TestBoxOverlaps(t *testing.T) {
	mk := func(minX, minY, maxX, maxY float64) Box {
		return Box{Min: quantity.Position(minX, minY), Max: quantity.Position(maxX, maxY)}
	}

	tests := []struct {
		name     string
		a, b     Box
		overlaps bool
	}{
		{"separated", mk(0, 0, 1, 1), mk(2, 2, 3, 3), false},
		{"overlapping", mk(0, 0, 2, 2), mk(1, 1, 3, 3), true},
		{"touching edges count", mk(0, 0, 1, 1), mk(1, 0, 2, 1), true},
		{"contained", mk(0, 0, 10, 10), mk(4, 4, 5, 5), true},
		{"overlap on one axis only", mk(0, 0, 1, 1), mk(0.5, 5, 1.5, 6), false},
	}

	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.overlaps, got)
		}
		if got := tt.b.Overlaps(tt.a); got != tt.overlaps {
			t.Errorf("%s (swapped): expected %v, got %v", tt.name, tt.overlaps, got)
		}
	}
}
