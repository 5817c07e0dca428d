package universe

import (
	"context"

	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// Observer watches a universe between steps. The metrics package provides
// implementations; Run collects their final values by name.
type Observer interface {
	Name() string
	Observe(u *Universe)
	Value() float64
	Reset()
}

// Result is a recorded trajectory: one row per step plus the initial state.
// Each row holds the position components then the velocity components of
// every body, in insertion order.
type Result struct {
	Times   []float64
	States  [][]float64
	Metrics map[string]float64
}

// Run advances the universe by steps fixed-size steps, recording the state
// after each one. Observers are reset first, then see the universe before
// every step and once more at the end; their final values land in
// Result.Metrics. A cancelled context returns the partial result with the
// context's error.
func (u *Universe) Run(ctx context.Context, dt quantity.Scalar, steps int, observers ...Observer) (*Result, error) {
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		States:  make([][]float64, 0, steps+1),
		Metrics: make(map[string]float64, len(observers)),
	}

	for _, o := range observers {
		o.Reset()
	}

	result.Times = append(result.Times, u.time.Value)
	result.States = append(result.States, u.flatState())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, o := range observers {
			o.Observe(u)
		}

		u.Step(dt)

		result.Times = append(result.Times, u.time.Value)
		result.States = append(result.States, u.flatState())
	}

	for _, o := range observers {
		o.Observe(u)
		result.Metrics[o.Name()] = o.Value()
	}

	return result, nil
}

func (u *Universe) flatState() []float64 {
	state := make([]float64, 0, 2*u.dim*len(u.bodies))
	for _, b := range u.bodies {
		pos := b.Position()
		for i := 0; i < u.dim; i++ {
			state = append(state, pos.At(i))
		}
		vel := b.Velocity()
		for i := 0; i < u.dim; i++ {
			state = append(state, vel.At(i))
		}
	}
	return state
}
