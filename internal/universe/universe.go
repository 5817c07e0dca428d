package universe

import (
	"errors"
	"fmt"

	"github.com/Bunch-of-cells/oganesson/internal/body"
	"github.com/Bunch-of-cells/oganesson/internal/collision"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// ID identifies a body within a universe. IDs are handed out in insertion
// order and never reused, so deleting a body cannot alias another.
type ID int

// ErrUnknownObject is returned when an ID does not refer to a live body.
var ErrUnknownObject = errors.New("universe: unknown object id")

// Universe owns a set of bodies in a fixed number of spatial dimensions and
// advances them step by step: force accumulation, integration, collision
// detection, then resolution by the registered solvers.
type Universe struct {
	dim      int
	time     quantity.Scalar
	nextID   ID
	ids      []ID
	bodies   []*body.Body
	gravity  quantity.Vector
	electric quantity.Vector
	magnetic quantity.Vector
	solvers  []Solver
	workers  int
}

// New creates an empty universe with dim spatial dimensions. The dimension
// is fixed for the universe's lifetime; every body and field it accepts
// must match it.
func New(dim int) *Universe {
	if dim < 1 {
		panic(fmt.Sprintf("universe: dimension must be positive, got %d", dim))
	}
	return &Universe{
		dim:      dim,
		time:     quantity.Seconds(0),
		gravity:  quantity.ZeroVector(dim, quantity.Acceleration),
		electric: quantity.ZeroVector(dim, quantity.ElectricField),
		magnetic: quantity.ZeroVector(dim, quantity.Tesla),
		solvers:  []Solver{ImpulseSolver{}},
		workers:  1,
	}
}

func (u *Universe) Dim() int { return u.dim }

// Time reports the simulated time accumulated over all steps so far.
func (u *Universe) Time() quantity.Scalar { return u.time }

// SetWorkers sets how many goroutines share the per-body force and
// integration work. Values below one mean serial. The result of a step does
// not depend on the worker count.
func (u *Universe) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	u.workers = n
}

// AddObject inserts a body and returns its ID.
func (u *Universe) AddObject(b *body.Body) (ID, error) {
	if b == nil {
		return 0, errors.New("universe: nil body")
	}
	if b.Dim() != u.dim {
		return 0, fmt.Errorf("universe: body is %d-dimensional, want %d", b.Dim(), u.dim)
	}
	id := u.nextID
	u.nextID++
	u.ids = append(u.ids, id)
	u.bodies = append(u.bodies, b)
	return id, nil
}

// DeleteObject removes the body with the given ID and returns it.
func (u *Universe) DeleteObject(id ID) (*body.Body, error) {
	for i, have := range u.ids {
		if have == id {
			b := u.bodies[i]
			u.ids = append(u.ids[:i], u.ids[i+1:]...)
			u.bodies = append(u.bodies[:i], u.bodies[i+1:]...)
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownObject, id)
}

// RemoveObjects deletes every body the predicate matches and reports how
// many were removed.
func (u *Universe) RemoveObjects(pred func(*body.Body) bool) int {
	removed := 0
	ids := u.ids[:0]
	bodies := u.bodies[:0]
	for i, b := range u.bodies {
		if pred(b) {
			removed++
			continue
		}
		ids = append(ids, u.ids[i])
		bodies = append(bodies, b)
	}
	u.ids = ids
	u.bodies = bodies
	return removed
}

// Objects returns the bodies currently in the universe, in insertion order.
// The slice is the caller's; the bodies are shared.
func (u *Universe) Objects() []*body.Body {
	out := make([]*body.Body, len(u.bodies))
	copy(out, u.bodies)
	return out
}

// Gravity returns the uniform gravitational acceleration field.
func (u *Universe) Gravity() quantity.Vector { return u.gravity }

// ElectricField returns the uniform electric field.
func (u *Universe) ElectricField() quantity.Vector { return u.electric }

// MagneticField returns the uniform magnetic field.
func (u *Universe) MagneticField() quantity.Vector { return u.magnetic }

// SetGravity sets the uniform gravitational acceleration field.
func (u *Universe) SetGravity(g quantity.Vector) error {
	if err := g.Expect(quantity.Acceleration, "gravity"); err != nil {
		return err
	}
	if g.Len() != u.dim {
		return fmt.Errorf("universe: gravity is %d-dimensional, want %d", g.Len(), u.dim)
	}
	u.gravity = g
	return nil
}

// SetElectricField sets the uniform electric field.
func (u *Universe) SetElectricField(e quantity.Vector) error {
	if err := e.Expect(quantity.ElectricField, "electric field"); err != nil {
		return err
	}
	if e.Len() != u.dim {
		return fmt.Errorf("universe: electric field is %d-dimensional, want %d", e.Len(), u.dim)
	}
	u.electric = e
	return nil
}

// SetMagneticField sets the uniform magnetic field. The field is validated
// for units here; applying a nonzero field is only defined in three
// dimensions and panics anywhere else.
func (u *Universe) SetMagneticField(b quantity.Vector) error {
	if err := b.Expect(quantity.Tesla, "magnetic field"); err != nil {
		return err
	}
	if b.Len() != u.dim {
		return fmt.Errorf("universe: magnetic field is %d-dimensional, want %d", b.Len(), u.dim)
	}
	u.magnetic = b
	return nil
}

// RegisterSolver appends a collision solver. Solvers run once per step in
// registration order, each seeing the full collision list. A new universe
// starts with [ImpulseSolver] already registered; SetSolvers replaces the
// whole list.
func (u *Universe) RegisterSolver(s Solver) {
	u.solvers = append(u.solvers, s)
}

// SetSolvers replaces the solver list. An empty list disables resolution:
// collisions are still detected and then discarded.
func (u *Universe) SetSolvers(solvers ...Solver) {
	u.solvers = solvers
}

// Step advances the simulation by dt: forces are accumulated from the
// pre-step state, every body integrates, and collisions among the new
// positions are handed to the registered solvers. dt must carry time units,
// anything else is a programming error and panics.
func (u *Universe) Step(dt quantity.Scalar) {
	if err := dt.Expect(quantity.Second, "dt"); err != nil {
		panic(err)
	}

	forces := u.accumulateForces()

	parallelFor(len(u.bodies), u.workers, minParallelChunk, func(start, end int) {
		for i := start; i < end; i++ {
			u.bodies[i].Integrate(forces[i], dt)
		}
	})

	collisions := u.detectCollisions()
	for _, s := range u.solvers {
		s.Solve(u.bodies, collisions, dt)
	}

	u.time = u.time.Add(dt)
}

// accumulateForces computes the net force on every body from the pre-step
// snapshot: pairwise gravity and Coulomb interaction plus the uniform
// fields. Coincident bodies exert no pair force on each other.
func (u *Universe) accumulateForces() []quantity.Vector {
	forces := make([]quantity.Vector, len(u.bodies))
	parallelFor(len(u.bodies), u.workers, minParallelChunk, func(start, end int) {
		for i := start; i < end; i++ {
			b := u.bodies[i]
			f := quantity.ZeroVector(u.dim, quantity.Newton)
			for j, other := range u.bodies {
				if j == i {
					continue
				}
				r := other.Position().Sub(b.Position())
				d2 := r.MagnitudeSquared()
				if d2.IsZero() {
					continue
				}
				attract := quantity.G.Mul(b.Mass()).Mul(other.Mass())
				repel := quantity.Ke.Mul(b.Charge()).Mul(other.Charge())
				f = f.Add(r.Normalized().MulScalar(attract.Sub(repel).Div(d2)))
			}
			if !u.gravity.IsZero() {
				f = f.Add(u.gravity.MulScalar(b.Mass()))
			}
			if !u.electric.IsZero() {
				f = f.Add(u.electric.MulScalar(b.Charge()))
			}
			if !u.magnetic.IsZero() {
				f = f.Add(b.Velocity().Cross(u.magnetic).MulScalar(b.Charge()))
			}
			forces[i] = f
		}
	})
	return forces
}

// detectCollisions rebuilds every bounding box from the freshly integrated
// positions, runs the broad phase, and confirms each candidate pair with
// the narrow phase.
func (u *Universe) detectCollisions() []collision.Collision {
	if len(u.bodies) < 2 {
		return nil
	}
	entries := make([]collision.BoxEntry, len(u.bodies))
	for i, b := range u.bodies {
		entries[i] = collision.BoxEntry{Index: i, Box: b.BoundingBox()}
	}
	var out []collision.Collision
	for _, pair := range collision.PossibleCollisions(entries, u.dim) {
		contact, hit := collision.Collide(u.bodies[pair[0]], u.bodies[pair[1]])
		if hit {
			out = append(out, collision.Collision{A: pair[0], B: pair[1], Contact: contact})
		}
	}
	return out
}
