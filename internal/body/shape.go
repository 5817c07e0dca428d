package body

import (
	"fmt"

	"github.com/Bunch-of-cells/oganesson/internal/quantity"
)

// Shape is the closed set of collider geometries: [Point], [Sphere] and
// [Polygon]. The set is sealed so collision dispatch stays exhaustive.
type Shape interface {
	boundingBox(center quantity.Vector) Box
	validate(dim int) error
}

// Point is the collider-less sentinel. Point bodies feel forces and
// integrate but never collide with anything.
type Point struct{}

func (Point) boundingBox(center quantity.Vector) Box {
	return Box{Min: center, Max: center}
}

func (Point) validate(int) error { return nil }

// Sphere collides with everything through either the closed-form sphere
// test or its support function.
type Sphere struct {
	Radius quantity.Scalar
}

func (s Sphere) boundingBox(center quantity.Vector) Box {
	min := center.Components()
	max := center.Components()
	for i := range min {
		min[i] -= s.Radius.Value
		max[i] += s.Radius.Value
	}
	return Box{
		Min: quantity.NewVector(min, center.Dim()),
		Max: quantity.NewVector(max, center.Dim()),
	}
}

func (s Sphere) validate(int) error {
	if err := s.Radius.Expect(quantity.Meter, "sphere radius"); err != nil {
		return err
	}
	if s.Radius.Value <= 0 {
		return fmt.Errorf("body: sphere radius must be positive, got %v", s.Radius)
	}
	return nil
}

// Polygon is a convex hull over body-local vertex offsets. It needs more
// vertices than spatial dimensions to enclose volume.
type Polygon struct {
	Points []quantity.Vector
}

func (p Polygon) boundingBox(center quantity.Vector) Box {
	min := center.Add(p.Points[0]).Components()
	max := center.Add(p.Points[0]).Components()
	for _, pt := range p.Points[1:] {
		w := center.Add(pt)
		for i := range min {
			if w.At(i) < min[i] {
				min[i] = w.At(i)
			}
			if w.At(i) > max[i] {
				max[i] = w.At(i)
			}
		}
	}
	return Box{
		Min: quantity.NewVector(min, center.Dim()),
		Max: quantity.NewVector(max, center.Dim()),
	}
}

func (p Polygon) validate(dim int) error {
	if len(p.Points) <= dim {
		return fmt.Errorf("body: polygon needs more than %d vertices in %d dimensions, got %d",
			dim, dim, len(p.Points))
	}
	for i, pt := range p.Points {
		if pt.Len() != dim {
			return fmt.Errorf("body: polygon vertex %d has %d components, expected %d",
				i, pt.Len(), dim)
		}
		if err := pt.Expect(quantity.Meter, fmt.Sprintf("polygon vertex %d", i)); err != nil {
			return err
		}
	}
	return nil
}
