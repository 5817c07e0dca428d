package quantity

import (
	"fmt"
	"math"
)

// IEEE 754 double machine epsilon, the zero threshold for values and
// vector components.
const epsilon = 2.220446049250313e-16

// Scalar is a float64 tagged with a physical dimension.
type Scalar struct {
	Value float64
	Dim   Dimension
}

func NewScalar(v float64, d Dimension) Scalar {
	return Scalar{Value: v, Dim: d}
}

func (s Scalar) IsZero() bool {
	return math.Abs(s.Value) <= epsilon
}

// CheckedAdd adds two scalars of the same dimension. It reports false when
// the dimensions differ, leaving the caller to recover.
func (s Scalar) CheckedAdd(o Scalar) (Scalar, bool) {
	if s.Dim != o.Dim {
		return Scalar{}, false
	}
	return Scalar{s.Value + o.Value, s.Dim}, true
}

func (s Scalar) CheckedSub(o Scalar) (Scalar, bool) {
	if s.Dim != o.Dim {
		return Scalar{}, false
	}
	return Scalar{s.Value - o.Value, s.Dim}, true
}

// Add panics when the dimensions differ. Use [Scalar.CheckedAdd] at
// boundaries where mismatched input is recoverable.
func (s Scalar) Add(o Scalar) Scalar {
	r, ok := s.CheckedAdd(o)
	if !ok {
		panic(fmt.Sprintf("quantity: cannot add %v and %v", s, o))
	}
	return r
}

func (s Scalar) Sub(o Scalar) Scalar {
	r, ok := s.CheckedSub(o)
	if !ok {
		panic(fmt.Sprintf("quantity: cannot subtract %v from %v", o, s))
	}
	return r
}

func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar{s.Value * o.Value, s.Dim.Mul(o.Dim)}
}

func (s Scalar) Div(o Scalar) Scalar {
	return Scalar{s.Value / o.Value, s.Dim.Div(o.Dim)}
}

// Scale multiplies the value by a dimensionless factor.
func (s Scalar) Scale(f float64) Scalar {
	return Scalar{s.Value * f, s.Dim}
}

func (s Scalar) Neg() Scalar {
	return Scalar{-s.Value, s.Dim}
}

func (s Scalar) Abs() Scalar {
	return Scalar{math.Abs(s.Value), s.Dim}
}

func (s Scalar) Pow(n int) Scalar {
	return Scalar{math.Pow(s.Value, float64(n)), s.Dim.Pow(n)}
}

func (s Scalar) Squared() Scalar {
	return Scalar{s.Value * s.Value, s.Dim.Pow(2)}
}

// Sqrt takes the square root of value and dimension both; it panics when the
// dimension has odd exponents.
func (s Scalar) Sqrt() Scalar {
	return Scalar{math.Sqrt(s.Value), s.Dim.Root(2)}
}

func (s Scalar) Recip() Scalar {
	return Scalar{1 / s.Value, s.Dim.Recip()}
}

// Expect returns a *DimensionError when the scalar does not carry dim.
// The name identifies the offending quantity in the error message.
func (s Scalar) Expect(dim Dimension, name string) error {
	if s.Dim != dim {
		return &DimensionError{Expected: dim, Found: s.Dim, Context: name}
	}
	return nil
}

func (s Scalar) String() string {
	if s.Dim == (Dimension{}) {
		return fmt.Sprintf("%g", s.Value)
	}
	return fmt.Sprintf("%g %s", s.Value, s.Dim)
}
