package quantity

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a fixed-length float64 vector whose components share one
// physical dimension. Length and dimension are set at construction and
// never change; arithmetic between mismatched vectors panics, with Checked
// variants for recoverable boundaries.
type Vector struct {
	comps []float64
	dim   Dimension
}

// NewVector copies comps into a vector of dimension d.
func NewVector(comps []float64, d Dimension) Vector {
	c := make([]float64, len(comps))
	copy(c, comps)
	return Vector{comps: c, dim: d}
}

// ZeroVector returns the n-component zero vector of dimension d.
func ZeroVector(n int, d Dimension) Vector {
	return Vector{comps: make([]float64, n), dim: d}
}

func (v Vector) Len() int        { return len(v.comps) }
func (v Vector) Dim() Dimension  { return v.dim }
func (v Vector) At(i int) float64 { return v.comps[i] }

// Components returns a copy of the component slice.
func (v Vector) Components() []float64 {
	c := make([]float64, len(v.comps))
	copy(c, v.comps)
	return c
}

func (v Vector) IsZero() bool {
	for _, x := range v.comps {
		if math.Abs(x) > epsilon {
			return false
		}
	}
	return true
}

func (v Vector) IsValid() bool {
	for _, x := range v.comps {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) CheckedAdd(o Vector) (Vector, bool) {
	if v.dim != o.dim || len(v.comps) != len(o.comps) {
		return Vector{}, false
	}
	c := make([]float64, len(v.comps))
	for i := range c {
		c[i] = v.comps[i] + o.comps[i]
	}
	return Vector{comps: c, dim: v.dim}, true
}

func (v Vector) CheckedSub(o Vector) (Vector, bool) {
	if v.dim != o.dim || len(v.comps) != len(o.comps) {
		return Vector{}, false
	}
	c := make([]float64, len(v.comps))
	for i := range c {
		c[i] = v.comps[i] - o.comps[i]
	}
	return Vector{comps: c, dim: v.dim}, true
}

func (v Vector) Add(o Vector) Vector {
	r, ok := v.CheckedAdd(o)
	if !ok {
		panic(fmt.Sprintf("quantity: cannot add %v and %v", v, o))
	}
	return r
}

func (v Vector) Sub(o Vector) Vector {
	r, ok := v.CheckedSub(o)
	if !ok {
		panic(fmt.Sprintf("quantity: cannot subtract %v from %v", o, v))
	}
	return r
}

func (v Vector) Neg() Vector {
	c := make([]float64, len(v.comps))
	for i := range c {
		c[i] = -v.comps[i]
	}
	return Vector{comps: c, dim: v.dim}
}

// Scale multiplies every component by a dimensionless factor.
func (v Vector) Scale(f float64) Vector {
	c := make([]float64, len(v.comps))
	for i := range c {
		c[i] = v.comps[i] * f
	}
	return Vector{comps: c, dim: v.dim}
}

// MulScalar scales the components by s.Value and multiplies the dimensions.
func (v Vector) MulScalar(s Scalar) Vector {
	c := make([]float64, len(v.comps))
	for i := range c {
		c[i] = v.comps[i] * s.Value
	}
	return Vector{comps: c, dim: v.dim.Mul(s.Dim)}
}

func (v Vector) DivScalar(s Scalar) Vector {
	c := make([]float64, len(v.comps))
	for i := range c {
		c[i] = v.comps[i] / s.Value
	}
	return Vector{comps: c, dim: v.dim.Div(s.Dim)}
}

// Dot panics when the vectors differ in length. The dimensions multiply, so
// vectors of different dimensions combine freely.
func (v Vector) Dot(o Vector) Scalar {
	if len(v.comps) != len(o.comps) {
		panic(fmt.Sprintf("quantity: dot of %d- and %d-component vectors", len(v.comps), len(o.comps)))
	}
	sum := 0.0
	for i := range v.comps {
		sum += v.comps[i] * o.comps[i]
	}
	return Scalar{sum, v.dim.Mul(o.dim)}
}

func (v Vector) Magnitude() Scalar {
	sum := 0.0
	for _, x := range v.comps {
		sum += x * x
	}
	return Scalar{math.Sqrt(sum), v.dim}
}

func (v Vector) MagnitudeSquared() Scalar {
	sum := 0.0
	for _, x := range v.comps {
		sum += x * x
	}
	return Scalar{sum, v.dim.Pow(2)}
}

// Normalized returns the dimensionless unit vector along v. The zero vector
// normalizes to zero rather than NaN.
func (v Vector) Normalized() Vector {
	m := v.Magnitude()
	if m.IsZero() {
		return ZeroVector(len(v.comps), Dimension{})
	}
	return v.DivScalar(m)
}

// Cross is defined for three components only.
func (v Vector) Cross(o Vector) Vector {
	if len(v.comps) != 3 || len(o.comps) != 3 {
		panic(fmt.Sprintf("quantity: cross of %d- and %d-component vectors", len(v.comps), len(o.comps)))
	}
	return Vector{
		comps: []float64{
			v.comps[1]*o.comps[2] - v.comps[2]*o.comps[1],
			v.comps[2]*o.comps[0] - v.comps[0]*o.comps[2],
			v.comps[0]*o.comps[1] - v.comps[1]*o.comps[0],
		},
		dim: v.dim.Mul(o.dim),
	}
}

// Triple evaluates the vector triple product (a x b) x c through the
// identity b(a.c) - a(b.c), which needs only dot products and therefore
// works in any number of dimensions.
func Triple(a, b, c Vector) Vector {
	return b.MulScalar(a.Dot(c)).Sub(a.MulScalar(b.Dot(c)))
}

// Expect returns a *DimensionError when the vector does not carry dim.
func (v Vector) Expect(dim Dimension, name string) error {
	if v.dim != dim {
		return &DimensionError{Expected: dim, Found: v.dim, Context: name}
	}
	return nil
}

func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.comps {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(']')
	if v.dim != (Dimension{}) {
		b.WriteByte(' ')
		b.WriteString(v.dim.String())
	}
	return b.String()
}
