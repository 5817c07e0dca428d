package quantity

import (
	"fmt"
	"sort"
	"strings"
)

// Dimension is a physical dimension expressed as integer exponents over the
// seven SI base quantities. Scalars and vectors carry one; arithmetic that
// would mix incompatible dimensions is rejected.
type Dimension struct {
	Length      int
	Mass        int
	Time        int
	Current     int
	Temperature int
	Amount      int
	Intensity   int
}

func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length + o.Length,
		Mass:        d.Mass + o.Mass,
		Time:        d.Time + o.Time,
		Current:     d.Current + o.Current,
		Temperature: d.Temperature + o.Temperature,
		Amount:      d.Amount + o.Amount,
		Intensity:   d.Intensity + o.Intensity,
	}
}

func (d Dimension) Div(o Dimension) Dimension {
	return d.Mul(o.Recip())
}

func (d Dimension) Recip() Dimension {
	return Dimension{
		Length:      -d.Length,
		Mass:        -d.Mass,
		Time:        -d.Time,
		Current:     -d.Current,
		Temperature: -d.Temperature,
		Amount:      -d.Amount,
		Intensity:   -d.Intensity,
	}
}

func (d Dimension) Pow(n int) Dimension {
	return Dimension{
		Length:      d.Length * n,
		Mass:        d.Mass * n,
		Time:        d.Time * n,
		Current:     d.Current * n,
		Temperature: d.Temperature * n,
		Amount:      d.Amount * n,
		Intensity:   d.Intensity * n,
	}
}

// Root divides every exponent by n. The result must stay in integer
// exponents, so it panics when any exponent is not divisible by n.
func (d Dimension) Root(n int) Dimension {
	for _, e := range d.exponents() {
		if e%n != 0 {
			panic(fmt.Sprintf("quantity: dimension %s has no integer root %d", d, n))
		}
	}
	return Dimension{
		Length:      d.Length / n,
		Mass:        d.Mass / n,
		Time:        d.Time / n,
		Current:     d.Current / n,
		Temperature: d.Temperature / n,
		Amount:      d.Amount / n,
		Intensity:   d.Intensity / n,
	}
}

func (d Dimension) exponents() [7]int {
	return [7]int{d.Length, d.Mass, d.Time, d.Current, d.Temperature, d.Amount, d.Intensity}
}

// String renders the dimension in SI unit symbols, numerator first:
// acceleration prints as "m / s^2", dimensionless as the empty string.
func (d Dimension) String() string {
	if d == (Dimension{}) {
		return ""
	}

	type term struct {
		sym string
		exp int
	}
	terms := []term{
		{"s", d.Time},
		{"m", d.Length},
		{"kg", d.Mass},
		{"A", d.Current},
		{"K", d.Temperature},
		{"mol", d.Amount},
		{"cd", d.Intensity},
	}
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].exp > terms[j].exp })

	var b strings.Builder
	denominator := false
	for _, t := range terms {
		if t.exp == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		exp := t.exp
		if exp < 0 {
			if !denominator {
				denominator = true
				b.WriteString("/ ")
			}
			exp = -exp
		}
		if exp == 1 {
			b.WriteString(t.sym)
		} else {
			fmt.Fprintf(&b, "%s^%d", t.sym, exp)
		}
	}
	return b.String()
}

// DimensionError reports a quantity holding the wrong physical dimension.
// It is returned from validating constructors and field setters; internal
// arithmetic on already-validated values panics instead.
type DimensionError struct {
	Expected Dimension
	Found    Dimension
	Context  string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("quantity: expected dimension %q for %s, found %q",
		e.Expected, e.Context, e.Found)
}
