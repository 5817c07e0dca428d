// Package quantity provides dimension-checked physical arithmetic.
//
// Every value carries its SI dimension and arithmetic verifies compatibility
// at runtime:
//
//   - [Dimension]: integer exponents over the seven SI base quantities
//   - [Scalar]: a float64 tagged with a dimension
//   - [Vector]: an N-component vector whose components share one dimension
//
// Additive operations come in two flavors. Add and Sub panic on mismatched
// dimensions and belong on internal paths whose inputs were validated at
// construction; CheckedAdd and CheckedSub report a boolean and belong at
// boundaries where bad input is recoverable:
//
//	sum, ok := a.CheckedAdd(b)
//	if !ok {
//	    // dimensions differ, handle it
//	}
//
// Multiplicative operations never fail: dimensions multiply and divide
// freely, so force/mass is simply acceleration.
//
// # Units and constants
//
// Named dimensions ([Meter], [Newton], [Tesla], ...) and physical constants
// ([G], [Ke], [C]) cover what the force model needs. Vectors of length N
// work in N spatial dimensions throughout; only [Vector.Cross] is
// restricted to three.
package quantity
