package quantity

// SI base dimensions.
var (
	None     = Dimension{}
	Meter    = Dimension{Length: 1}
	Kilogram = Dimension{Mass: 1}
	Second   = Dimension{Time: 1}
	Ampere   = Dimension{Current: 1}
	Kelvin   = Dimension{Temperature: 1}
	Mole     = Dimension{Amount: 1}
	Candela  = Dimension{Intensity: 1}
)

// Derived dimensions used across the simulator.
var (
	Hertz   = None.Div(Second)
	Newton  = Kilogram.Mul(Meter).Div(Second.Pow(2))
	Pascal  = Newton.Div(Meter.Pow(2))
	Joule   = Newton.Mul(Meter)
	Watt    = Joule.Div(Second)
	Coulomb = Ampere.Mul(Second)
	Volt    = Watt.Div(Ampere)
	Weber   = Volt.Mul(Second)
	Tesla   = Weber.Div(Meter.Pow(2))

	Velocity      = Meter.Div(Second)
	Acceleration  = Meter.Div(Second.Pow(2))
	Momentum      = Newton.Mul(Second)
	ElectricField = Volt.Div(Meter)
	Area          = Meter.Pow(2)
)

// Shorthand constructors for the dimensions that appear in almost every
// scene description and test.

func Meters(v float64) Scalar { return Scalar{v, Meter} }

func Kilograms(v float64) Scalar { return Scalar{v, Kilogram} }

func Seconds(v float64) Scalar { return Scalar{v, Second} }

func Coulombs(v float64) Scalar { return Scalar{v, Coulomb} }

func Position(comps ...float64) Vector { return NewVector(comps, Meter) }

func MetersPerSecond(comps ...float64) Vector { return NewVector(comps, Velocity) }
