package quantity

// CODATA 2018 values for the constants the force model uses.
var (
	// G is the Newtonian constant of gravitation.
	G = Scalar{6.6743e-11, Meter.Pow(3).Div(Kilogram).Div(Second.Pow(2))}

	// Ke is the Coulomb constant 1/(4 pi eps0).
	Ke = Scalar{8.9875517923e9, Newton.Mul(Meter.Div(Coulomb).Pow(2))}

	// C is the speed of light in vacuum, the hard velocity ceiling under
	// the relativistic build.
	C = Scalar{299792458.0, Velocity}

	// C2 is C squared, precomputed for kinetic energy and gamma.
	C2 = C.Squared()

	// Eps0 is the vacuum electric permittivity.
	Eps0 = Scalar{8.8541878128e-12, Coulomb.Div(Volt).Div(Meter)}

	// Mu0 is the vacuum magnetic permeability.
	Mu0 = Scalar{1.25663706212e-6, Newton.Div(Ampere.Pow(2))}

	// ElementaryCharge is the charge of the proton.
	ElementaryCharge = Scalar{1.602176634e-19, Coulomb}

	// ElectronMass and ProtonMass are rest masses.
	ElectronMass = Scalar{9.1093837015e-31, Kilogram}
	ProtonMass   = Scalar{1.67262192369e-27, Kilogram}

	// StandardGravity is the conventional value for the acceleration of
	// free fall at the surface of the Earth.
	StandardGravity = Scalar{9.80665, Acceleration}
)
