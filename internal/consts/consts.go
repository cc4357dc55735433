package consts

// Physical constants used by every probe-size calculation. This is the one
// canonical set for the process; m_e and c are the rounded values the
// reference analyses were produced with and are kept as-is.
const (
	PLANCK        = 6.626e-34 // Planck constant (J s)
	ELECTRON_MASS = 9.10e-31  // Electron rest mass (kg)
	CHARGE        = 1.6e-19   // Elementary charge (C)
	LIGHT_SPEED   = 2.99e8    // Speed of light (m/s)
)

// Unit conversion factors to SI.
const (
	EV    = CHARGE       // eV -> J
	KEV   = 1e3 * CHARGE // keV -> J
	PICO  = 1e-12        // pA -> A
	MILLI = 1e-3         // mrad -> rad, mm -> m
)
