// Package format defines the closed set of precision levels supported by the
// loq codec and their decimal tolerances.
package format

// Precision identifies a decimal tolerance level for lossy quantization.
//
// The enumeration is closed and intentionally non-contiguous: 9, 10 and 11
// decimal places are absent. Each level maps to a fixed positive tolerance;
// the mapping is total and never fails.
type Precision uint8

const (
	Precision13 Precision = 13 // Precision13 tolerates 1e-13 absolute error.
	Precision12 Precision = 12 // Precision12 tolerates 1e-12 absolute error.
	Precision8  Precision = 8  // Precision8 tolerates 1e-8 absolute error.
	Precision7  Precision = 7  // Precision7 tolerates 1e-7 absolute error.
	Precision6  Precision = 6  // Precision6 tolerates 1e-6 absolute error.
	Precision5  Precision = 5  // Precision5 tolerates 1e-5 absolute error.
	Precision4  Precision = 4  // Precision4 tolerates 1e-4 absolute error.
	Precision3  Precision = 3  // Precision3 tolerates 1e-3 absolute error.
	Precision2  Precision = 2  // Precision2 tolerates 1e-2 absolute error.
	Precision1  Precision = 1  // Precision1 tolerates 1e-1 absolute error.
)

// tolerances maps each precision level to its decimal tolerance.
var tolerances = map[Precision]float64{
	Precision13: 1e-13,
	Precision12: 1e-12,
	Precision8:  1e-8,
	Precision7:  1e-7,
	Precision6:  1e-6,
	Precision5:  1e-5,
	Precision4:  1e-4,
	Precision3:  1e-3,
	Precision2:  1e-2,
	Precision1:  1e-1,
}

// Tolerance returns the maximum acceptable absolute reconstruction error for
// the precision level.
//
// Unknown levels fall back to Precision4 (1e-4) so the function stays total;
// use Valid to reject levels outside the enumeration.
func (p Precision) Tolerance() float64 {
	if t, ok := tolerances[p]; ok {
		return t
	}

	return tolerances[Precision4]
}

// Valid reports whether p is one of the defined precision levels.
func (p Precision) Valid() bool {
	_, ok := tolerances[p]
	return ok
}

func (p Precision) String() string {
	switch p {
	case Precision13:
		return "Decimal13"
	case Precision12:
		return "Decimal12"
	case Precision8:
		return "Decimal8"
	case Precision7:
		return "Decimal7"
	case Precision6:
		return "Decimal6"
	case Precision5:
		return "Decimal5"
	case Precision4:
		return "Decimal4"
	case Precision3:
		return "Decimal3"
	case Precision2:
		return "Decimal2"
	case Precision1:
		return "Decimal1"
	default:
		return "Unknown"
	}
}

// Levels returns all defined precision levels ordered from the finest
// tolerance to the coarsest.
func Levels() []Precision {
	return []Precision{
		Precision13, Precision12, Precision8, Precision7, Precision6,
		Precision5, Precision4, Precision3, Precision2, Precision1,
	}
}
