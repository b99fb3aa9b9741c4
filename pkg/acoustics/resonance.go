package acoustics

import (
	"math"
	"sort"
)

// SpeedOfSound returns the speed of sound in air at the given
// temperature:
//
//	v = 331.3 * sqrt(1 + T/273.15)
//
// The formula is undefined below absolute zero; such input yields
// ErrInvalidTemperature.
func SpeedOfSound(temperatureC float64) (float64, error) {
	if temperatureC < AbsoluteZeroC {
		return 0, ErrInvalidTemperature
	}

	return 331.3 * math.Sqrt(1+temperatureC/273.15), nil
}

// Fundamental returns the fundamental resonance frequency of a
// holeless pipe:
//
//	open both ends:    f0 = v / (2 L)
//	closed at one end: f0 = v / (4 L)
func Fundamental(speedOfSound, length float64, end EndCondition) (float64, error) {
	if speedOfSound <= 0 {
		return 0, ErrInvalidSpeed
	}

	if length <= 0 {
		return 0, ErrInvalidLength
	}

	switch end {
	case OpenBoth:
		return speedOfSound / (2 * length), nil
	case ClosedOne:
		return speedOfSound / (4 * length), nil
	default:
		return 0, ErrUnknownEndCondition
	}
}

// Harmonics returns the first count resonant frequencies above and
// including the fundamental. An open pipe sustains every integer
// multiple (f, 2f, 3f, ...); a closed pipe only the odd multiples
// (f, 3f, 5f, ...).
func Harmonics(fundamental float64, count int, end EndCondition) ([]float64, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	out := make([]float64, count)

	switch end {
	case OpenBoth:
		for n := range out {
			out[n] = fundamental * float64(n+1)
		}
	case ClosedOne:
		for n := range out {
			out[n] = fundamental * float64(2*n+1)
		}
	default:
		return nil, ErrUnknownEndCondition
	}

	return out, nil
}

// EffectiveLength returns the resonating length of the pipe once side
// holes are taken into account. With no holes it is the full pipe
// length. Otherwise it is the distance from the mouth to the first
// open hole plus an end correction:
//
//	Leff = p1*L + 0.3*d1 + Σ (a_i/A) * (1 - p_i) * L * 0.1
//
// where p1, d1 are the position and diameter of the hole nearest the
// mouth, a_i the hole areas, and A the bore cross-section area. The
// summed term models the cumulative loading of multiple holes and is
// only applied when more than one hole is present. The 0.3 and 0.1
// coefficients are empirical calibration constants.
func EffectiveLength(length float64, holes []Hole, pipeDiameter float64) (float64, error) {
	if length <= 0 {
		return 0, ErrInvalidLength
	}

	if pipeDiameter <= 0 {
		return 0, ErrInvalidDiameter
	}

	if len(holes) == 0 {
		return length, nil
	}

	for _, h := range holes {
		if err := h.Validate(pipeDiameter); err != nil {
			return 0, err
		}
	}

	// Ties keep their input order, hence the stable sort.
	sorted := make([]Hole, len(holes))
	copy(sorted, holes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	first := sorted[0]
	correction := 0.3 * first.Diameter

	if len(sorted) > 1 {
		boreArea := math.Pi * (pipeDiameter / 2) * (pipeDiameter / 2)
		for _, h := range sorted {
			holeArea := math.Pi * (h.Diameter / 2) * (h.Diameter / 2)
			correction += (holeArea / boreArea) * (1 - h.Position) * length * 0.1
		}
	}

	return first.Position*length + correction, nil
}

// FundamentalWithHoles returns the fundamental frequency of a pipe
// with side holes, applying the same open/closed formula as
// Fundamental to the effective length. With an empty hole list it is
// identical to Fundamental.
func FundamentalWithHoles(speedOfSound, length float64, end EndCondition, holes []Hole, pipeDiameter float64) (float64, error) {
	if speedOfSound <= 0 {
		return 0, ErrInvalidSpeed
	}

	effective, err := EffectiveLength(length, holes, pipeDiameter)
	if err != nil {
		return 0, err
	}

	return Fundamental(speedOfSound, effective, end)
}

// Compute runs the full model for one parameter set: speed of sound
// from temperature, fundamental (accounting for holes), harmonic
// series, and, when holes are present, the holeless comparison
// frequency and the delta.
func Compute(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	speed, err := SpeedOfSound(p.TemperatureC)
	if err != nil {
		return nil, err
	}

	return ComputeWithSpeed(p, speed)
}

// ComputeWithSpeed is Compute with an explicit speed of sound,
// bypassing the temperature derivation. Sweeps over temperature use
// this to avoid re-deriving speed per sample.
func ComputeWithSpeed(p Params, speedOfSound float64) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if speedOfSound <= 0 {
		return nil, ErrInvalidSpeed
	}

	count := p.HarmonicCount
	if count == 0 {
		count = DefaultHarmonicCount
	}

	effective, err := EffectiveLength(p.Geometry.Length, p.Holes, p.Geometry.Diameter)
	if err != nil {
		return nil, err
	}

	fundamental, err := Fundamental(speedOfSound, effective, p.End)
	if err != nil {
		return nil, err
	}

	harmonics, err := Harmonics(fundamental, count, p.End)
	if err != nil {
		return nil, err
	}

	result := &Result{
		SpeedOfSound:    speedOfSound,
		Fundamental:     fundamental,
		Harmonics:       harmonics,
		EffectiveLength: effective,
	}

	if len(p.Holes) > 0 {
		holeless, err := Fundamental(speedOfSound, p.Geometry.Length, p.End)
		if err != nil {
			return nil, err
		}

		delta := fundamental - holeless
		result.FundamentalWithoutHoles = &holeless
		result.Delta = &delta
	}

	return result, nil
}
