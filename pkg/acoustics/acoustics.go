package acoustics

import "errors"

// Errors returned by the acoustic model.
var (
	ErrInvalidTemperature  = errors.New("acoustics: temperature below absolute zero")
	ErrInvalidSpeed        = errors.New("acoustics: speed of sound must be positive")
	ErrInvalidLength       = errors.New("acoustics: pipe length must be positive")
	ErrInvalidDiameter     = errors.New("acoustics: pipe diameter must be positive")
	ErrInvalidHoleDiameter = errors.New("acoustics: hole diameter must be positive and smaller than the pipe diameter")
	ErrInvalidHolePosition = errors.New("acoustics: hole position must lie strictly between 0 and 1")
	ErrInvalidCount        = errors.New("acoustics: harmonic count must be >= 1")
	ErrUnknownEndCondition = errors.New("acoustics: unknown end condition")
)

// AbsoluteZeroC is the lower bound of the temperature domain in °C.
const AbsoluteZeroC = -273.15

// DefaultHarmonicCount is the number of harmonics reported when the
// caller does not request a specific count.
const DefaultHarmonicCount = 5

// EndCondition selects which resonance formula and harmonic set apply.
type EndCondition string

const (
	// OpenBoth is a pipe open at both ends; it sustains all integer
	// harmonics.
	OpenBoth EndCondition = "open_both"
	// ClosedOne is a pipe closed at one end; it sustains only odd
	// harmonics and resonates an octave below the open pipe.
	ClosedOne EndCondition = "closed_one"
)

// Valid reports whether e is a known end condition.
func (e EndCondition) Valid() bool {
	return e == OpenBoth || e == ClosedOne
}

// Geometry describes the pipe bore in meters.
type Geometry struct {
	Length   float64 `json:"length"`   // m
	Diameter float64 `json:"diameter"` // m
}

// Validate checks that the geometry is physically meaningful.
func (g Geometry) Validate() error {
	if g.Length <= 0 {
		return ErrInvalidLength
	}

	if g.Diameter <= 0 {
		return ErrInvalidDiameter
	}

	return nil
}

// Hole is a side hole in the pipe wall. Position is the distance from
// the mouth end as a fraction of the pipe length, exclusive at both
// ends; Diameter is in meters and must be smaller than the pipe bore.
type Hole struct {
	Position float64 `json:"position"` // fraction of pipe length in (0, 1)
	Diameter float64 `json:"diameter"` // m
}

// Validate checks the hole against the pipe bore diameter.
func (h Hole) Validate(pipeDiameter float64) error {
	if h.Position <= 0 || h.Position >= 1 {
		return ErrInvalidHolePosition
	}

	if h.Diameter <= 0 || h.Diameter >= pipeDiameter {
		return ErrInvalidHoleDiameter
	}

	return nil
}

// Params is the full input set for a single resonance computation.
// AirSpeed does not enter the resonance formulas; it is carried for
// presentation only.
type Params struct {
	Geometry      Geometry     `json:"geometry"`
	End           EndCondition `json:"end_condition"`
	TemperatureC  float64      `json:"temperature_c"` // °C
	AirSpeed      float64      `json:"air_speed"`     // m/s, informational
	Holes         []Hole       `json:"holes,omitempty"`
	HarmonicCount int          `json:"harmonic_count,omitempty"` // 0 means DefaultHarmonicCount
}

// Validate checks every field of the parameter set. The zero harmonic
// count is accepted and treated as the default.
func (p Params) Validate() error {
	if err := p.Geometry.Validate(); err != nil {
		return err
	}

	if !p.End.Valid() {
		return ErrUnknownEndCondition
	}

	if p.TemperatureC < AbsoluteZeroC {
		return ErrInvalidTemperature
	}

	if p.HarmonicCount < 0 {
		return ErrInvalidCount
	}

	for _, h := range p.Holes {
		if err := h.Validate(p.Geometry.Diameter); err != nil {
			return err
		}
	}

	return nil
}

// Result holds the outcome of a resonance computation. The
// FundamentalWithoutHoles and Delta fields are set only when the
// computation involved side holes.
type Result struct {
	SpeedOfSound    float64   `json:"speed_of_sound"`   // m/s
	Fundamental     float64   `json:"fundamental"`      // Hz
	Harmonics       []float64 `json:"harmonics"`        // Hz, ascending
	EffectiveLength float64   `json:"effective_length"` // m

	FundamentalWithoutHoles *float64 `json:"fundamental_without_holes,omitempty"` // Hz, holeless comparison
	Delta                   *float64 `json:"delta,omitempty"`                     // Hz, Fundamental - FundamentalWithoutHoles
}
