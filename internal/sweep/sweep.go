// Package sweep samples the fundamental frequency across a range of a
// single parameter while the rest of the pipe configuration stays
// fixed. It is the data source for the frequency-evolution chart.
package sweep

import (
	"errors"
	"math"

	"github.com/wldblbll/Tube-Resonance/pkg/acoustics"
)

// Errors returned by sweep construction.
var (
	ErrUnknownParameter = errors.New("sweep: unknown sweep parameter")
	ErrInvalidRange     = errors.New("sweep: range min must be less than max")
	ErrInvalidPoints    = errors.New("sweep: at least two points are required")
	ErrNoHoles          = errors.New("sweep: hole position sweep requires at least one hole")
)

// DefaultPoints is the sample count used when the caller does not ask
// for a specific resolution.
const DefaultPoints = 100

// Parameter identifies which input the sweep varies.
type Parameter string

const (
	Length            Parameter = "length"
	Diameter          Parameter = "diameter"
	AirSpeed          Parameter = "air_speed"
	Temperature       Parameter = "temperature"
	FirstHolePosition Parameter = "first_hole_position"
)

// Spec describes a sweep: the parameter to vary, the inclusive range,
// and the number of evenly spaced samples. Points == 0 means
// DefaultPoints.
type Spec struct {
	Parameter Parameter
	Min       float64
	Max       float64
	Points    int
}

// Validate checks the sweep specification against the base parameters.
func (s Spec) Validate(base acoustics.Params) error {
	switch s.Parameter {
	case Length, Diameter, AirSpeed, Temperature:
	case FirstHolePosition:
		if len(base.Holes) == 0 {
			return ErrNoHoles
		}
	default:
		return ErrUnknownParameter
	}

	if s.Min >= s.Max {
		return ErrInvalidRange
	}

	if s.Points != 0 && s.Points < 2 {
		return ErrInvalidPoints
	}

	return nil
}

// Point is one sweep sample: the swept parameter value and the
// resulting fundamental frequency.
type Point struct {
	X           float64
	Fundamental float64
}

// Outcome is a completed sweep plus the marker locating the base
// configuration's current value among the samples.
type Outcome struct {
	Points       []Point
	CurrentValue float64
	CurrentIndex int
}

// Run samples the fundamental frequency at evenly spaced values of the
// swept parameter. Every sample goes through the full model
// validation; a range that drives the geometry invalid (for example a
// bore diameter below a hole diameter) aborts the sweep with the
// model's error, matching the no-clamping propagation policy.
func Run(base acoustics.Params, spec Spec) (*Outcome, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	if err := spec.Validate(base); err != nil {
		return nil, err
	}

	speed, err := acoustics.SpeedOfSound(base.TemperatureC)
	if err != nil {
		return nil, err
	}

	n := spec.Points
	if n == 0 {
		n = DefaultPoints
	}

	points := make([]Point, n)
	step := (spec.Max - spec.Min) / float64(n-1)

	for i := range points {
		x := spec.Min + float64(i)*step
		f, err := sample(base, spec.Parameter, x, speed)
		if err != nil {
			return nil, err
		}
		points[i] = Point{X: x, Fundamental: f}
	}

	current := currentValue(base, spec.Parameter)

	return &Outcome{
		Points:       points,
		CurrentValue: current,
		CurrentIndex: nearestIndex(points, current),
	}, nil
}

// sample computes the fundamental for one value of the swept parameter.
func sample(base acoustics.Params, param Parameter, x, speed float64) (float64, error) {
	g := base.Geometry
	holes := base.Holes

	switch param {
	case Length:
		// Holes sit at a fixed absolute distance from the mouth, so
		// their fractional position rescales with the length.
		if len(holes) > 0 {
			rescaled := make([]acoustics.Hole, len(holes))
			for i, h := range holes {
				rescaled[i] = acoustics.Hole{
					Position: h.Position * g.Length / x,
					Diameter: h.Diameter,
				}
			}
			holes = rescaled
		}
		g.Length = x

	case Diameter:
		g.Diameter = x

	case AirSpeed:
		// Airflow speed does not enter the resonance formula; the
		// curve is flat at the base fundamental.

	case Temperature:
		v, err := acoustics.SpeedOfSound(x)
		if err != nil {
			return 0, err
		}
		speed = v

	case FirstHolePosition:
		moved := make([]acoustics.Hole, len(holes))
		copy(moved, holes)
		moved[0].Position = x
		holes = moved
	}

	return acoustics.FundamentalWithHoles(speed, g.Length, base.End, holes, g.Diameter)
}

// currentValue extracts the swept parameter's value from the base set.
func currentValue(base acoustics.Params, param Parameter) float64 {
	switch param {
	case Length:
		return base.Geometry.Length
	case Diameter:
		return base.Geometry.Diameter
	case AirSpeed:
		return base.AirSpeed
	case Temperature:
		return base.TemperatureC
	case FirstHolePosition:
		return base.Holes[0].Position
	}
	return 0
}

// nearestIndex returns the index of the sample closest to value.
func nearestIndex(points []Point, value float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range points {
		if d := math.Abs(p.X - value); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
