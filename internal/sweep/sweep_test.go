package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wldblbll/Tube-Resonance/pkg/acoustics"
)

func basePipe() acoustics.Params {
	return acoustics.Params{
		Geometry:     acoustics.Geometry{Length: 1.0, Diameter: 0.05},
		End:          acoustics.OpenBoth,
		TemperatureC: 20,
		AirSpeed:     10,
	}
}

func TestRunLengthSweep(t *testing.T) {
	out, err := Run(basePipe(), Spec{Parameter: Length, Min: 0.5, Max: 2.0, Points: 4})
	require.NoError(t, err)
	require.Len(t, out.Points, 4)

	speed, err := acoustics.SpeedOfSound(20)
	require.NoError(t, err)

	wantX := []float64{0.5, 1.0, 1.5, 2.0}
	for i, p := range out.Points {
		assert.InDelta(t, wantX[i], p.X, 1e-12)
		assert.InDelta(t, speed/(2*p.X), p.Fundamental, 1e-9)
	}

	// Longer pipe, lower fundamental.
	for i := 1; i < len(out.Points); i++ {
		assert.Less(t, out.Points[i].Fundamental, out.Points[i-1].Fundamental)
	}

	assert.Equal(t, 1.0, out.CurrentValue)
	assert.Equal(t, 1, out.CurrentIndex)
}

// With a single hole the effective length is pinned to the hole, which
// stays at a fixed absolute distance from the mouth while the pipe
// length is swept. The fundamental is therefore flat.
func TestRunLengthSweepWithHoleIsFlat(t *testing.T) {
	base := basePipe()
	base.Holes = []acoustics.Hole{{Position: 0.25, Diameter: 0.01}}

	out, err := Run(base, Spec{Parameter: Length, Min: 0.5, Max: 2.0, Points: 10})
	require.NoError(t, err)
	require.Len(t, out.Points, 10)

	first := out.Points[0].Fundamental
	for _, p := range out.Points[1:] {
		assert.InDelta(t, first, p.Fundamental, 1e-9)
	}
}

func TestRunAirSpeedSweepIsFlat(t *testing.T) {
	out, err := Run(basePipe(), Spec{Parameter: AirSpeed, Min: 0, Max: 50, Points: 5})
	require.NoError(t, err)
	require.Len(t, out.Points, 5)

	speed, err := acoustics.SpeedOfSound(20)
	require.NoError(t, err)

	for _, p := range out.Points {
		assert.InDelta(t, speed/2, p.Fundamental, 1e-9)
	}

	assert.Equal(t, 10.0, out.CurrentValue)
	assert.Equal(t, 1, out.CurrentIndex)
}

func TestRunTemperatureSweep(t *testing.T) {
	out, err := Run(basePipe(), Spec{Parameter: Temperature, Min: -20, Max: 50, Points: 100})
	require.NoError(t, err)
	require.Len(t, out.Points, 100)

	// Warmer air carries sound faster, raising the fundamental.
	for i := 1; i < len(out.Points); i++ {
		assert.Greater(t, out.Points[i].Fundamental, out.Points[i-1].Fundamental)
	}
}

func TestRunFirstHolePositionSweep(t *testing.T) {
	base := basePipe()
	base.Holes = []acoustics.Hole{{Position: 0.25, Diameter: 0.01}}

	out, err := Run(base, Spec{Parameter: FirstHolePosition, Min: 0.05, Max: 0.95, Points: 10})
	require.NoError(t, err)
	require.Len(t, out.Points, 10)

	// Hole farther from the mouth, longer column, lower fundamental.
	for i := 1; i < len(out.Points); i++ {
		assert.Less(t, out.Points[i].Fundamental, out.Points[i-1].Fundamental)
	}

	assert.Equal(t, 0.25, out.CurrentValue)
	assert.Equal(t, 2, out.CurrentIndex)
}

func TestRunDefaultPoints(t *testing.T) {
	out, err := Run(basePipe(), Spec{Parameter: Length, Min: 0.1, Max: 10})
	require.NoError(t, err)
	assert.Len(t, out.Points, DefaultPoints)
}

func TestRunValidation(t *testing.T) {
	withHole := basePipe()
	withHole.Holes = []acoustics.Hole{{Position: 0.25, Diameter: 0.01}}

	invalidBase := basePipe()
	invalidBase.Geometry.Length = 0

	tests := []struct {
		name    string
		base    acoustics.Params
		spec    Spec
		wantErr error
	}{
		{"unknown parameter", basePipe(), Spec{Parameter: "bore_taper", Min: 0, Max: 1}, ErrUnknownParameter},
		{"min equals max", basePipe(), Spec{Parameter: Length, Min: 1, Max: 1}, ErrInvalidRange},
		{"min above max", basePipe(), Spec{Parameter: Length, Min: 2, Max: 1}, ErrInvalidRange},
		{"single point", basePipe(), Spec{Parameter: Length, Min: 0.5, Max: 2, Points: 1}, ErrInvalidPoints},
		{"hole sweep without holes", basePipe(), Spec{Parameter: FirstHolePosition, Min: 0.05, Max: 0.95}, ErrNoHoles},
		{"invalid base geometry", invalidBase, Spec{Parameter: Length, Min: 0.5, Max: 2}, acoustics.ErrInvalidLength},
		// A diameter range dipping below the hole diameter drives the
		// geometry invalid mid-sweep; the error surfaces, never clamps.
		{"diameter sweep below hole diameter", withHole, Spec{Parameter: Diameter, Min: 0.005, Max: 0.5}, acoustics.ErrInvalidHoleDiameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.base, tt.spec)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
