package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wldblbll/Tube-Resonance/pkg/acoustics"
)

func TestSchematicOpenPipe(t *testing.T) {
	svg, err := Schematic(acoustics.Params{
		Geometry:     acoustics.Geometry{Length: 1.0, Diameter: 0.05},
		End:          acoustics.OpenBoth,
		TemperatureC: 20,
		AirSpeed:     10,
	})
	require.NoError(t, err)

	doc := string(svg)
	assert.True(t, strings.HasPrefix(doc, "<svg "))
	assert.Contains(t, doc, "</svg>")
	// Both ends open: two ellipses, two "Open" labels, no cap.
	assert.Equal(t, 2, strings.Count(doc, "<ellipse"))
	assert.Equal(t, 2, strings.Count(doc, ">Open<"))
	assert.NotContains(t, doc, ">Closed<")
	assert.Contains(t, doc, "Air: 10.0 m/s")
}

func TestSchematicClosedPipe(t *testing.T) {
	svg, err := Schematic(acoustics.Params{
		Geometry:     acoustics.Geometry{Length: 1.0, Diameter: 0.05},
		End:          acoustics.ClosedOne,
		TemperatureC: 20,
	})
	require.NoError(t, err)

	doc := string(svg)
	// Mouth open, far end capped.
	assert.Equal(t, 1, strings.Count(doc, "<ellipse"))
	assert.Equal(t, 1, strings.Count(doc, ">Open<"))
	assert.Equal(t, 1, strings.Count(doc, ">Closed<"))
	assert.Contains(t, doc, `fill="gray"`)
}

func TestSchematicHoles(t *testing.T) {
	svg, err := Schematic(acoustics.Params{
		Geometry:     acoustics.Geometry{Length: 1.0, Diameter: 0.05},
		End:          acoustics.OpenBoth,
		TemperatureC: 20,
		Holes: []acoustics.Hole{
			{Position: 0.25, Diameter: 0.01},
			{Position: 0.5, Diameter: 0.012},
			{Position: 0.75, Diameter: 0.008},
		},
	})
	require.NoError(t, err)

	doc := string(svg)
	assert.Equal(t, 3, strings.Count(doc, "<circle"))
	// Holes are numbered in input order.
	assert.Contains(t, doc, ">T1<")
	assert.Contains(t, doc, ">T2<")
	assert.Contains(t, doc, ">T3<")
}

func TestSchematicInvalidGeometry(t *testing.T) {
	_, err := Schematic(acoustics.Params{
		Geometry: acoustics.Geometry{Length: 0, Diameter: 0.05},
		End:      acoustics.OpenBoth,
	})
	assert.ErrorIs(t, err, acoustics.ErrInvalidLength)
}
