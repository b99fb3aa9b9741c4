package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// HoleInput describes one side hole in an incoming request.
type HoleInput struct {
	Position float64 `json:"position" exclusiveMinimum:"0" exclusiveMaximum:"1" required:"true" doc:"Distance from the mouth as a fraction of pipe length"`
	Diameter float64 `json:"diameter" exclusiveMinimum:"0" required:"true" doc:"Hole diameter in meters (must be smaller than the pipe diameter)"`
}

// PipeInput is the full parameter set for one resonance computation.
// All values are SI: meters, m/s, °C. Unit conversion from display
// units (mm, km/h, percent) is the client's job, mirroring the input
// surface of the reference application.
type PipeInput struct {
	SessionID     string      `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
	Length        float64     `json:"length" exclusiveMinimum:"0" maximum:"10" required:"true" doc:"Pipe length in meters"`
	Diameter      float64     `json:"diameter" exclusiveMinimum:"0" maximum:"0.5" required:"true" doc:"Pipe bore diameter in meters"`
	EndCondition  string      `json:"end_condition" enum:"open_both,closed_one" required:"true" doc:"Pipe end configuration"`
	Temperature   float64     `json:"temperature" minimum:"-273.15" maximum:"1000" doc:"Air temperature in °C"`
	AirSpeed      float64     `json:"air_speed,omitempty" minimum:"0" doc:"Airflow speed in m/s (informational, does not affect resonance)"`
	Holes         []HoleInput `json:"holes,omitempty" maxItems:"10" doc:"Side holes, in any order"`
	HarmonicCount int         `json:"harmonic_count,omitempty" minimum:"1" maximum:"32" doc:"Number of harmonics to report (default 5)"`
}

// FrequencyResultBody is the computed resonance result returned to the
// client. The without-holes comparison fields are present only when
// the request carried side holes.
type FrequencyResultBody struct {
	ID                      string    `json:"id" doc:"Computation unique identifier"`
	SpeedOfSound            float64   `json:"speed_of_sound" doc:"Speed of sound in m/s at the requested temperature"`
	Fundamental             float64   `json:"fundamental" doc:"Fundamental frequency in Hz"`
	Harmonics               []float64 `json:"harmonics" doc:"Harmonic series in Hz, ascending"`
	EffectiveLength         float64   `json:"effective_length" doc:"Effective resonating length in meters"`
	FundamentalWithoutHoles *float64  `json:"fundamental_without_holes,omitempty" doc:"Fundamental of the same pipe without holes, in Hz"`
	Delta                   *float64  `json:"delta,omitempty" doc:"Fundamental minus the holeless fundamental, in Hz"`
	CreatedAt               time.Time `json:"created_at" doc:"Computation timestamp"`
}

// ComputeResonanceRequest represents a request to compute pipe resonance
type ComputeResonanceRequest struct {
	Body PipeInput
}

// ComputeResonanceResponse represents the resonance computation response
type ComputeResonanceResponse struct {
	Body FrequencyResultBody
}

// GetComputationRequest represents a request to fetch a stored computation
type GetComputationRequest struct {
	ID string `path:"id" doc:"Computation ID"`
}

// GetComputationResponse returns a stored computation with its input
type GetComputationResponse struct {
	Body struct {
		Input  PipeInput           `json:"input" doc:"Parameters the computation was run with"`
		Result FrequencyResultBody `json:"result" doc:"Computed resonance result"`
	}
}

// ListComputationsRequest represents a request to list a session's computations
type ListComputationsRequest struct {
	SessionID string `path:"sessionID" minLength:"10" maxLength:"50" doc:"Client session identifier"`
}

// ComputationSummary is one row of a session's computation history.
type ComputationSummary struct {
	ID           string    `json:"id" doc:"Computation ID"`
	EndCondition string    `json:"end_condition" doc:"Pipe end configuration"`
	Length       float64   `json:"length" doc:"Pipe length in meters"`
	Fundamental  float64   `json:"fundamental" doc:"Fundamental frequency in Hz"`
	HoleCount    int       `json:"hole_count" doc:"Number of side holes"`
	CreatedAt    time.Time `json:"created_at" doc:"Computation timestamp"`
}

// ListComputationsResponse returns a session's computation history
type ListComputationsResponse struct {
	Body struct {
		Computations []ComputationSummary `json:"computations" doc:"Computations, newest first"`
	}
}

// GetSchematicRequest represents a request for a stored computation's schematic
type GetSchematicRequest struct {
	ID string `path:"id" doc:"Computation ID"`
}

// GetSchematicResponse returns the rendered SVG schematic
type GetSchematicResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
