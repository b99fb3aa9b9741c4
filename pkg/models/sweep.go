package models

// SweepPoint represents a single sample of a parametric sweep
type SweepPoint struct {
	X           float64 `json:"x" doc:"Swept parameter value (SI units)"`
	Fundamental float64 `json:"fundamental" doc:"Fundamental frequency in Hz"`
}

// SweepInput describes which parameter to sweep and over what range.
type SweepInput struct {
	Parameter string  `json:"parameter" enum:"length,diameter,air_speed,temperature,first_hole_position" required:"true" doc:"Parameter to vary"`
	Min       float64 `json:"min" required:"true" doc:"Range start (SI units)"`
	Max       float64 `json:"max" required:"true" doc:"Range end (SI units), must exceed min"`
	Points    int     `json:"points,omitempty" minimum:"2" maximum:"1000" doc:"Number of samples (default 100)"`
}

// SweepResonanceRequest represents a request to sweep one parameter
type SweepResonanceRequest struct {
	Body struct {
		Pipe  PipeInput  `json:"pipe" required:"true" doc:"Base parameter set"`
		Sweep SweepInput `json:"sweep" required:"true" doc:"Sweep specification"`
	}
}

// SweepResonanceResponse returns the sweep samples and the marker for
// the base parameter set's current value
type SweepResonanceResponse struct {
	Body struct {
		Parameter    string       `json:"parameter" doc:"Swept parameter"`
		Points       []SweepPoint `json:"points" doc:"Sweep samples in range order"`
		CurrentValue float64      `json:"current_value" doc:"Value of the swept parameter in the base set"`
		CurrentIndex int          `json:"current_index" doc:"Index of the sample nearest the current value"`
	}
}
