package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wldblbll/Tube-Resonance/internal/api/handlers"
	"github.com/wldblbll/Tube-Resonance/internal/repository"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, repo repository.ComputationRepository, harmonicCount, sweepPoints int) {
	// Initialize handlers
	resonanceHandler := handlers.NewResonanceHandler(repo, harmonicCount, sweepPoints)

	// Register resonance routes
	huma.Register(api, huma.Operation{
		OperationID: "computeResonance",
		Method:      http.MethodPost,
		Path:        "/api/resonance",
		Summary:     "Compute pipe resonance",
		Description: "Computes the fundamental frequency and harmonic series for a pipe configuration and stores the computation",
		Tags:        []string{"Resonance"},
	}, resonanceHandler.ComputeResonance)

	huma.Register(api, huma.Operation{
		OperationID: "sweepResonance",
		Method:      http.MethodPost,
		Path:        "/api/resonance/sweep",
		Summary:     "Sweep a parameter",
		Description: "Samples the fundamental frequency across a range of one parameter for charting",
		Tags:        []string{"Resonance"},
	}, resonanceHandler.SweepResonance)

	huma.Register(api, huma.Operation{
		OperationID: "getComputation",
		Method:      http.MethodGet,
		Path:        "/api/resonance/{id}",
		Summary:     "Get a stored computation",
		Description: "Returns a stored computation with the parameters it was run with",
		Tags:        []string{"Resonance"},
	}, resonanceHandler.GetComputation)

	huma.Register(api, huma.Operation{
		OperationID: "getSchematic",
		Method:      http.MethodGet,
		Path:        "/api/resonance/{id}/schematic",
		Summary:     "Render a pipe schematic",
		Description: "Returns an SVG schematic of a stored computation's pipe geometry and holes",
		Tags:        []string{"Resonance"},
	}, resonanceHandler.GetSchematic)

	huma.Register(api, huma.Operation{
		OperationID: "listComputations",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{sessionID}/computations",
		Summary:     "List a session's computations",
		Description: "Returns the computation history for a client session, newest first",
		Tags:        []string{"Sessions"},
	}, resonanceHandler.ListComputations)
}
