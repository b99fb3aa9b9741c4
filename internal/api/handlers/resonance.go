package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wldblbll/Tube-Resonance/internal/render"
	"github.com/wldblbll/Tube-Resonance/internal/repository"
	"github.com/wldblbll/Tube-Resonance/internal/sweep"
	"github.com/wldblbll/Tube-Resonance/pkg/acoustics"
	"github.com/wldblbll/Tube-Resonance/pkg/models"
)

// ResonanceHandler handles resonance-related HTTP requests
type ResonanceHandler struct {
	repo          repository.ComputationRepository
	harmonicCount int
	sweepPoints   int
}

// NewResonanceHandler creates a new resonance handler. harmonicCount
// and sweepPoints are the defaults applied when a request leaves them
// unset.
func NewResonanceHandler(repo repository.ComputationRepository, harmonicCount, sweepPoints int) *ResonanceHandler {
	return &ResonanceHandler{
		repo:          repo,
		harmonicCount: harmonicCount,
		sweepPoints:   sweepPoints,
	}
}

// ComputeResonance runs the acoustic model for one parameter set and
// stores the computation in the session history
func (h *ResonanceHandler) ComputeResonance(ctx context.Context, req *models.ComputeResonanceRequest) (*models.ComputeResonanceResponse, error) {
	log.Info().
		Str("sessionID", req.Body.SessionID).
		Str("endCondition", req.Body.EndCondition).
		Float64("length", req.Body.Length).
		Int("holes", len(req.Body.Holes)).
		Msg("Computing pipe resonance")

	params := h.paramsFromInput(req.Body)

	result, err := acoustics.Compute(params)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid pipe parameters", err)
	}

	computation := &models.Computation{
		ID:        uuid.New().String(),
		SessionID: req.Body.SessionID,
		Params:    params,
		Result:    *result,
		CreatedAt: time.Now(),
	}

	if err := h.repo.Create(ctx, computation); err != nil {
		return nil, huma.Error500InternalServerError("Failed to store computation", err)
	}

	log.Info().
		Str("computationID", computation.ID).
		Float64("fundamental", result.Fundamental).
		Msg("Resonance computed")

	resp := &models.ComputeResonanceResponse{}
	resp.Body = resultBody(computation.ID, result, computation.CreatedAt)
	return resp, nil
}

// SweepResonance samples the fundamental frequency across a range of
// one parameter. Sweeps are transient chart data and are not persisted.
func (h *ResonanceHandler) SweepResonance(ctx context.Context, req *models.SweepResonanceRequest) (*models.SweepResonanceResponse, error) {
	log.Info().
		Str("sessionID", req.Body.Pipe.SessionID).
		Str("parameter", req.Body.Sweep.Parameter).
		Int("points", req.Body.Sweep.Points).
		Msg("Running parameter sweep")

	points := req.Body.Sweep.Points
	if points == 0 {
		points = h.sweepPoints
	}

	outcome, err := sweep.Run(h.paramsFromInput(req.Body.Pipe), sweep.Spec{
		Parameter: sweep.Parameter(req.Body.Sweep.Parameter),
		Min:       req.Body.Sweep.Min,
		Max:       req.Body.Sweep.Max,
		Points:    points,
	})
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid sweep request", err)
	}

	resp := &models.SweepResonanceResponse{}
	resp.Body.Parameter = req.Body.Sweep.Parameter
	resp.Body.CurrentValue = outcome.CurrentValue
	resp.Body.CurrentIndex = outcome.CurrentIndex
	resp.Body.Points = make([]models.SweepPoint, len(outcome.Points))
	for i, p := range outcome.Points {
		resp.Body.Points[i] = models.SweepPoint{X: p.X, Fundamental: p.Fundamental}
	}
	return resp, nil
}

// GetComputation returns a stored computation with its input
func (h *ResonanceHandler) GetComputation(ctx context.Context, req *models.GetComputationRequest) (*models.GetComputationResponse, error) {
	computationID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid computation ID", err)
	}

	computation, err := h.repo.GetByID(ctx, computationID)
	if err != nil {
		return nil, huma.Error404NotFound("Computation not found", err)
	}

	resp := &models.GetComputationResponse{}
	resp.Body.Input = inputFromParams(computation.Params, computation.SessionID)
	resp.Body.Result = resultBody(computation.ID, &computation.Result, computation.CreatedAt)
	return resp, nil
}

// ListComputations returns a session's computation history, newest first
func (h *ResonanceHandler) ListComputations(ctx context.Context, req *models.ListComputationsRequest) (*models.ListComputationsResponse, error) {
	computations, err := h.repo.ListBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list computations", err)
	}

	resp := &models.ListComputationsResponse{}
	resp.Body.Computations = make([]models.ComputationSummary, len(computations))
	for i, c := range computations {
		resp.Body.Computations[i] = models.ComputationSummary{
			ID:           c.ID,
			EndCondition: string(c.Params.End),
			Length:       c.Params.Geometry.Length,
			Fundamental:  c.Result.Fundamental,
			HoleCount:    len(c.Params.Holes),
			CreatedAt:    c.CreatedAt,
		}
	}
	return resp, nil
}

// GetSchematic renders the SVG schematic for a stored computation's geometry
func (h *ResonanceHandler) GetSchematic(ctx context.Context, req *models.GetSchematicRequest) (*models.GetSchematicResponse, error) {
	computationID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid computation ID", err)
	}

	computation, err := h.repo.GetByID(ctx, computationID)
	if err != nil {
		return nil, huma.Error404NotFound("Computation not found", err)
	}

	svg, err := render.Schematic(computation.Params)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to render schematic", err)
	}

	return &models.GetSchematicResponse{
		ContentType: render.ContentType,
		Body:        svg,
	}, nil
}

// paramsFromInput maps an API pipe input onto model parameters,
// applying the configured default harmonic count.
func (h *ResonanceHandler) paramsFromInput(in models.PipeInput) acoustics.Params {
	holes := make([]acoustics.Hole, len(in.Holes))
	for i, hole := range in.Holes {
		holes[i] = acoustics.Hole{Position: hole.Position, Diameter: hole.Diameter}
	}

	count := in.HarmonicCount
	if count == 0 {
		count = h.harmonicCount
	}

	return acoustics.Params{
		Geometry:      acoustics.Geometry{Length: in.Length, Diameter: in.Diameter},
		End:           acoustics.EndCondition(in.EndCondition),
		TemperatureC:  in.Temperature,
		AirSpeed:      in.AirSpeed,
		Holes:         holes,
		HarmonicCount: count,
	}
}

func inputFromParams(p acoustics.Params, sessionID string) models.PipeInput {
	holes := make([]models.HoleInput, len(p.Holes))
	for i, hole := range p.Holes {
		holes[i] = models.HoleInput{Position: hole.Position, Diameter: hole.Diameter}
	}

	return models.PipeInput{
		SessionID:     sessionID,
		Length:        p.Geometry.Length,
		Diameter:      p.Geometry.Diameter,
		EndCondition:  string(p.End),
		Temperature:   p.TemperatureC,
		AirSpeed:      p.AirSpeed,
		Holes:         holes,
		HarmonicCount: p.HarmonicCount,
	}
}

func resultBody(id string, res *acoustics.Result, createdAt time.Time) models.FrequencyResultBody {
	return models.FrequencyResultBody{
		ID:                      id,
		SpeedOfSound:            res.SpeedOfSound,
		Fundamental:             res.Fundamental,
		Harmonics:               res.Harmonics,
		EffectiveLength:         res.EffectiveLength,
		FundamentalWithoutHoles: res.FundamentalWithoutHoles,
		Delta:                   res.Delta,
		CreatedAt:               createdAt,
	}
}
