package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wldblbll/Tube-Resonance/pkg/models"
)

// ComputationRepository defines the interface for computation history operations
type ComputationRepository interface {
	Create(ctx context.Context, computation *models.Computation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Computation, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]*models.Computation, error)
}
