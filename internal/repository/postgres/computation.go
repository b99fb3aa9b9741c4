package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wldblbll/Tube-Resonance/internal/repository"
	"github.com/wldblbll/Tube-Resonance/pkg/models"
)

// PostgresComputationRepository implements ComputationRepository for PostgreSQL
type PostgresComputationRepository struct {
	db *sql.DB
}

// NewPostgresComputationRepository creates a new PostgreSQL computation repository
func NewPostgresComputationRepository(db *sql.DB) repository.ComputationRepository {
	return &PostgresComputationRepository{db: db}
}

// Create inserts a new computation record
func (r *PostgresComputationRepository) Create(ctx context.Context, computation *models.Computation) error {
	params, err := json.Marshal(computation.Params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	result, err := json.Marshal(computation.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO computations (id, session_id, params, result, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.db.ExecContext(ctx, query,
		computation.ID,
		computation.SessionID,
		string(params),
		string(result),
		computation.CreatedAt)

	return err
}

// GetByID retrieves a computation by ID
func (r *PostgresComputationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Computation, error) {
	query := `
		SELECT id, session_id, params, result, created_at
		FROM computations
		WHERE id = $1`

	return scanComputation(r.db.QueryRowContext(ctx, query, id))
}

// ListBySessionID retrieves computations by session ID, newest first
func (r *PostgresComputationRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*models.Computation, error) {
	query := `
		SELECT id, session_id, params, result, created_at
		FROM computations
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var computations []*models.Computation
	for rows.Next() {
		computation, err := scanComputation(rows)
		if err != nil {
			return nil, err
		}
		computations = append(computations, computation)
	}

	return computations, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanComputation(row scanner) (*models.Computation, error) {
	var computation models.Computation
	var paramsStr, resultStr string

	err := row.Scan(
		&computation.ID,
		&computation.SessionID,
		&paramsStr,
		&resultStr,
		&computation.CreatedAt)

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(paramsStr), &computation.Params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal params: %w", err)
	}
	if err := json.Unmarshal([]byte(resultStr), &computation.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &computation, nil
}
