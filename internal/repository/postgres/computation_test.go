package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wldblbll/Tube-Resonance/internal/repository/postgres"
	"github.com/wldblbll/Tube-Resonance/pkg/acoustics"
	"github.com/wldblbll/Tube-Resonance/pkg/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS computations (
		id UUID PRIMARY KEY,
		session_id TEXT NOT NULL,
		params JSONB NOT NULL,
		result JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// setupTestDB starts a disposable PostgreSQL container and returns a
// connected database with the computations schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := pgContainer.Run(ctx,
		"postgres:15-alpine",
		pgContainer.WithDatabase("tuberes_test"),
		pgContainer.WithUsername("testuser"),
		pgContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, schema)
	require.NoError(t, err)

	return db
}

func newComputation(t *testing.T, sessionID string, createdAt time.Time) *models.Computation {
	t.Helper()

	params := acoustics.Params{
		Geometry:      acoustics.Geometry{Length: 1.0, Diameter: 0.05},
		End:           acoustics.OpenBoth,
		TemperatureC:  20,
		Holes:         []acoustics.Hole{{Position: 0.25, Diameter: 0.01}},
		HarmonicCount: 5,
	}

	result, err := acoustics.Compute(params)
	require.NoError(t, err)

	return &models.Computation{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Params:    params,
		Result:    *result,
		CreatedAt: createdAt,
	}
}

func TestComputationRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewPostgresComputationRepository(db)
	ctx := context.Background()

	stored := newComputation(t, "integration-session-1", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, stored))

	got, err := repo.GetByID(ctx, uuid.MustParse(stored.ID))
	require.NoError(t, err)

	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.SessionID, got.SessionID)
	assert.Equal(t, stored.Params, got.Params)
	assert.Equal(t, stored.Result.Fundamental, got.Result.Fundamental)
	assert.Equal(t, stored.Result.Harmonics, got.Result.Harmonics)
	require.NotNil(t, got.Result.Delta)
	assert.Equal(t, *stored.Result.Delta, *got.Result.Delta)
	assert.WithinDuration(t, stored.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestComputationRepositoryListBySessionID(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewPostgresComputationRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	older := newComputation(t, "integration-session-2", base)
	newer := newComputation(t, "integration-session-2", base.Add(30*time.Minute))
	other := newComputation(t, "integration-session-other", base.Add(10*time.Minute))

	for _, c := range []*models.Computation{older, newer, other} {
		require.NoError(t, repo.Create(ctx, c))
	}

	got, err := repo.ListBySessionID(ctx, "integration-session-2")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestComputationRepositoryGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewPostgresComputationRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
