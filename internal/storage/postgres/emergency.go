package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/pkg/e"
)

type EmergencyRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	clock  clockwork.Clock
}

func NewEmergencyRepo(pool *pgxpool.Pool, logger *slog.Logger, clock clockwork.Clock) *EmergencyRepo {
	return &EmergencyRepo{pool: pool, logger: logger, clock: clock}
}

// Create inserts a validated request record. Identifier and timestamp are
// assigned here if the caller left them zero.
func (p *EmergencyRepo) Create(ctx context.Context, req *domain.EmergencyRequest) error {
	const op = "postgres.Emergency.Create"

	if req == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidRequest)
	}

	const query = `
		INSERT INTO emergency_requests (id, name, phone, issue, vehicle, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = p.clock.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		req.ID,
		req.Name,
		req.Phone,
		req.Issue,
		req.Vehicle,
		req.Latitude,
		req.Longitude,
		req.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapStorageError(ctx, op, err)
	}

	return nil
}

// Get reads a record back by id. Not part of the intake path; used by the
// integration tests and operator tooling.
func (p *EmergencyRepo) Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error) {
	const op = "postgres.Emergency.Get"

	const query = `
		SELECT id, name, phone, issue, vehicle, latitude, longitude, created_at
		FROM emergency_requests
		WHERE id = $1
	`

	var req domain.EmergencyRequest
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.Name,
		&req.Phone,
		&req.Issue,
		&req.Vehicle,
		&req.Latitude,
		&req.Longitude,
		&req.CreatedAt,
	)
	if err != nil {
		return nil, e.WrapStorageError(ctx, op, err)
	}

	return &req, nil
}
