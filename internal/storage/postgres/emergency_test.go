//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS emergency_requests (
			id uuid PRIMARY KEY,
			name text NOT NULL,
			phone text NOT NULL,
			issue text NOT NULL,
			vehicle text NOT NULL,
			latitude double precision NOT NULL,
			longitude double precision NOT NULL,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateRequests(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE emergency_requests`)
	if err != nil {
		t.Fatalf("truncate emergency_requests: %v", err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmergencyRepo_Create_SetsDefaults(t *testing.T) {
	truncateRequests(t)

	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewEmergencyRepo(testPool, testLogger(), clockwork.NewFakeClockAt(frozen))

	req := &domain.EmergencyRequest{
		Name:      "Jane Doe",
		Phone:     "+15550001",
		Issue:     "flat tire",
		Vehicle:   "Toyota Corolla",
		Latitude:  37.422,
		Longitude: -122.084,
	}

	if err := repo.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if req.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if !req.CreatedAt.Equal(frozen) {
		t.Fatalf("expected clock-assigned created_at, got %v", req.CreatedAt)
	}

	got, err := repo.Get(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Jane Doe" || got.Phone != "+15550001" || got.Issue != "flat tire" || got.Vehicle != "Toyota Corolla" {
		t.Fatalf("stored row mismatch: %+v", got)
	}
	if got.Latitude != 37.422 || got.Longitude != -122.084 {
		t.Fatalf("stored coordinates mismatch: %+v", got)
	}
}

func TestEmergencyRepo_Create_DuplicateID(t *testing.T) {
	truncateRequests(t)

	repo := NewEmergencyRepo(testPool, testLogger(), clockwork.NewRealClock())

	req := &domain.EmergencyRequest{
		ID:        uuid.New(),
		Name:      "Jane Doe",
		Phone:     "+15550001",
		Issue:     "flat tire",
		Vehicle:   "Toyota Corolla",
		Latitude:  0,
		Longitude: 0,
	}

	if err := repo.Create(context.Background(), req); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	err := repo.Create(context.Background(), &domain.EmergencyRequest{
		ID: req.ID, Name: "x", Phone: "x", Issue: "x", Vehicle: "x",
	})
	if !errors.Is(err, e.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}
}

func TestEmergencyRepo_Get_NotFound(t *testing.T) {
	truncateRequests(t)

	repo := NewEmergencyRepo(testPool, testLogger(), clockwork.NewRealClock())

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
