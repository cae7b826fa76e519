package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrPersistence     = errors.New("persistence failure")
	ErrDelivery        = errors.New("delivery failure")
	ErrNotFound        = errors.New("not found")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")
	ErrCacheMiss       = errors.New("cache miss")
)

// WrapStorageError normalizes driver-level failures to the sentinel set.
// Every database error lands under ErrPersistence so callers can treat the
// whole class as fatal for the request.
func WrapStorageError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w: %w", op, ErrPersistence, ErrUniqueViolation)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrPersistence)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrPersistence)
}
