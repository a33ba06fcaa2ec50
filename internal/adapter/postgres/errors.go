package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/leximind/internal/domain"
)

// mapError wraps pgx/pgconn errors with the operation and key.
// Context errors pass through unchanged; connection failures are marked
// domain.ErrUnavailable.
func mapError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %q: %w", op, key, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514": // check_violation
			return fmt.Errorf("%s %q: %w", op, key, domain.ErrValidation)
		case "57P01", "57P03": // admin_shutdown, cannot_connect_now
			return fmt.Errorf("%s %q: %w: %v", op, key, domain.ErrUnavailable, err)
		}
		return fmt.Errorf("%s %q: %w", op, key, err)
	}

	if pgconn.SafeToRetry(err) {
		return fmt.Errorf("%s %q: %w: %v", op, key, domain.ErrUnavailable, err)
	}

	return fmt.Errorf("%s %q: %w", op, key, err)
}
