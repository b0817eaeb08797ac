package payment

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nitinco/nexsphere/internal/shared/apperror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payment_order_id" {
			// Each order creation gets a fresh provider id, so this only
			// fires on a replayed insert.
			return apperror.Wrap(err, apperror.CodeConflict,
				"A payment with this order id already exists", 409)
		}
	}

	return err
}
