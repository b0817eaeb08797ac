package employer

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	employererrors "github.com/nitinco/nexsphere/internal/employer/errors"
)

// MapRepositoryError is exported because the employer insert happens
// inside the payment verification transaction, which lives in the
// payment package.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employer_business_email" {
			return employererrors.ErrEmployerAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employer_business_email") {
		return employererrors.ErrEmployerAlreadyExists
	}

	return err
}
