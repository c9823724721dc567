package application

import (
	"errors"
	"strings"

	applicationerrors "github.com/JSON-FX/lgu-sso/internal/application/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return applicationerrors.ErrApplicationNotFound
	}

	return err
}

// isClientIDCollision reports whether err is the unique violation on
// client_id, the trigger for regenerating the random suffix.
func isClientIDCollision(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_applications_client_id"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_applications_client_id")
}
