package access

import (
	"errors"
	"strings"

	accesserrors "github.com/JSON-FX/lgu-sso/internal/access/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return accesserrors.ErrGrantNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_access_grants_pair" {
			return accesserrors.ErrGrantAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_access_grants_pair") {
		return accesserrors.ErrGrantAlreadyExists
	}

	return err
}
