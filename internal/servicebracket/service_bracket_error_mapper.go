package servicebracket

import (
	"errors"
	"strings"

	servicebracketerrors "go-payroll/internal/servicebracket/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return servicebracketerrors.ErrServiceBracketNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_service_bracket_name" {
			return servicebracketerrors.ErrServiceBracketNameAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_service_bracket_name") {
		return servicebracketerrors.ErrServiceBracketNameAlreadyExists
	}

	return err
}
