package absencethreshold

import (
	"errors"
	"strings"

	absencethresholderrors "go-payroll/internal/absencethreshold/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absencethresholderrors.ErrAbsenceThresholdNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_absence_threshold_name" {
			return absencethresholderrors.ErrAbsenceThresholdNameAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_absence_threshold_name") {
		return absencethresholderrors.ErrAbsenceThresholdNameAlreadyExists
	}

	return err
}
