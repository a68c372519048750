package salary

import (
	"errors"
	"strings"

	salaryerrors "go-payroll/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrSalaryRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_effective" {
			return salaryerrors.ErrSalaryEffectiveDateAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_effective") {
		return salaryerrors.ErrSalaryEffectiveDateAlreadyExists
	}

	return err
}

// mapCurrentError distinguishes "no salary in effect yet" from a generic
// missing record, because callers treat the two differently.
func mapCurrentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrNoSalaryOnOrBeforeDate
	}
	return mapRepositoryError(err)
}
