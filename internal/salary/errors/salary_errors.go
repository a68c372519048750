package salaryerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrNoSalaryOnOrBeforeDate = apperror.New(
		apperror.CodeNotFound,
		"employee has no salary record on or before the given date",
		http.StatusNotFound,
	)
	ErrSalaryEffectiveDateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a salary record with this effective date already exists for the employee",
		http.StatusConflict,
	)
	ErrInvalidBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base_salary must be a non-negative decimal",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
