package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found or inactive",
		http.StatusNotFound,
	)
	ErrNoSalaryForPeriod = apperror.New(
		apperror.CodeNotFound,
		"employee has no salary record on or before the end of the period",
		http.StatusNotFound,
	)
	ErrSnapshotNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll snapshot not found",
		http.StatusNotFound,
	)
	ErrSnapshotAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a snapshot already exists for this employee and period, pass regenerate to replace it",
		http.StatusConflict,
	)
	ErrGenerationInProgress = apperror.New(
		apperror.CodeConflict,
		"snapshot generation is already running for this period",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
)
