package absenceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAbsenceRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence record not found",
		http.StatusNotFound,
	)
	ErrAbsencePeriodAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an absence record already exists for this employee and period",
		http.StatusConflict,
	)
	ErrInvalidAdjustmentPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment_percentage must be a decimal between -100 and 100",
		http.StatusBadRequest,
	)
)
