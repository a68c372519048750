package absencethresholderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAbsenceThresholdNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence threshold not found",
		http.StatusNotFound,
	)
	ErrAbsenceThresholdNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an absence threshold with this name already exists",
		http.StatusConflict,
	)
	ErrAbsenceThresholdOverlap = apperror.New(
		apperror.CodeConflict,
		"the days range overlaps an existing active absence threshold",
		http.StatusConflict,
	)
	ErrInvalidDaysRange = apperror.New(
		apperror.CodeInvalidInput,
		"max_days must be greater than or equal to min_days",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustmentPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment_percentage must be a decimal between -100 and 100",
		http.StatusBadRequest,
	)
)
