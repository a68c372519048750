package servicebracketerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrServiceBracketNotFound = apperror.New(
		apperror.CodeNotFound,
		"service bracket not found",
		http.StatusNotFound,
	)
	ErrServiceBracketNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a service bracket with this name already exists",
		http.StatusConflict,
	)
	ErrServiceBracketOverlap = apperror.New(
		apperror.CodeConflict,
		"the years range overlaps an existing active service bracket",
		http.StatusConflict,
	)
	ErrInvalidYearsRange = apperror.New(
		apperror.CodeInvalidInput,
		"max_years must be greater than or equal to min_years",
		http.StatusBadRequest,
	)
	ErrInvalidIncentivePercentage = apperror.New(
		apperror.CodeInvalidInput,
		"incentive_percentage must be a decimal between 0 and 100",
		http.StatusBadRequest,
	)
)
