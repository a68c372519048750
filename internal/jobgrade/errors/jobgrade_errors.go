package jobgradeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrJobGradeNotFound = apperror.New(
		apperror.CodeNotFound,
		"job grade not found",
		http.StatusNotFound,
	)
	ErrJobGradeNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a job grade with this name already exists",
		http.StatusConflict,
	)
)
