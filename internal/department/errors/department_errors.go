package departmenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a department with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidIncentivePercentage = apperror.New(
		apperror.CodeInvalidInput,
		"incentive percentage must be a decimal between 0 and 100",
		http.StatusBadRequest,
	)
)
