package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this number already exists",
		http.StatusConflict,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrHireDateInFuture = apperror.New(
		apperror.CodeInvalidInput,
		"hire_date cannot be in the future",
		http.StatusBadRequest,
	)
	ErrInvalidEmploymentStatus = apperror.New(
		apperror.CodeInvalidInput,
		"employment_status must be one of ACTIVE, ON_LEAVE, TERMINATED",
		http.StatusBadRequest,
	)
)
