package apperror

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to the HTTP representation written by handlers.
// Unknown errors collapse to a generic 500; the original error is only logged,
// never leaked to the client.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	zap.L().Error("unhandled service error", zap.Error(err))
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
