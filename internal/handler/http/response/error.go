package response

import (
	"errors"
	"net/http"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/auth"
	"github.com/dtr-tools/dtr-backend-go/internal/domain/deduction"
	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Engine input errors
	var invalidInput *deduction.InvalidInputError
	if errors.As(err, &invalidInput) {
		BadRequest(w, invalidInput.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Record domain errors
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, record.ErrDuplicateDate):
		Conflict(w, "A record for this date already exists; confirm to add another")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
