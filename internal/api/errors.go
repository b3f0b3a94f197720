package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/recruit-api/internal/api/shared"
	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/phrazzld/recruit-api/internal/store"
)

// Request-level errors raised by the handlers themselves.
var (
	// ErrInvalidIndex is returned when a path index is not a positive integer.
	ErrInvalidIndex = errors.New("index must be a positive integer")

	// ErrIndexOutOfRange is returned when an index does not address an entry
	// of the currently displayed list.
	ErrIndexOutOfRange = errors.New("index is out of range of the displayed list")

	// ErrBadRequestBody is returned when a request body cannot be decoded.
	ErrBadRequestBody = errors.New("invalid request body")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Not found errors, including stale indexes
	case store.IsNotFoundError(err),
		errors.Is(err, ErrIndexOutOfRange):
		return http.StatusNotFound

	// Duplicate and clash errors
	case store.IsDuplicateError(err),
		store.IsConflictError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, ErrInvalidIndex),
		errors.Is(err, ErrBadRequestBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateTime),
		errors.Is(err, domain.ErrUnknownSortKey),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyStudentID),
		errors.Is(err, domain.ErrInvalidTag),
		errors.Is(err, domain.ErrInvalidApplicationStatus),
		errors.Is(err, domain.ErrInvalidInterviewStatus),
		errors.Is(err, domain.ErrZeroStartTime),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.As(err, &domainErr):
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)

	// Not found errors
	case errors.Is(err, store.ErrCandidateNotFound):
		return "Candidate not found"
	case errors.Is(err, store.ErrInterviewNotFound):
		return "Interview not found"
	case errors.Is(err, ErrIndexOutOfRange):
		return "The index provided is invalid"

	// Duplicate and clash errors, checked most specific first
	case errors.Is(err, store.ErrDuplicateCandidateInterview):
		return "This candidate already has an interview scheduled"
	case errors.Is(err, store.ErrConflictingInterview):
		return "This interview clashes with an existing interview"
	case errors.Is(err, store.ErrDuplicateCandidate):
		return "This candidate already exists in the address book"

	// Bad request errors
	case errors.Is(err, ErrInvalidIndex):
		return "Index must be a positive integer"
	case errors.Is(err, ErrBadRequestBody):
		return "Invalid request format"
	case errors.Is(err, domain.ErrInvalidDateTime):
		return "Interview date and time must be in the future, in the format yyyy-MM-dd HH:mm"
	case errors.Is(err, domain.ErrUnknownSortKey):
		return "Sort key must be one of name, student_id, application_status, interview_status"
	case errors.Is(err, domain.ErrEmptyName):
		return "Name is required"
	case errors.Is(err, domain.ErrEmptyStudentID):
		return "Student ID is required"
	case errors.Is(err, domain.ErrInvalidTag):
		return "Tag names should be alphanumeric"
	case errors.Is(err, domain.ErrInvalidApplicationStatus):
		return "Invalid application status"
	case errors.Is(err, domain.ErrInvalidInterviewStatus):
		return "Invalid interview status"
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a user-friendly message
// naming the first failing field. Field names are the JSON names, as
// registered by shared.ValidateRequest.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	field := fe.Field()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "numeric":
		return "should only contain numbers"
	case "alphanum":
		return "should only contain letters and digits"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status code and safe message for err. A
// non-empty fallback replaces the generic message for server errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
