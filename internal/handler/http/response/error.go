package response

import (
	"errors"
	"net/http"

	"github.com/sssms/hrms-backend-go/internal/domain/attendance"
	"github.com/sssms/hrms-backend-go/internal/domain/auth"
	"github.com/sssms/hrms-backend-go/internal/domain/user"
	"github.com/sssms/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Attendance domain errors. Rejected transitions are conflicts: the
	// request was well formed but the day is already in a later state.
	case errors.Is(err, attendance.ErrWeekendPunch):
		Conflict(w, "Attendance cannot be marked on weekends")
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in for today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out for today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		NotFound(w, "No punch-in found for today")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
