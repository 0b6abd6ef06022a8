package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"carehub/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest         = "bad_request"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeNotFound           = "not_found"
	ErrCodeInvalidRole        = "invalid_role"
	ErrCodeInvitationExpired  = "invitation.expired"
	ErrCodeInvitationUsed     = "invitation.already_used"
	ErrCodeNotMember          = "membership.error.user.not.member"
	ErrCodeAlreadyMember      = "membership.already_exists"
	ErrCodeConflict           = "conflict"
	ErrCodeInternalError      = "internal_error"
)

// APIError is the uniform error envelope across the API boundary.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes the error envelope with the request path.
func WriteJSONError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIError{Code: code, Message: message, Path: r.URL.Path})
}

// WriteDomainError maps a domain error to its HTTP status and error code and
// writes the envelope. Errors outside the known taxonomy are logged and
// surfaced as a 500 with no internal detail.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrInviteeNotFound),
		errors.Is(err, domain.ErrMembershipNotFound):
		WriteJSONError(w, r, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidRole):
		WriteJSONError(w, r, http.StatusUnprocessableEntity, ErrCodeInvalidRole, err.Error())
	case errors.Is(err, domain.ErrInvitationExpired):
		WriteJSONError(w, r, http.StatusGone, ErrCodeInvitationExpired, err.Error())
	case errors.Is(err, domain.ErrInvitationUsed):
		WriteJSONError(w, r, http.StatusConflict, ErrCodeInvitationUsed, err.Error())
	case errors.Is(err, domain.ErrNotTeamMember):
		WriteJSONError(w, r, http.StatusForbidden, ErrCodeNotMember, err.Error())
	case errors.Is(err, domain.ErrAlreadyMember):
		WriteJSONError(w, r, http.StatusConflict, ErrCodeAlreadyMember, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateTeamName):
		WriteJSONError(w, r, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
