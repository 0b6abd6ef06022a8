package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"carehub/internal/delivery/http/helpers"
	"carehub/internal/delivery/http/middleware"
	"carehub/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// InviteRequest is the request body for POST /teams/{teamID}/invitations.
type InviteRequest struct {
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Validate implements helpers.Validator.
func (r *InviteRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Role) == "" {
		errs = append(errs, "role is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	return errs
}

// Invite godoc
// @Summary Invite someone to a care team
// @Description Issues a pending invitation for the given role and emails the recipient an invitation link. The caller must be authenticated; the invitation records them as the inviter.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Param body body controllers.InviteRequest true "Invitation details"
// @Success 200 {object} domain.Report
// @Failure 400 {object} helpers.APIError "error code: bad_request"
// @Failure 401 {object} helpers.APIError "error code: unauthorized"
// @Failure 404 {object} helpers.APIError "error code: not_found"
// @Failure 422 {object} helpers.APIError "error code: invalid_role"
// @Router /teams/{teamID}/invitations [post]
func (c *InvitationController) Invite(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamID")
	if !uuidRegex.MatchString(teamID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid teamID")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, r, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req InviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	report, err := c.Service.Invite(r.Context(), teamID, req.Role, req.FirstName, req.LastName, req.Email, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// ListInvitations godoc
// @Summary List a team's invitations
// @Description Returns the team's invitations, newest state included. Tokens are never serialized. The caller must be a member.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Success 200 {array} domain.Invitation
// @Failure 403 {object} helpers.APIError "error code: membership.error.user.not.member"
// @Router /teams/{teamID}/invitations [get]
func (c *InvitationController) ListInvitations(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamID")
	if !uuidRegex.MatchString(teamID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid teamID")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, r, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	invitations, err := c.Service.ListByTeam(r.Context(), teamID, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invitations)
}

// TokenRequest is the request body for the validate and accept endpoints.
type TokenRequest struct {
	Token string `json:"token"`
}

// Validate implements helpers.Validator.
func (r *TokenRequest) Validate() []string {
	if strings.TrimSpace(r.Token) == "" {
		return []string{"token is required"}
	}
	return nil
}

// ValidateInvitation godoc
// @Summary Validate an invitation token
// @Description Checks that the token exists, has not been used, and has not expired, and returns a read-only view of the invitation.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body controllers.TokenRequest true "Invitation token"
// @Success 200 {object} domain.InvitationView
// @Failure 404 {object} helpers.APIError "error code: not_found"
// @Failure 409 {object} helpers.APIError "error code: invitation.already_used"
// @Failure 410 {object} helpers.APIError "error code: invitation.expired"
// @Router /invitations/validate [post]
func (c *InvitationController) ValidateInvitation(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	view, err := c.Service.Validate(r.Context(), req.Token)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// AcceptInvitation godoc
// @Summary Accept an invitation
// @Description Marks the invitation as used and creates the membership, atomically. Re-submitting after a success yields a conflict, never a second membership.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body controllers.TokenRequest true "Invitation token"
// @Success 200 {object} domain.Report
// @Failure 404 {object} helpers.APIError "error code: not_found"
// @Failure 409 {object} helpers.APIError "error code: invitation.already_used"
// @Failure 410 {object} helpers.APIError "error code: invitation.expired"
// @Router /invitations/accept [post]
func (c *InvitationController) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	report, err := c.Service.Accept(r.Context(), req.Token)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
