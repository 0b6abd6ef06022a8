package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"carehub/internal/delivery/http/helpers"
	"carehub/internal/delivery/http/middleware"
	"carehub/internal/domain"
)

type TeamController struct {
	Logger  *slog.Logger
	Service domain.TeamService
}

func NewTeamController(logger *slog.Logger, svc domain.TeamService) *TeamController {
	return &TeamController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTeamRequest is the request body for POST /teams.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements helpers.Validator.
func (r *CreateTeamRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// CreateTeam godoc
// @Summary Create a care team
// @Description Creates a team owned by the caller. The caller receives an active membership with the owner role.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateTeamRequest true "Team details"
// @Success 201 {object} domain.Team
// @Failure 400 {object} helpers.APIError "error code: bad_request"
// @Failure 401 {object} helpers.APIError "error code: unauthorized"
// @Failure 409 {object} helpers.APIError "error code: conflict"
// @Router /teams [post]
func (c *TeamController) CreateTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, r, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req CreateTeamRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	team, err := c.Service.CreateTeam(r.Context(), req.Name, req.Description, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, team)
}

// GetTeam godoc
// @Summary Get a team
// @Description Returns the team. The caller must be a member.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Success 200 {object} domain.Team
// @Failure 403 {object} helpers.APIError "error code: membership.error.user.not.member"
// @Failure 404 {object} helpers.APIError "error code: not_found"
// @Router /teams/{teamID} [get]
func (c *TeamController) GetTeam(w http.ResponseWriter, r *http.Request) {
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

	team, err := c.Service.GetTeam(r.Context(), teamID, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, team)
}

// ListMembers godoc
// @Summary List the members of a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Success 200 {array} domain.TeamMember
// @Failure 401 {object} helpers.APIError "error code: unauthorized"
// @Failure 403 {object} helpers.APIError "error code: membership.error.user.not.member"
// @Router /teams/{teamID}/members [get]
func (c *TeamController) ListMembers(w http.ResponseWriter, r *http.Request) {
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

	members, err := c.Service.ListMembers(r.Context(), teamID, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}

// CreateNoteRequest is the request body for POST /teams/{teamID}/notes.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate implements helpers.Validator.
func (r *CreateNoteRequest) Validate() []string {
	if strings.TrimSpace(r.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// CreateNote godoc
// @Summary Create a care note in a team
// @Description Creates a note. The caller must be a member of the team.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Param body body controllers.CreateNoteRequest true "Note details"
// @Success 201 {object} domain.Note
// @Failure 403 {object} helpers.APIError "error code: membership.error.user.not.member"
// @Router /teams/{teamID}/notes [post]
func (c *TeamController) CreateNote(w http.ResponseWriter, r *http.Request) {
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

	var req CreateNoteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	note, err := c.Service.CreateNote(r.Context(), teamID, userID, req.Title, req.Content)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, note)
}

// ListNotes godoc
// @Summary List a team's care notes
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Success 200 {array} domain.Note
// @Failure 403 {object} helpers.APIError "error code: membership.error.user.not.member"
// @Router /teams/{teamID}/notes [get]
func (c *TeamController) ListNotes(w http.ResponseWriter, r *http.Request) {
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

	notes, err := c.Service.ListNotes(r.Context(), teamID, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, notes)
}

// CreateTaskRequest is the request body for POST /teams/{teamID}/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// Validate implements helpers.Validator.
func (r *CreateTaskRequest) Validate() []string {
	if strings.TrimSpace(r.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// CreateTask godoc
// @Summary Create a care task in a team
// @Description Creates a task. The caller must be a member of the team.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Param body body controllers.CreateTaskRequest true "Task details"
// @Success 201 {object} domain.Task
// @Failure 403 {object} helpers.APIError "error code: membership.error.user.not.member"
// @Router /teams/{teamID}/tasks [post]
func (c *TeamController) CreateTask(w http.ResponseWriter, r *http.Request) {
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

	var req CreateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	task, err := c.Service.CreateTask(r.Context(), teamID, userID, req.Title, req.Description, req.Priority, req.DueDate)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, task)
}

// ListTasks godoc
// @Summary List a team's care tasks
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Success 200 {array} domain.Task
// @Failure 403 {object} helpers.APIError "error code: membership.error.user.not.member"
// @Router /teams/{teamID}/tasks [get]
func (c *TeamController) ListTasks(w http.ResponseWriter, r *http.Request) {
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

	tasks, err := c.Service.ListTasks(r.Context(), teamID, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tasks)
}
