package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"carehub/internal/delivery/http/controllers"
	"carehub/internal/delivery/http/middleware"
	"carehub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	teamController *controllers.TeamController,
	invitationController *controllers.InvitationController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Teams
	mux.HandleFunc("POST /teams", auth(teamController.CreateTeam))
	mux.HandleFunc("GET /teams/{teamID}", auth(teamController.GetTeam))
	mux.HandleFunc("GET /teams/{teamID}/members", auth(teamController.ListMembers))
	mux.HandleFunc("POST /teams/{teamID}/notes", auth(teamController.CreateNote))
	mux.HandleFunc("GET /teams/{teamID}/notes", auth(teamController.ListNotes))
	mux.HandleFunc("POST /teams/{teamID}/tasks", auth(teamController.CreateTask))
	mux.HandleFunc("GET /teams/{teamID}/tasks", auth(teamController.ListTasks))

	// Invitations. Validate and accept are reached from the emailed link,
	// before the invitee has a session, so they are unauthenticated.
	mux.HandleFunc("POST /teams/{teamID}/invitations", auth(invitationController.Invite))
	mux.HandleFunc("GET /teams/{teamID}/invitations", auth(invitationController.ListInvitations))
	mux.HandleFunc("POST /invitations/validate", invitationController.ValidateInvitation)
	mux.HandleFunc("POST /invitations/accept", invitationController.AcceptInvitation)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
