package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"carehub/config"
	_ "carehub/docs"
	authadapter "carehub/internal/adapters/auth"
	emailadapter "carehub/internal/adapters/email"
	httpdelivery "carehub/internal/delivery/http"
	"carehub/internal/delivery/http/controllers"
	"carehub/internal/delivery/http/middleware"
	"carehub/internal/repository/postgres"
	"carehub/internal/services"
)

const bcryptCost = 12

// @title CareHub API
// @version 1.0
// @description Care team collaboration backend: accounts, teams, memberships and the invitation lifecycle.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	if err := postgres.ApplyMigrations(db); err != nil {
		logger.Error("failed to apply migrations", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcryptCost)
	tokenIssuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := authadapter.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := emailadapter.NewTemplateRenderer()

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	authService := services.NewAuthService(
		userRepo,
		hasher,
		tokenIssuer,
		time.Duration(cfg.TokenExpiryHours)*time.Hour,
		emailService,
		logger,
	)
	membershipService := services.NewMembershipService(membershipRepo)
	permissionResolver := services.NewRolePermissionResolver(roleRepo)
	teamService := services.NewTeamService(
		teamRepo,
		userRepo,
		roleRepo,
		membershipRepo,
		noteRepo,
		taskRepo,
		membershipService,
		permissionResolver,
	)
	invitationService := services.NewInvitationService(
		invitationRepo,
		userRepo,
		teamRepo,
		roleRepo,
		emailService,
		membershipService,
		time.Duration(cfg.InvitationExpirySeconds)*time.Second,
		cfg.BaseURL,
	)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	teamController := controllers.NewTeamController(logger, teamService)
	invitationController := controllers.NewInvitationController(logger, invitationService)

	mux := httpdelivery.NewRouter(logger, tokenVerifier, authController, teamController, invitationController)

	var handler http.Handler = mux
	handler = middleware.CORS(strings.Split(cfg.AllowedOrigins, ","), handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
