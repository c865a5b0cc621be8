package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwatch/incident-backend-go/internal/config"
	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/middleware"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	invitationHandler InvitationHandler,
	eventHandler EventHandler,
	reportHandler ReportHandler,
	retentionHandler RetentionHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "incident-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/invitations", func(r chi.Router) {
			// Public token routes: the invitee has no account yet
			r.Get("/{token}", invitationHandler.GetByToken)
			r.Post("/{token}/accept", invitationHandler.Accept)
			r.Post("/{token}/decline", invitationHandler.Decline)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Use(middleware.AdminOnly)
				r.Post("/", invitationHandler.Issue)
				r.Get("/", invitationHandler.ListPending)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/users", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionUserViewAll)).
					Get("/", userHandler.List)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", eventHandler.List)
				r.With(middleware.RequireOrganizer).Post("/", eventHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", eventHandler.GetByID)
					r.Get("/shifts", eventHandler.ListShifts)
					r.With(middleware.RequireOrganizer).Post("/shifts", eventHandler.CreateShift)
					r.With(middleware.RequirePermission(user.PermissionReportViewEvent)).
						Get("/reports", reportHandler.ListByEvent)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/", reportHandler.Submit)
				r.Get("/my", reportHandler.ListMine)
			})

			r.Route("/gdpr/settings", func(r chi.Router) {
				r.Get("/", retentionHandler.Get)
				r.With(middleware.AdminOnly).Put("/", retentionHandler.Update)
			})
		})
	})
	return r
}
