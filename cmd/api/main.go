package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shiftwatch/incident-backend-go/internal/config"
	appHTTP "github.com/shiftwatch/incident-backend-go/internal/handler/http"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/cron"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/database"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/jwt"
	"github.com/shiftwatch/incident-backend-go/internal/repository/postgresql"
	authService "github.com/shiftwatch/incident-backend-go/internal/service/auth"
	eventService "github.com/shiftwatch/incident-backend-go/internal/service/event"
	invitationService "github.com/shiftwatch/incident-backend-go/internal/service/invitation"
	reportService "github.com/shiftwatch/incident-backend-go/internal/service/report"
	retentionService "github.com/shiftwatch/incident-backend-go/internal/service/retention"
	userService "github.com/shiftwatch/incident-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)

	// The policy singleton must exist before anything reads it
	if err := policyRepo.EnsureDefaults(context.Background()); err != nil {
		log.Fatal("Error seeding retention policy: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	invitationSvc := invitationService.NewInvitationService(db, invitationRepo, userRepo, policyRepo, JWTService)
	eventSvc := eventService.NewEventService(eventRepo, shiftRepo, userRepo)
	reportSvc := reportService.NewReportService(reportRepo, eventRepo, shiftRepo, userRepo)
	policySvc := retentionService.NewPolicyService(policyRepo, reportRepo, userRepo)
	userSvc := userService.NewUserService(userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	invitationHandler := appHTTP.NewInvitationHandler(invitationSvc)
	eventHandler := appHTTP.NewEventHandler(eventSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	retentionHandler := appHTTP.NewRetentionHandler(policySvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	scheduler := cron.NewScheduler()
	retentionJobs := cron.NewRetentionJobs(invitationSvc, policySvc, cfg.Retention.SweepInterval)
	retentionJobs.RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		invitationHandler,
		eventHandler,
		reportHandler,
		retentionHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatal("Server shutdown error: ", err)
	}
}
