package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/leavedesk/leavedesk/internal/api"
	"github.com/leavedesk/leavedesk/internal/config"
	"github.com/leavedesk/leavedesk/internal/db"
	"github.com/leavedesk/leavedesk/internal/mailer"
	"github.com/leavedesk/leavedesk/internal/services"
	"github.com/leavedesk/leavedesk/internal/sheets"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration failed")
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	repos := db.NewRepositories(database)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelBoot()

	// Sheets and SMTP are independently optional; a nil collaborator is
	// the disabled state and the fan-out degrades to logging.
	var sheetClient *sheets.Client
	var sheetAppender services.SheetAppender
	var sheetProvisioner services.SheetProvisioner
	if len(cfg.GoogleCredentialsJSON) > 0 {
		sheetClient, err = sheets.NewClient(bootCtx, cfg.GoogleCredentialsJSON)
		if err != nil {
			log.Warn().Err(err).Msg("sheets client init failed, continuing without sheets")
		} else {
			sheetAppender = sheetClient
			sheetProvisioner = sheetClient
		}
	}

	var mailSender services.MailSender
	if cfg.SMTP.Enabled() {
		mailSender = mailer.New(cfg.SMTP)
	} else {
		log.Info().Msg("smtp not configured, email notifications disabled")
	}

	notifier := services.NewNotificationService(
		repos.Organizations,
		repos.Recipients,
		sheetAppender,
		mailSender,
		cfg.FallbackSheetID,
		cfg.FallbackRecipients,
		time.Local,
		log,
	)

	handler := api.NewHandler(api.HandlerDeps{
		Repos:        repos,
		Auth:         services.NewAuthService(repos.Profiles),
		Registration: services.NewRegistrationService(repos.Organizations, repos.Profiles, repos.Recipients, sheetProvisioner, log),
		Requests:     services.NewRequestService(repos.Requests, repos.Reference, notifier),
		Approvals:    services.NewApprovalService(repos.Requests, repos.Profiles, repos.Reference, notifier),
		Notifier:     notifier,
		SheetClient:  sheetClient,
		SecretKey:    cfg.SecretKey,
		CookieSecure: cfg.CookieSecure,
		Logger:       log,
	})

	app := fiber.New(fiber.Config{
		AppName:               "LeaveDesk",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("LeaveDesk listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
