package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/leavedesk/leavedesk/internal/db"
	"github.com/leavedesk/leavedesk/internal/services"
	"github.com/leavedesk/leavedesk/internal/sheets"
	"github.com/rs/zerolog"
)

const authTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	repos        *db.Repositories
	auth         *services.AuthService
	registration *services.RegistrationService
	requests     *services.RequestService
	approvals    *services.ApprovalService
	notifier     *services.NotificationService
	sheetClient  *sheets.Client
	secretKey    []byte
	cookieSecure bool
	validate     *validator.Validate
	logger       zerolog.Logger
}

type HandlerDeps struct {
	Repos        *db.Repositories
	Auth         *services.AuthService
	Registration *services.RegistrationService
	Requests     *services.RequestService
	Approvals    *services.ApprovalService
	Notifier     *services.NotificationService

	// SheetClient stays nil when Sheets credentials are absent; the
	// admin sheet endpoints then answer with a disabled notice.
	SheetClient *sheets.Client

	SecretKey    string
	CookieSecure bool
	Logger       zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		repos:        deps.Repos,
		auth:         deps.Auth,
		registration: deps.Registration,
		requests:     deps.Requests,
		approvals:    deps.Approvals,
		notifier:     deps.Notifier,
		sheetClient:  deps.SheetClient,
		secretKey:    []byte(deps.SecretKey),
		cookieSecure: deps.CookieSecure,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       deps.Logger,
	}
}
