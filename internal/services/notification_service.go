package services

import (
	"context"
	"time"

	"github.com/leavedesk/leavedesk/internal/models"
	"github.com/rs/zerolog"
)

type NotificationResult struct {
	Success   bool `json:"success"`
	EmailSent bool `json:"emailSent"`
}

// SheetAppender appends one row to a tab of a spreadsheet. A nil
// appender means Sheets is not configured.
type SheetAppender interface {
	AppendRow(ctx context.Context, spreadsheetID string, tab string, values []any) error
}

// MailSender delivers one rendered message. A nil sender means email is
// not configured, which is a valid disabled state rather than an error.
type MailSender interface {
	Send(ctx context.Context, to []string, subject string, htmlBody string) error
}

type ActiveRecipientSource interface {
	ListActiveEmails(orgID string) ([]string, error)
}

type OrganizationSheetSource interface {
	FindByID(orgID string) (models.Organization, error)
}

type NotificationService struct {
	organizations      OrganizationSheetSource
	recipients         ActiveRecipientSource
	sheets             SheetAppender
	mailer             MailSender
	fallbackSheetID    string
	fallbackRecipients []string
	location           *time.Location
	logger             zerolog.Logger
}

func NewNotificationService(
	organizations OrganizationSheetSource,
	recipients ActiveRecipientSource,
	sheets SheetAppender,
	mailer MailSender,
	fallbackSheetID string,
	fallbackRecipients []string,
	location *time.Location,
	logger zerolog.Logger,
) *NotificationService {
	if location == nil {
		location = time.Local
	}
	return &NotificationService{
		organizations:      organizations,
		recipients:         recipients,
		sheets:             sheets,
		mailer:             mailer,
		fallbackSheetID:    fallbackSheetID,
		fallbackRecipients: fallbackRecipients,
		location:           location,
		logger:             logger,
	}
}

// Send fans one event out to the spreadsheet and to email. Each step
// runs inside its own error boundary: a sheet failure never blocks the
// email and vice versa, and neither failure is surfaced as an error to
// the caller. Nothing here retries; failures are logged and counted for
// manual follow-up.
func (service *NotificationService) Send(ctx context.Context, event NotificationEvent) NotificationResult {
	result := NotificationResult{Success: true}

	if event.Type.IsSubmission() {
		service.appendToSheet(ctx, event)
	}

	recipients := service.resolveRecipients(event)
	if service.mailer == nil || len(recipients) == 0 {
		return result
	}

	subject, body, err := renderEmail(event)
	if err != nil {
		emailsTotal.WithLabelValues("render_failed").Inc()
		service.logger.Error().Err(err).Str("event", string(event.Type)).
			Msg("render notification email failed")
		return result
	}

	if err := service.mailer.Send(ctx, recipients, subject, body); err != nil {
		emailsTotal.WithLabelValues("send_failed").Inc()
		service.logger.Error().Err(err).Str("event", string(event.Type)).
			Strs("to", recipients).Msg("send notification email failed")
		return result
	}

	emailsTotal.WithLabelValues("sent").Inc()
	result.EmailSent = true
	return result
}

func (service *NotificationService) appendToSheet(ctx context.Context, event NotificationEvent) {
	if service.sheets == nil {
		sheetAppendsTotal.WithLabelValues("disabled").Inc()
		return
	}

	spreadsheetID := service.resolveSpreadsheetID(event.OrganizationID)
	if spreadsheetID == "" {
		sheetAppendsTotal.WithLabelValues("no_sheet").Inc()
		service.logger.Warn().Str("org_id", event.OrganizationID).
			Msg("no spreadsheet linked and no fallback configured, skipping append")
		return
	}

	submittedAt := time.Now().In(service.location).Format("2006-01-02 15:04")
	if err := service.sheets.AppendRow(ctx, spreadsheetID, event.SheetTab(), event.SheetRow(submittedAt)); err != nil {
		sheetAppendsTotal.WithLabelValues("failed").Inc()
		service.logger.Error().Err(err).Str("org_id", event.OrganizationID).
			Str("tab", event.SheetTab()).Msg("spreadsheet append failed")
		return
	}
	sheetAppendsTotal.WithLabelValues("ok").Inc()
}

func (service *NotificationService) resolveSpreadsheetID(orgID string) string {
	organization, err := service.organizations.FindByID(orgID)
	if err != nil {
		service.logger.Warn().Err(err).Str("org_id", orgID).
			Msg("resolve organization spreadsheet failed, using fallback")
		return service.fallbackSheetID
	}
	if organization.SpreadsheetID != "" {
		return organization.SpreadsheetID
	}
	return service.fallbackSheetID
}

// resolveRecipients routes decision events to the requester and
// submission events to the organization's active recipients. The
// environment fallback list applies only when the recipients lookup
// fails: an empty successful result means an admin disabled everyone,
// and that choice is honored.
func (service *NotificationService) resolveRecipients(event NotificationEvent) []string {
	if event.Type.IsDecision() {
		if event.RequesterEmail == "" {
			return nil
		}
		return []string{event.RequesterEmail}
	}

	emails, err := service.recipients.ListActiveEmails(event.OrganizationID)
	if err != nil {
		service.logger.Warn().Err(err).Str("org_id", event.OrganizationID).
			Msg("recipients lookup failed, using environment fallback")
		return service.fallbackRecipients
	}
	return emails
}
