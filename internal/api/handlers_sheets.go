package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/security"
)

const sheetProbeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// LinkSheet attaches an existing spreadsheet to the organization after
// verifying the configured credentials can read it.
func (handler *Handler) LinkSheet(c *fiber.Ctx) error {
	if handler.sheetClient == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "sheets integration is not configured")
	}

	input := linkSheetInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	title, err := handler.sheetClient.SpreadsheetTitle(c.Context(), input.SpreadsheetID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "spreadsheet not found or not accessible")
	}

	if err := handler.repos.Organizations.UpdateSpreadsheetID(currentOrgID(c), input.SpreadsheetID); err != nil {
		return handler.internalError(c, err, "link spreadsheet failed")
	}
	return c.JSON(fiber.Map{"success": true, "title": title})
}

// TestSheet appends a probe row carrying a short random marker so the
// admin can confirm in the spreadsheet that writes land.
func (handler *Handler) TestSheet(c *fiber.Ctx) error {
	if handler.sheetClient == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "sheets integration is not configured")
	}

	organization, err := handler.repos.Organizations.FindByID(currentOrgID(c))
	if err != nil {
		return handler.internalError(c, err, "load organization failed")
	}
	if organization.SpreadsheetID == "" {
		return apiError(c, fiber.StatusNotFound, "no spreadsheet linked")
	}

	marker, err := security.RandomString(6, sheetProbeAlphabet)
	if err != nil {
		return handler.internalError(c, err, "generate probe marker failed")
	}

	row := []any{time.Now().Format("2006-01-02 15:04"), "Connection test", marker}
	if err := handler.sheetClient.AppendRow(c.Context(), organization.SpreadsheetID, "Leave Requests", row); err != nil {
		handler.logger.Warn().Err(err).Str("org_id", organization.ID).Msg("sheet test append failed")
		return apiError(c, fiber.StatusBadGateway, "test append failed")
	}
	return c.JSON(fiber.Map{"success": true, "marker": marker})
}

func (handler *Handler) CreateSheet(c *fiber.Ctx) error {
	if handler.sheetClient == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "sheets integration is not configured")
	}

	organization, err := handler.repos.Organizations.FindByID(currentOrgID(c))
	if err != nil {
		return handler.internalError(c, err, "load organization failed")
	}

	spreadsheetID, err := handler.sheetClient.CreateSpreadsheet(c.Context(), organization.Name+" - Time Off Log", organization.AdminEmail)
	if err != nil {
		handler.logger.Warn().Err(err).Str("org_id", organization.ID).Msg("create spreadsheet failed")
		return apiError(c, fiber.StatusBadGateway, "create spreadsheet failed")
	}

	if err := handler.repos.Organizations.UpdateSpreadsheetID(organization.ID, spreadsheetID); err != nil {
		return handler.internalError(c, err, "link created spreadsheet failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "spreadsheetId": spreadsheetID})
}
