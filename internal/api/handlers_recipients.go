package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/models"
	"github.com/leavedesk/leavedesk/internal/services"
)

func (handler *Handler) ListRecipients(c *fiber.Ctx) error {
	recipients, err := handler.repos.Recipients.ListByOrganization(currentOrgID(c))
	if err != nil {
		return handler.internalError(c, err, "list recipients failed")
	}
	return c.JSON(fiber.Map{"recipients": newRecipientViews(recipients)})
}

func (handler *Handler) CreateRecipient(c *fiber.Ctx) error {
	input := recipientInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	email := services.NormalizeEmail(input.Email)
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "email must be a valid email")
	}

	recipient := models.NotificationRecipient{
		OrganizationID: currentOrgID(c),
		Email:          email,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if err := handler.repos.Recipients.Create(&recipient); err != nil {
		return handler.internalError(c, err, "create recipient failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"recipient": recipientView{ID: recipient.ID, Email: recipient.Email, IsActive: recipient.IsActive},
	})
}

func (handler *Handler) ToggleRecipient(c *fiber.Ctx) error {
	recipientID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipient id")
	}

	input := recipientToggleInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	updated, err := handler.repos.Recipients.SetActive(uint(recipientID), currentOrgID(c), *input.IsActive)
	if err != nil {
		return handler.internalError(c, err, "toggle recipient failed")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "recipient not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
