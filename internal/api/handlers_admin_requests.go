package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/models"
	"github.com/leavedesk/leavedesk/internal/services"
)

func (handler *Handler) ListOrgRequests(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))
	switch status {
	case "", models.StatusPending, models.StatusApproved, models.StatusDenied:
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown status filter")
	}

	requests, err := handler.approvals.ListOrganizationRequests(currentOrgID(c), status)
	if err != nil {
		return handler.internalError(c, err, "list organization requests failed")
	}
	return c.JSON(fiber.Map{"requests": newLeaveRequestViews(requests)})
}

func (handler *Handler) ApproveRequest(c *fiber.Ctx) error {
	return handler.decideRequest(c, true)
}

func (handler *Handler) DenyRequest(c *fiber.Ctx) error {
	return handler.decideRequest(c, false)
}

func (handler *Handler) decideRequest(c *fiber.Ctx, approve bool) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := decisionInput{}
	if len(c.Body()) > 0 {
		if message := handler.decodeBody(c, &input); message != "" {
			return apiError(c, fiber.StatusBadRequest, message)
		}
	}

	request, notification, err := handler.approvals.Decide(c.Context(), profile, c.Params("id"), approve, strings.TrimSpace(input.AdminNotes))
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		return apiError(c, fiber.StatusNotFound, "request not found")
	case errors.Is(err, services.ErrRequestAlreadyDecided):
		return apiError(c, fiber.StatusConflict, "request already decided")
	case err != nil:
		return handler.internalError(c, err, "decide request failed")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"emailSent": notification.EmailSent,
		"request":   newLeaveRequestView(request),
	})
}
