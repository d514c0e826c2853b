package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/services"
)

// SendNotification re-runs the fan-out for an arbitrary event, scoped to
// the caller's organization. The portal's own submission and decision
// paths trigger the fan-out internally; this endpoint exists for manual
// follow-up after a logged sheet or email failure.
func (handler *Handler) SendNotification(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if profile.OrganizationID == nil {
		return apiError(c, fiber.StatusForbidden, "profile is not assigned to an organization")
	}

	input := notificationSendInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	eventType, err := services.ParseEventType(input.Type)
	if errors.Is(err, services.ErrUnknownEventType) {
		return apiError(c, fiber.StatusBadRequest, "unknown notification type")
	}

	result := handler.notifier.Send(c.Context(), services.NotificationEvent{
		Type:           eventType,
		OrganizationID: *profile.OrganizationID,
		RequestID:      input.RequestID,
		RequesterName:  input.RequesterName,
		RequesterEmail: input.RequesterEmail,
		LeaveTypeName:  input.LeaveType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Reason:         input.Reason,
		CoverageName:   input.CoverageName,
		AdminNotes:     input.AdminNotes,
	})
	return c.JSON(result)
}
