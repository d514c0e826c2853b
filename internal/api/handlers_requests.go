package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/services"
)

func (handler *Handler) SubmitRequest(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := submissionInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	request, notification, err := handler.requests.Submit(c.Context(), profile, services.SubmissionInput{
		Kind:          input.Kind,
		LeaveTypeID:   input.LeaveTypeID,
		PayPeriodID:   input.PayPeriodID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Reason:        input.Reason,
		CoverageName:  input.CoverageName,
		CoverageEmail: input.CoverageEmail,
	})
	switch {
	case errors.Is(err, services.ErrNoOrganization):
		return apiError(c, fiber.StatusForbidden, "profile is not assigned to an organization")
	case errors.Is(err, services.ErrSubmissionInputInvalid):
		return apiError(c, fiber.StatusBadRequest, "missing or invalid submission fields")
	case errors.Is(err, services.ErrSubmissionRangeInvalid):
		return apiError(c, fiber.StatusBadRequest, "end date must not be before start date")
	case errors.Is(err, services.ErrSingleDayOnly):
		return apiError(c, fiber.StatusBadRequest, "this leave type allows a single day only")
	case errors.Is(err, services.ErrLeaveTypeNotFound):
		return apiError(c, fiber.StatusNotFound, "leave type not found")
	case errors.Is(err, services.ErrPayPeriodNotFound):
		return apiError(c, fiber.StatusNotFound, "pay period not found")
	case err != nil:
		return handler.internalError(c, err, "submit request failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"emailSent": notification.EmailSent,
		"request":   newLeaveRequestView(request),
	})
}

func (handler *Handler) ListOwnRequests(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requests, err := handler.requests.ListOwn(profile)
	if errors.Is(err, services.ErrNoOrganization) {
		return apiError(c, fiber.StatusForbidden, "profile is not assigned to an organization")
	}
	if err != nil {
		return handler.internalError(c, err, "list own requests failed")
	}
	return c.JSON(fiber.Map{"requests": newLeaveRequestViews(requests)})
}
