package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/services"
)

func (handler *Handler) RegisterOrg(c *fiber.Ctx) error {
	input := registerOrgInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	organization, admin, err := handler.registration.RegisterOrganization(c.Context(), services.RegistrationInput{
		OrganizationName: input.OrganizationName,
		AdminName:        input.AdminName,
		AdminEmail:       input.AdminEmail,
		Password:         input.Password,
	})
	switch {
	case errors.Is(err, services.ErrRegistrationInputInvalid):
		return apiError(c, fiber.StatusBadRequest, "all fields are required")
	case errors.Is(err, services.ErrPasswordTooShort):
		return apiError(c, fiber.StatusBadRequest, "password must be at least 6 characters")
	case errors.Is(err, services.ErrOrganizationNameInvalid):
		return apiError(c, fiber.StatusBadRequest, "organization name must contain letters or digits")
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, "email already registered")
	case err != nil:
		return handler.internalError(c, err, "register organization failed")
	}

	if err := handler.setAuthCookie(c, &admin); err != nil {
		return handler.internalError(c, err, "issue auth token failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"organization": newOrganizationView(organization),
		"profile":      newProfileView(admin),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	profile, err := handler.auth.Authenticate(input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return handler.internalError(c, err, "login failed")
	}

	if err := handler.setAuthCookie(c, &profile); err != nil {
		return handler.internalError(c, err, "issue auth token failed")
	}
	return c.JSON(fiber.Map{"success": true, "profile": newProfileView(profile)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"profile": newProfileView(*profile)})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	err := handler.auth.ChangePassword(profile, input.CurrentPassword, input.NewPassword)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusBadRequest, "invalid current password")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "password must be at least 6 characters")
	case err != nil:
		return handler.internalError(c, err, "change password failed")
	}
	return c.JSON(fiber.Map{"success": true})
}
