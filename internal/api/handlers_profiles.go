package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListOrgProfiles(c *fiber.Ctx) error {
	profiles, err := handler.repos.Profiles.ListByOrganization(currentOrgID(c))
	if err != nil {
		return handler.internalError(c, err, "list profiles failed")
	}

	views := make([]profileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newProfileView(profile))
	}
	return c.JSON(fiber.Map{"profiles": views})
}

// UpdateProfileRole changes a profile's role within the admin's own
// organization only; the scoped update reports not-found for any
// profile outside it.
func (handler *Handler) UpdateProfileRole(c *fiber.Ctx) error {
	input := profileRoleInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	updated, err := handler.repos.Profiles.UpdateRole(c.Params("id"), currentOrgID(c), input.Role)
	if err != nil {
		return handler.internalError(c, err, "update profile role failed")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
