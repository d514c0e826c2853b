package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/services"
)

// AdminOnly guards /api/admin routes. The target organization defaults
// to the caller's own; a caller naming any other organization is
// rejected before the role check, so a mismatched org always reads as
// "organization mismatch" regardless of role. Repository-level scoping
// remains the second line of defense behind this check.
func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requestedOrgID := strings.TrimSpace(c.Query("organization_id"))
	if requestedOrgID == "" {
		requestedOrgID = profile.OrgID()
	}

	if !services.CanAccessOrganization(profile, requestedOrgID) {
		return apiError(c, fiber.StatusForbidden, "organization mismatch")
	}
	if !services.CanAccessAdminRoute(profile, requestedOrgID) {
		return apiError(c, fiber.StatusForbidden, "admin access required")
	}

	c.Locals(contextOrgKey, requestedOrgID)
	return c.Next()
}
