package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/models"
)

const (
	authCookieName    = "leavedesk_auth"
	contextProfileKey = "current_profile"
	contextOrgKey     = "current_org"
)

func currentProfile(c *fiber.Ctx) (*models.Profile, bool) {
	profile, ok := c.Locals(contextProfileKey).(*models.Profile)
	return profile, ok
}

// currentOrgID is the organization an admin route operates on, set by
// AdminOnly after the tenant checks pass.
func currentOrgID(c *fiber.Ctx) string {
	orgID, _ := c.Locals(contextOrgKey).(string)
	return orgID
}
