package services

import "github.com/leavedesk/leavedesk/internal/models"

// CanAccessOrganization reports whether the profile belongs to the
// requested organization. The comparison is an exact, case-sensitive
// string match; an unassigned profile never matches.
func CanAccessOrganization(profile *models.Profile, requestedOrgID string) bool {
	if profile == nil || profile.OrganizationID == nil {
		return false
	}
	return *profile.OrganizationID == requestedOrgID
}

// CanAccessAdminRoute additionally requires the admin role.
func CanAccessAdminRoute(profile *models.Profile, requestedOrgID string) bool {
	if !CanAccessOrganization(profile, requestedOrgID) {
		return false
	}
	return profile.Role == models.RoleAdmin
}
