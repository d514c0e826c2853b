package models

import "time"

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type Profile struct {
	ID             string  `gorm:"primaryKey;size:36"`
	Email          string  `gorm:"uniqueIndex;not null"`
	PasswordHash   string  `gorm:"not null"`
	FullName       string  `gorm:"not null"`
	Role           string  `gorm:"not null;default:staff"`
	OrganizationID *string `gorm:"size:36;index"`
	AvatarURL      string
	CreatedAt      time.Time
}

// OrgID returns the assigned organization id, or "" while unassigned.
func (profile *Profile) OrgID() string {
	if profile.OrganizationID == nil {
		return ""
	}
	return *profile.OrganizationID
}
