package db

import "gorm.io/gorm"

type Repositories struct {
	Organizations *OrganizationRepository
	Profiles      *ProfileRepository
	Requests      *LeaveRequestRepository
	Reference     *ReferenceRepository
	Recipients    *RecipientRepository
	Announcements *AnnouncementRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Organizations: NewOrganizationRepository(database),
		Profiles:      NewProfileRepository(database),
		Requests:      NewLeaveRequestRepository(database),
		Reference:     NewReferenceRepository(database),
		Recipients:    NewRecipientRepository(database),
		Announcements: NewAnnouncementRepository(database),
	}
}
