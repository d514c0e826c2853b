package db

import (
	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	database *gorm.DB
}

func NewAnnouncementRepository(database *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{database: database}
}

func (repo *AnnouncementRepository) Create(announcement *models.Announcement) error {
	return repo.database.Create(announcement).Error
}

func (repo *AnnouncementRepository) ListByOrganization(orgID string) ([]models.Announcement, error) {
	announcements := make([]models.Announcement, 0)
	if err := repo.database.
		Where("organization_id = ?", orgID).
		Order("pinned DESC, created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (repo *AnnouncementRepository) Update(announcementID uint, orgID string, updates map[string]any) (bool, error) {
	result := repo.database.Model(&models.Announcement{}).
		Where("id = ? AND organization_id = ?", announcementID, orgID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *AnnouncementRepository) Delete(announcementID uint, orgID string) (bool, error) {
	result := repo.database.
		Where("id = ? AND organization_id = ?", announcementID, orgID).
		Delete(&models.Announcement{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
