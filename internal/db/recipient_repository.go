package db

import (
	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

type RecipientRepository struct {
	database *gorm.DB
}

func NewRecipientRepository(database *gorm.DB) *RecipientRepository {
	return &RecipientRepository{database: database}
}

func (repo *RecipientRepository) Create(recipient *models.NotificationRecipient) error {
	return repo.database.Create(recipient).Error
}

func (repo *RecipientRepository) ListByOrganization(orgID string) ([]models.NotificationRecipient, error) {
	recipients := make([]models.NotificationRecipient, 0)
	if err := repo.database.
		Where("organization_id = ?", orgID).
		Order("email ASC").
		Find(&recipients).Error; err != nil {
		return nil, err
	}
	return recipients, nil
}

// ListActiveEmails distinguishes a failed lookup (nil, err) from an empty
// successful one ([], nil); callers rely on that to decide whether the
// environment fallback list applies.
func (repo *RecipientRepository) ListActiveEmails(orgID string) ([]string, error) {
	emails := make([]string, 0)
	if err := repo.database.Model(&models.NotificationRecipient{}).
		Where("organization_id = ? AND is_active = ?", orgID, true).
		Order("email ASC").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

func (repo *RecipientRepository) SetActive(recipientID uint, orgID string, isActive bool) (bool, error) {
	result := repo.database.Model(&models.NotificationRecipient{}).
		Where("id = ? AND organization_id = ?", recipientID, orgID).
		Update("is_active", isActive)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
