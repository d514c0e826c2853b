package db

import (
	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByID(profileID string) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.First(&profile, "id = ?", profileID).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) FindByNormalizedEmail(email string) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Profile{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) ListByOrganization(orgID string) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.
		Where("organization_id = ?", orgID).
		Order("full_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateRole scopes the write to the admin's organization so a profile in
// another tenant can never be mutated, even with a guessed id.
func (repo *ProfileRepository) UpdateRole(profileID string, orgID string, role string) (bool, error) {
	result := repo.database.Model(&models.Profile{}).
		Where("id = ? AND organization_id = ?", profileID, orgID).
		Update("role", role)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ProfileRepository) UpdatePassword(profileID string, passwordHash string) error {
	return repo.database.Model(&models.Profile{}).
		Where("id = ?", profileID).
		Update("password_hash", passwordHash).Error
}
