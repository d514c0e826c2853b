package db

import (
	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	database *gorm.DB
}

func NewOrganizationRepository(database *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{database: database}
}

func (repo *OrganizationRepository) FindByID(orgID string) (models.Organization, error) {
	var organization models.Organization
	if err := repo.database.First(&organization, "id = ?", orgID).Error; err != nil {
		return models.Organization{}, err
	}
	return organization, nil
}

func (repo *OrganizationRepository) FindBySlug(slug string) (models.Organization, error) {
	var organization models.Organization
	if err := repo.database.First(&organization, "slug = ?", slug).Error; err != nil {
		return models.Organization{}, err
	}
	return organization, nil
}

func (repo *OrganizationRepository) SlugExists(slug string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Organization{}).
		Where("slug = ?", slug).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *OrganizationRepository) Create(organization *models.Organization) error {
	return repo.database.Create(organization).Error
}

func (repo *OrganizationRepository) Delete(orgID string) error {
	return repo.database.Delete(&models.Organization{}, "id = ?", orgID).Error
}

func (repo *OrganizationRepository) UpdateSpreadsheetID(orgID string, spreadsheetID string) error {
	return repo.database.Model(&models.Organization{}).
		Where("id = ?", orgID).
		Update("spreadsheet_id", spreadsheetID).Error
}
