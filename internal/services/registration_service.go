package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leavedesk/leavedesk/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email already registered")

type RegistrationOrganizationStore interface {
	SlugExists(slug string) (bool, error)
	Create(organization *models.Organization) error
	Delete(orgID string) error
	UpdateSpreadsheetID(orgID string, spreadsheetID string) error
}

type RegistrationProfileStore interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(profile *models.Profile) error
}

type RegistrationRecipientStore interface {
	Create(recipient *models.NotificationRecipient) error
}

// SheetProvisioner creates a fresh spreadsheet for an organization and
// returns its id. A nil provisioner means Sheets is not configured.
type SheetProvisioner interface {
	CreateSpreadsheet(ctx context.Context, title string, shareWith string) (string, error)
}

type RegistrationService struct {
	organizations RegistrationOrganizationStore
	profiles      RegistrationProfileStore
	recipients    RegistrationRecipientStore
	sheets        SheetProvisioner
	logger        zerolog.Logger
}

func NewRegistrationService(
	organizations RegistrationOrganizationStore,
	profiles RegistrationProfileStore,
	recipients RegistrationRecipientStore,
	sheets SheetProvisioner,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		organizations: organizations,
		profiles:      profiles,
		recipients:    recipients,
		sheets:        sheets,
		logger:        logger,
	}
}

// RegisterOrganization provisions a tenant: unique slug, organization
// row, admin profile, admin as active notification recipient, and an
// optional spreadsheet. If the admin profile cannot be created the
// organization row is rolled back so no orphaned tenant remains.
func (service *RegistrationService) RegisterOrganization(ctx context.Context, input RegistrationInput) (models.Organization, models.Profile, error) {
	input, err := NormalizeRegistrationInput(input)
	if err != nil {
		return models.Organization{}, models.Profile{}, err
	}

	taken, err := service.profiles.ExistsByNormalizedEmail(input.AdminEmail)
	if err != nil {
		return models.Organization{}, models.Profile{}, err
	}
	if taken {
		return models.Organization{}, models.Profile{}, ErrEmailTaken
	}

	slug, err := UniqueSlug(service.organizations, input.OrganizationName)
	if err != nil {
		return models.Organization{}, models.Profile{}, err
	}

	now := time.Now()
	organization := models.Organization{
		ID:         uuid.NewString(),
		Name:       input.OrganizationName,
		Slug:       slug,
		AdminEmail: input.AdminEmail,
		Settings:   "{}",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := service.organizations.Create(&organization); err != nil {
		return models.Organization{}, models.Profile{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		service.rollbackOrganization(organization.ID)
		return models.Organization{}, models.Profile{}, err
	}

	admin := models.Profile{
		ID:             uuid.NewString(),
		Email:          input.AdminEmail,
		PasswordHash:   string(passwordHash),
		FullName:       input.AdminName,
		Role:           models.RoleAdmin,
		OrganizationID: &organization.ID,
		CreatedAt:      now,
	}
	if err := service.profiles.Create(&admin); err != nil {
		service.rollbackOrganization(organization.ID)
		return models.Organization{}, models.Profile{}, err
	}

	if err := service.recipients.Create(&models.NotificationRecipient{
		OrganizationID: organization.ID,
		Email:          admin.Email,
		IsActive:       true,
		CreatedAt:      now,
	}); err != nil {
		service.logger.Error().Err(err).Str("org_id", organization.ID).
			Msg("register admin as notification recipient failed")
	}

	service.provisionSpreadsheet(ctx, &organization)

	return organization, admin, nil
}

func (service *RegistrationService) rollbackOrganization(orgID string) {
	if err := service.organizations.Delete(orgID); err != nil {
		service.logger.Error().Err(err).Str("org_id", orgID).
			Msg("rollback organization row failed")
	}
}

// Spreadsheet creation is best effort: a missing client or an API error
// leaves the organization without a linked sheet, to be linked later.
func (service *RegistrationService) provisionSpreadsheet(ctx context.Context, organization *models.Organization) {
	if service.sheets == nil {
		return
	}

	spreadsheetID, err := service.sheets.CreateSpreadsheet(ctx, organization.Name+" - Time Off Log", organization.AdminEmail)
	if err != nil {
		service.logger.Warn().Err(err).Str("org_id", organization.ID).
			Msg("spreadsheet provisioning failed")
		return
	}

	if err := service.organizations.UpdateSpreadsheetID(organization.ID, spreadsheetID); err != nil {
		service.logger.Error().Err(err).Str("org_id", organization.ID).
			Msg("link provisioned spreadsheet failed")
		return
	}
	organization.SpreadsheetID = spreadsheetID
}
