package services

import (
	"errors"

	"github.com/leavedesk/leavedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password too short")
)

type AuthProfileStore interface {
	FindByNormalizedEmail(email string) (models.Profile, error)
	FindByID(profileID string) (models.Profile, error)
	UpdatePassword(profileID string, passwordHash string) error
}

type AuthService struct {
	profiles AuthProfileStore
}

func NewAuthService(profiles AuthProfileStore) *AuthService {
	return &AuthService{profiles: profiles}
}

func (service *AuthService) Authenticate(emailRaw string, password string) (models.Profile, error) {
	email := NormalizeEmail(emailRaw)
	if email == "" || password == "" {
		return models.Profile{}, ErrInvalidCredentials
	}

	profile, err := service.profiles.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Profile{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return models.Profile{}, ErrInvalidCredentials
	}
	return profile, nil
}

func (service *AuthService) FindByID(profileID string) (models.Profile, error) {
	return service.profiles.FindByID(profileID)
}

func (service *AuthService) ChangePassword(profile *models.Profile, currentPassword string, newPassword string) error {
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.profiles.UpdatePassword(profile.ID, string(passwordHash))
}
