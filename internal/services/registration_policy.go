package services

import (
	"errors"
	"net/mail"
	"strings"
)

const minPasswordLength = 6

var (
	ErrRegistrationInputInvalid = errors.New("registration input invalid")
	ErrPasswordTooShort         = errors.New("password too short")
	ErrOrganizationNameInvalid  = errors.New("organization name invalid")
)

type RegistrationInput struct {
	OrganizationName string
	AdminName        string
	AdminEmail       string
	Password         string
}

func NormalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

// NormalizeRegistrationInput validates presence of every field, the
// minimum password length, and that the organization name yields a
// usable slug.
func NormalizeRegistrationInput(input RegistrationInput) (RegistrationInput, error) {
	input.OrganizationName = strings.TrimSpace(input.OrganizationName)
	input.AdminName = strings.TrimSpace(input.AdminName)
	input.AdminEmail = NormalizeEmail(input.AdminEmail)

	if input.OrganizationName == "" || input.AdminName == "" || input.AdminEmail == "" || input.Password == "" {
		return RegistrationInput{}, ErrRegistrationInputInvalid
	}
	if len(input.Password) < minPasswordLength {
		return RegistrationInput{}, ErrPasswordTooShort
	}
	if !IsUsableSlug(GenerateSlug(input.OrganizationName)) {
		return RegistrationInput{}, ErrOrganizationNameInvalid
	}
	return input, nil
}
