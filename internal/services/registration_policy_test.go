package services

import (
	"errors"
	"testing"
)

func validRegistrationInput() RegistrationInput {
	return RegistrationInput{
		OrganizationName: "Test Clinic",
		AdminName:        "Alex Admin",
		AdminEmail:       "a@b.com",
		Password:         "secret1",
	}
}

func TestNormalizeRegistrationInput(t *testing.T) {
	input, err := NormalizeRegistrationInput(RegistrationInput{
		OrganizationName: "  Test Clinic  ",
		AdminName:        " Alex Admin ",
		AdminEmail:       " A@B.COM ",
		Password:         "secret1",
	})
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if input.OrganizationName != "Test Clinic" {
		t.Fatalf("expected trimmed organization name, got %q", input.OrganizationName)
	}
	if input.AdminEmail != "a@b.com" {
		t.Fatalf("expected normalized email, got %q", input.AdminEmail)
	}
}

func TestNormalizeRegistrationInputRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegistrationInput)
		wantErr error
	}{
		{name: "missing organization name", mutate: func(input *RegistrationInput) { input.OrganizationName = " " }, wantErr: ErrRegistrationInputInvalid},
		{name: "missing admin name", mutate: func(input *RegistrationInput) { input.AdminName = "" }, wantErr: ErrRegistrationInputInvalid},
		{name: "invalid email", mutate: func(input *RegistrationInput) { input.AdminEmail = "not-email" }, wantErr: ErrRegistrationInputInvalid},
		{name: "missing password", mutate: func(input *RegistrationInput) { input.Password = "" }, wantErr: ErrRegistrationInputInvalid},
		{name: "short password", mutate: func(input *RegistrationInput) { input.Password = "abc12" }, wantErr: ErrPasswordTooShort},
		{name: "punctuation-only organization name", mutate: func(input *RegistrationInput) { input.OrganizationName = "!!! ???" }, wantErr: ErrOrganizationNameInvalid},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			input := validRegistrationInput()
			testCase.mutate(&input)
			if _, err := NormalizeRegistrationInput(input); !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail(" USER@EXAMPLE.COM "); got != "user@example.com" {
		t.Fatalf("expected normalized email, got %q", got)
	}
	if got := NormalizeEmail("not-email"); got != "" {
		t.Fatalf("expected empty for invalid email, got %q", got)
	}
}
