package services

import (
	"errors"
	"testing"

	"github.com/leavedesk/leavedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthProfileStore struct {
	profiles       map[string]models.Profile
	updatedHashes  map[string]string
	lookupFailures int
}

func newFakeAuthProfileStore(profiles ...models.Profile) *fakeAuthProfileStore {
	store := &fakeAuthProfileStore{profiles: map[string]models.Profile{}, updatedHashes: map[string]string{}}
	for _, profile := range profiles {
		store.profiles[profile.Email] = profile
	}
	return store
}

func (store *fakeAuthProfileStore) FindByNormalizedEmail(email string) (models.Profile, error) {
	profile, ok := store.profiles[email]
	if !ok {
		store.lookupFailures++
		return models.Profile{}, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (store *fakeAuthProfileStore) FindByID(profileID string) (models.Profile, error) {
	for _, profile := range store.profiles {
		if profile.ID == profileID {
			return profile, nil
		}
	}
	return models.Profile{}, gorm.ErrRecordNotFound
}

func (store *fakeAuthProfileStore) UpdatePassword(profileID string, passwordHash string) error {
	store.updatedHashes[profileID] = passwordHash
	return nil
}

func hashedProfile(t *testing.T, password string) models.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return models.Profile{ID: "p1", Email: "alice@example.com", PasswordHash: string(hash)}
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	store := newFakeAuthProfileStore(hashedProfile(t, "s3cret-pass"))
	service := NewAuthService(store)

	profile, err := service.Authenticate("  Alice@Example.COM ", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID != "p1" {
		t.Fatalf("wrong profile returned: %+v", profile)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	store := newFakeAuthProfileStore(hashedProfile(t, "s3cret-pass"))
	service := NewAuthService(store)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "s3cret-pass"},
		{"empty email", "", "s3cret-pass"},
		{"empty password", "alice@example.com", ""},
		{"unparseable email", "not-an-email", "s3cret-pass"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := service.Authenticate(test.email, test.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	profile := hashedProfile(t, "s3cret-pass")
	store := newFakeAuthProfileStore(profile)
	service := NewAuthService(store)

	if err := service.ChangePassword(&profile, "wrong", "new-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}
	if err := service.ChangePassword(&profile, "s3cret-pass", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	if err := service.ChangePassword(&profile, "s3cret-pass", "new-password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	newHash, ok := store.updatedHashes["p1"]
	if !ok {
		t.Fatal("expected a stored password update")
	}
	if bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")) != nil {
		t.Fatal("stored hash does not match the new password")
	}
}
