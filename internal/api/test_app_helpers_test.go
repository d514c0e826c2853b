package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/leavedesk/leavedesk/internal/db"
	"github.com/leavedesk/leavedesk/internal/models"
	"github.com/leavedesk/leavedesk/internal/services"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "leavedesk-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	logger := zerolog.Nop()

	notifier := services.NewNotificationService(repos.Organizations, repos.Recipients, nil, nil, "", nil, nil, logger)
	handler := NewHandler(HandlerDeps{
		Repos:        repos,
		Auth:         services.NewAuthService(repos.Profiles),
		Registration: services.NewRegistrationService(repos.Organizations, repos.Profiles, repos.Recipients, nil, logger),
		Requests:     services.NewRequestService(repos.Requests, repos.Reference, notifier),
		Approvals:    services.NewApprovalService(repos.Requests, repos.Profiles, repos.Reference, notifier),
		Notifier:     notifier,
		SecretKey:    "test-secret-key",
		Logger:       logger,
	})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, repos
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode %s %s payload: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("%s %s decode response: %v", method, path, err)
	}
	return response, decoded
}

func registerTestOrg(t *testing.T, app *fiber.App, organizationName string, adminEmail string) (string, map[string]any) {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/api/auth/register-org", bytes.NewReader(mustEncode(t, map[string]any{
		"organizationName": organizationName,
		"adminName":        "Alice Admin",
		"adminEmail":       adminEmail,
		"password":         "s3cret-pass",
	})))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register org failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return extractAuthCookie(t, response), decoded
}

func loginForCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(mustEncode(t, map[string]any{
		"email":    email,
		"password": password,
	})))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	return extractAuthCookie(t, response)
}

func extractAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("auth cookie is missing in response")
	return ""
}

func seedStaffProfile(t *testing.T, repos *db.Repositories, orgID string, email string, password string) models.Profile {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	profile := models.Profile{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordHash:   string(passwordHash),
		FullName:       "Sam Staff",
		Role:           models.RoleStaff,
		OrganizationID: &orgID,
	}
	if err := repos.Profiles.Create(&profile); err != nil {
		t.Fatalf("create staff profile: %v", err)
	}
	return profile
}

func mustEncode(t *testing.T, payload any) []byte {
	t.Helper()

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	return encoded
}

// jsonNumberString renders a decoded JSON numeric id back into the
// path segment form the routes expect.
func jsonNumberString(t *testing.T, value any) string {
	t.Helper()

	number, ok := value.(float64)
	if !ok {
		t.Fatalf("expected a numeric id, got %T (%v)", value, value)
	}
	return strconv.FormatUint(uint64(number), 10)
}

func organizationIDFromRegistration(t *testing.T, decoded map[string]any) string {
	t.Helper()

	organization, ok := decoded["organization"].(map[string]any)
	if !ok {
		t.Fatalf("registration response has no organization: %v", decoded)
	}
	orgID, ok := organization["id"].(string)
	if !ok || orgID == "" {
		t.Fatalf("registration response has no organization id: %v", decoded)
	}
	return orgID
}
