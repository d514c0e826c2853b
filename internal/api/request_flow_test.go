package api

import (
	"net/http"
	"testing"
)

func TestSubmitAndApproveFlow(t *testing.T) {
	app, repos := newTestApp(t)
	adminCookie, registered := registerTestOrg(t, app, "Test Clinic", "alice@example.com")
	orgID := organizationIDFromRegistration(t, registered)

	seedStaffProfile(t, repos, orgID, "sam@example.com", "staff-pass")
	staffCookie := loginForCookie(t, app, "sam@example.com", "staff-pass")

	response, decoded := doJSON(t, app, http.MethodPost, "/api/requests", staffCookie, map[string]any{
		"leaveTypeId": 1,
		"startDate":   "2026-03-02",
		"endDate":     "2026-03-06",
		"reason":      "family trip",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected submit status 201, got %d: %v", response.StatusCode, decoded)
	}
	if decoded["success"] != true {
		t.Fatalf("expected success true, got %v", decoded)
	}
	if decoded["emailSent"] != false {
		t.Fatalf("expected emailSent false without a mail transport, got %v", decoded)
	}

	submitted := decoded["request"].(map[string]any)
	requestID, _ := submitted["id"].(string)
	if requestID == "" {
		t.Fatalf("missing request id in response: %v", decoded)
	}
	if submitted["status"] != "pending" {
		t.Fatalf("expected pending status, got %v", submitted["status"])
	}

	response, listed := doJSON(t, app, http.MethodGet, "/api/admin/requests?status=pending", adminCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected admin list status 200, got %d", response.StatusCode)
	}
	if pending := listed["requests"].([]any); len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(pending))
	}

	response, approved := doJSON(t, app, http.MethodPost, "/api/admin/requests/"+requestID+"/approve", adminCookie, map[string]any{
		"adminNotes": "enjoy",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected approve status 200, got %d: %v", response.StatusCode, approved)
	}
	approvedRequest := approved["request"].(map[string]any)
	if approvedRequest["status"] != "approved" {
		t.Fatalf("expected approved status, got %v", approvedRequest["status"])
	}
	if approvedRequest["adminNotes"] != "enjoy" {
		t.Fatalf("expected admin notes recorded, got %v", approvedRequest["adminNotes"])
	}

	response, _ = doJSON(t, app, http.MethodPost, "/api/admin/requests/"+requestID+"/deny", adminCookie, nil)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected second decision status 409, got %d", response.StatusCode)
	}

	response, own := doJSON(t, app, http.MethodGet, "/api/requests", staffCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected own list status 200, got %d", response.StatusCode)
	}
	ownRequests := own["requests"].([]any)
	if len(ownRequests) != 1 {
		t.Fatalf("expected 1 own request, got %d", len(ownRequests))
	}
	if ownRequests[0].(map[string]any)["status"] != "approved" {
		t.Fatalf("expected the staff view to reflect the decision, got %v", ownRequests[0])
	}
}

func TestSubmitValidation(t *testing.T) {
	app, repos := newTestApp(t)
	_, registered := registerTestOrg(t, app, "Test Clinic", "alice@example.com")
	orgID := organizationIDFromRegistration(t, registered)
	seedStaffProfile(t, repos, orgID, "sam@example.com", "staff-pass")
	staffCookie := loginForCookie(t, app, "sam@example.com", "staff-pass")

	tests := []struct {
		name           string
		payload        map[string]any
		expectedStatus int
	}{
		{"missing leave type", map[string]any{
			"startDate": "2026-03-02", "endDate": "2026-03-02",
		}, http.StatusBadRequest},
		{"end before start", map[string]any{
			"leaveTypeId": 1, "startDate": "2026-03-06", "endDate": "2026-03-02",
		}, http.StatusBadRequest},
		{"unknown leave type", map[string]any{
			"leaveTypeId": 999, "startDate": "2026-03-02", "endDate": "2026-03-02",
		}, http.StatusNotFound},
		{"single-day type with range", map[string]any{
			"leaveTypeId": 3, "startDate": "2026-03-02", "endDate": "2026-03-03",
		}, http.StatusBadRequest},
		{"time clock without reason", map[string]any{
			"kind": "time_clock", "startDate": "2026-03-02", "endDate": "2026-03-02",
		}, http.StatusBadRequest},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response, _ := doJSON(t, app, http.MethodPost, "/api/requests", staffCookie, test.payload)
			if response.StatusCode != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, response.StatusCode)
			}
		})
	}
}

func TestSubmitTimeClockRequest(t *testing.T) {
	app, repos := newTestApp(t)
	_, registered := registerTestOrg(t, app, "Test Clinic", "alice@example.com")
	orgID := organizationIDFromRegistration(t, registered)
	seedStaffProfile(t, repos, orgID, "sam@example.com", "staff-pass")
	staffCookie := loginForCookie(t, app, "sam@example.com", "staff-pass")

	response, decoded := doJSON(t, app, http.MethodPost, "/api/requests", staffCookie, map[string]any{
		"kind":        "time_clock",
		"payPeriodId": 3,
		"startDate":   "2026-03-02",
		"endDate":     "2026-03-02",
		"reason":      "forgot to clock out",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %v", response.StatusCode, decoded)
	}
	request := decoded["request"].(map[string]any)
	if request["kind"] != "time_clock" {
		t.Fatalf("expected time_clock kind, got %v", request["kind"])
	}
}
