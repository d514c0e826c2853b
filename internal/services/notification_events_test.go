package services

import (
	"errors"
	"testing"

	"github.com/leavedesk/leavedesk/internal/models"
)

func TestParseEventType(t *testing.T) {
	known := []string{
		"new_request", "time_clock_request", "overtime_request",
		"vacation_request", "approved", "denied",
	}
	for _, raw := range known {
		eventType, err := ParseEventType(raw)
		if err != nil {
			t.Fatalf("ParseEventType(%q): %v", raw, err)
		}
		if string(eventType) != raw {
			t.Fatalf("ParseEventType(%q) = %q", raw, eventType)
		}
	}

	if eventType, err := ParseEventType(" approved "); err != nil || eventType != EventApproved {
		t.Fatalf("expected trimmed parse, got %q, %v", eventType, err)
	}
	if _, err := ParseEventType("request_deleted"); !errors.Is(err, ErrUnknownEventType) {
		t.Fatalf("expected ErrUnknownEventType, got %v", err)
	}
}

func TestEventTypeClassification(t *testing.T) {
	submissions := []EventType{EventNewRequest, EventTimeClockRequest, EventOvertimeRequest, EventVacationRequest}
	for _, eventType := range submissions {
		if !eventType.IsSubmission() || eventType.IsDecision() {
			t.Fatalf("%q should classify as a submission", eventType)
		}
	}
	for _, eventType := range []EventType{EventApproved, EventDenied} {
		if eventType.IsSubmission() || !eventType.IsDecision() {
			t.Fatalf("%q should classify as a decision", eventType)
		}
	}
}

func TestSubmissionEventTypeByKind(t *testing.T) {
	tests := []struct {
		kind string
		want EventType
	}{
		{models.KindLeave, EventVacationRequest},
		{models.KindTimeClock, EventTimeClockRequest},
		{models.KindOvertime, EventOvertimeRequest},
	}
	for _, test := range tests {
		if got := SubmissionEventType(test.kind); got != test.want {
			t.Fatalf("SubmissionEventType(%q) = %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestSheetTabPerEventType(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      string
	}{
		{EventVacationRequest, "Leave Requests"},
		{EventNewRequest, "Leave Requests"},
		{EventTimeClockRequest, "Time Clock"},
		{EventOvertimeRequest, "Overtime"},
	}
	for _, test := range tests {
		event := NotificationEvent{Type: test.eventType}
		if got := event.SheetTab(); got != test.want {
			t.Fatalf("SheetTab for %q = %q, want %q", test.eventType, got, test.want)
		}
	}
}
