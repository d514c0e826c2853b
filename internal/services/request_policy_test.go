package services

import (
	"errors"
	"testing"

	"github.com/leavedesk/leavedesk/internal/models"
)

func TestNormalizeSubmissionInputLeave(t *testing.T) {
	normalized, err := NormalizeSubmissionInput(SubmissionInput{
		LeaveTypeID: 1,
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-06",
		Reason:      "  family trip ",
	})
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if normalized.Kind != models.KindLeave {
		t.Fatalf("expected default kind leave, got %q", normalized.Kind)
	}
	if normalized.Reason != "family trip" {
		t.Fatalf("expected trimmed reason, got %q", normalized.Reason)
	}
	if !normalized.EndDate.After(normalized.StartDate) {
		t.Fatal("expected parsed range in order")
	}
}

func TestNormalizeSubmissionInputRejections(t *testing.T) {
	tests := []struct {
		name    string
		input   SubmissionInput
		wantErr error
	}{
		{
			name:    "unknown kind",
			input:   SubmissionInput{Kind: "sabbatical", StartDate: "2026-03-02", EndDate: "2026-03-02"},
			wantErr: ErrSubmissionInputInvalid,
		},
		{
			name:    "leave without leave type",
			input:   SubmissionInput{Kind: models.KindLeave, StartDate: "2026-03-02", EndDate: "2026-03-02"},
			wantErr: ErrSubmissionInputInvalid,
		},
		{
			name:    "overtime without reason",
			input:   SubmissionInput{Kind: models.KindOvertime, StartDate: "2026-03-02", EndDate: "2026-03-02"},
			wantErr: ErrSubmissionInputInvalid,
		},
		{
			name:    "unparseable date",
			input:   SubmissionInput{LeaveTypeID: 1, StartDate: "03/02/2026", EndDate: "2026-03-02"},
			wantErr: ErrSubmissionInputInvalid,
		},
		{
			name:    "inverted range",
			input:   SubmissionInput{LeaveTypeID: 1, StartDate: "2026-03-06", EndDate: "2026-03-02"},
			wantErr: ErrSubmissionRangeInvalid,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := NormalizeSubmissionInput(testCase.input); !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestNormalizeSubmissionInputTimeClock(t *testing.T) {
	normalized, err := NormalizeSubmissionInput(SubmissionInput{
		Kind:      models.KindTimeClock,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Reason:    "missed clock-out",
	})
	if err != nil {
		t.Fatalf("expected valid time clock input, got %v", err)
	}
	if normalized.LeaveTypeID != 0 {
		t.Fatalf("time clock input should carry no leave type, got %d", normalized.LeaveTypeID)
	}
}
