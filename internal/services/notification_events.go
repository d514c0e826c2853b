package services

import (
	"errors"
	"strings"

	"github.com/leavedesk/leavedesk/internal/models"
)

type EventType string

const (
	EventNewRequest       EventType = "new_request"
	EventTimeClockRequest EventType = "time_clock_request"
	EventOvertimeRequest  EventType = "overtime_request"
	EventVacationRequest  EventType = "vacation_request"
	EventApproved         EventType = "approved"
	EventDenied           EventType = "denied"
)

var ErrUnknownEventType = errors.New("unknown notification event type")

func ParseEventType(raw string) (EventType, error) {
	switch EventType(strings.TrimSpace(raw)) {
	case EventNewRequest:
		return EventNewRequest, nil
	case EventTimeClockRequest:
		return EventTimeClockRequest, nil
	case EventOvertimeRequest:
		return EventOvertimeRequest, nil
	case EventVacationRequest:
		return EventVacationRequest, nil
	case EventApproved:
		return EventApproved, nil
	case EventDenied:
		return EventDenied, nil
	default:
		return "", ErrUnknownEventType
	}
}

// IsSubmission reports whether the event mirrors a fresh staff
// submission, which is what gets appended to the spreadsheet.
func (eventType EventType) IsSubmission() bool {
	switch eventType {
	case EventNewRequest, EventTimeClockRequest, EventOvertimeRequest, EventVacationRequest:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the event carries an admin decision.
func (eventType EventType) IsDecision() bool {
	return eventType == EventApproved || eventType == EventDenied
}

// SubmissionEventType maps a request kind to its fan-out event.
func SubmissionEventType(kind string) EventType {
	switch kind {
	case models.KindTimeClock:
		return EventTimeClockRequest
	case models.KindOvertime:
		return EventOvertimeRequest
	default:
		return EventVacationRequest
	}
}

type NotificationEvent struct {
	Type           EventType
	OrganizationID string
	RequestID      string
	RequesterName  string
	RequesterEmail string
	LeaveTypeName  string
	StartDate      string
	EndDate        string
	Reason         string
	CoverageName   string
	AdminNotes     string
}

// SheetTab names the per-type tab a submission row lands in.
func (event NotificationEvent) SheetTab() string {
	switch event.Type {
	case EventTimeClockRequest:
		return "Time Clock"
	case EventOvertimeRequest:
		return "Overtime"
	default:
		return "Leave Requests"
	}
}

func (event NotificationEvent) SheetRow(submittedAt string) []any {
	return []any{
		submittedAt,
		event.RequesterName,
		event.RequesterEmail,
		event.LeaveTypeName,
		event.StartDate,
		event.EndDate,
		event.Reason,
		event.CoverageName,
	}
}
