package services

import (
	"context"
	"errors"
	"time"

	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrRequestAlreadyDecided = errors.New("request already decided")
)

type ApprovalRequestStore interface {
	FindByID(requestID string, orgID string) (models.LeaveRequest, error)
	ListByOrganization(orgID string, status string) ([]models.LeaveRequest, error)
	Decide(requestID string, orgID string, newStatus string, reviewerID string, reviewedAt time.Time, adminNotes string) (bool, error)
}

type ApprovalProfileStore interface {
	FindByID(profileID string) (models.Profile, error)
}

type ApprovalReferenceStore interface {
	FindLeaveType(leaveTypeID uint) (models.LeaveType, error)
}

type ApprovalService struct {
	requests  ApprovalRequestStore
	profiles  ApprovalProfileStore
	reference ApprovalReferenceStore
	notifier  *NotificationService
}

func NewApprovalService(
	requests ApprovalRequestStore,
	profiles ApprovalProfileStore,
	reference ApprovalReferenceStore,
	notifier *NotificationService,
) *ApprovalService {
	return &ApprovalService{requests: requests, profiles: profiles, reference: reference, notifier: notifier}
}

func (service *ApprovalService) ListOrganizationRequests(orgID string, status string) ([]models.LeaveRequest, error) {
	return service.requests.ListByOrganization(orgID, status)
}

// Decide moves a pending request to approved or denied, recording the
// reviewer and decision time in the same store write. The transition is
// single-shot: once decided, a second decision reports
// ErrRequestAlreadyDecided instead of overwriting. The fan-out runs
// after the durable write; its outcome never rolls the decision back.
func (service *ApprovalService) Decide(ctx context.Context, reviewer *models.Profile, requestID string, approve bool, adminNotes string) (models.LeaveRequest, NotificationResult, error) {
	if reviewer == nil || reviewer.OrganizationID == nil {
		return models.LeaveRequest{}, NotificationResult{}, ErrNoOrganization
	}
	orgID := *reviewer.OrganizationID

	request, err := service.requests.FindByID(requestID, orgID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LeaveRequest{}, NotificationResult{}, ErrRequestNotFound
	}
	if err != nil {
		return models.LeaveRequest{}, NotificationResult{}, err
	}

	newStatus := models.StatusApproved
	eventType := EventApproved
	if !approve {
		newStatus = models.StatusDenied
		eventType = EventDenied
	}

	reviewedAt := time.Now()
	decided, err := service.requests.Decide(requestID, orgID, newStatus, reviewer.ID, reviewedAt, adminNotes)
	if err != nil {
		return models.LeaveRequest{}, NotificationResult{}, err
	}
	if !decided {
		return models.LeaveRequest{}, NotificationResult{}, ErrRequestAlreadyDecided
	}

	request.Status = newStatus
	request.ReviewedBy = &reviewer.ID
	request.ReviewedAt = &reviewedAt
	if adminNotes != "" {
		request.AdminNotes = adminNotes
	}

	result := service.notifier.Send(ctx, service.decisionEvent(eventType, request))
	return request, result, nil
}

func (service *ApprovalService) decisionEvent(eventType EventType, request models.LeaveRequest) NotificationEvent {
	event := NotificationEvent{
		Type:           eventType,
		OrganizationID: request.OrganizationID,
		RequestID:      request.ID,
		StartDate:      request.StartDate.Format(submissionDateLayout),
		EndDate:        request.EndDate.Format(submissionDateLayout),
		Reason:         request.Reason,
		AdminNotes:     request.AdminNotes,
	}

	if requester, err := service.profiles.FindByID(request.UserID); err == nil {
		event.RequesterName = requester.FullName
		event.RequesterEmail = requester.Email
	}
	if request.LeaveTypeID != nil {
		if leaveType, err := service.reference.FindLeaveType(*request.LeaveTypeID); err == nil {
			event.LeaveTypeName = leaveType.Name
		}
	}
	return event
}
