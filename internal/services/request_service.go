package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

var (
	ErrLeaveTypeNotFound = errors.New("leave type not found")
	ErrPayPeriodNotFound = errors.New("pay period not found")
	ErrNoOrganization    = errors.New("profile has no organization")
)

type RequestStore interface {
	Create(request *models.LeaveRequest) error
	ListByUser(userID string, orgID string) ([]models.LeaveRequest, error)
}

type ReferenceStore interface {
	FindLeaveType(leaveTypeID uint) (models.LeaveType, error)
	FindPayPeriod(payPeriodID uint) (models.PayPeriod, error)
}

type RequestService struct {
	requests  RequestStore
	reference ReferenceStore
	notifier  *NotificationService
}

func NewRequestService(requests RequestStore, reference ReferenceStore, notifier *NotificationService) *RequestService {
	return &RequestService{requests: requests, reference: reference, notifier: notifier}
}

// Submit validates and persists a staff submission, then mirrors it
// through the notification fan-out. The fan-out result rides along with
// the created row; fan-out failures never undo the persisted request.
func (service *RequestService) Submit(ctx context.Context, requester *models.Profile, input SubmissionInput) (models.LeaveRequest, NotificationResult, error) {
	if requester == nil || requester.OrganizationID == nil {
		return models.LeaveRequest{}, NotificationResult{}, ErrNoOrganization
	}

	normalized, err := NormalizeSubmissionInput(input)
	if err != nil {
		return models.LeaveRequest{}, NotificationResult{}, err
	}

	var leaveTypeName string
	request := models.LeaveRequest{
		ID:             uuid.NewString(),
		OrganizationID: *requester.OrganizationID,
		UserID:         requester.ID,
		Kind:           normalized.Kind,
		StartDate:      normalized.StartDate,
		EndDate:        normalized.EndDate,
		Reason:         normalized.Reason,
		CoverageName:   normalized.CoverageName,
		CoverageEmail:  normalized.CoverageEmail,
		Status:         models.StatusPending,
		CreatedAt:      time.Now(),
	}

	if normalized.Kind == models.KindLeave {
		leaveType, err := service.reference.FindLeaveType(normalized.LeaveTypeID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LeaveRequest{}, NotificationResult{}, ErrLeaveTypeNotFound
		}
		if err != nil {
			return models.LeaveRequest{}, NotificationResult{}, err
		}
		if leaveType.SingleDayOnly && !normalized.StartDate.Equal(normalized.EndDate) {
			return models.LeaveRequest{}, NotificationResult{}, ErrSingleDayOnly
		}
		leaveTypeName = leaveType.Name
		request.LeaveTypeID = &leaveType.ID
	}

	if normalized.PayPeriodID > 0 {
		payPeriod, err := service.reference.FindPayPeriod(normalized.PayPeriodID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LeaveRequest{}, NotificationResult{}, ErrPayPeriodNotFound
		}
		if err != nil {
			return models.LeaveRequest{}, NotificationResult{}, err
		}
		request.PayPeriodID = &payPeriod.ID
	}

	if err := service.requests.Create(&request); err != nil {
		return models.LeaveRequest{}, NotificationResult{}, err
	}

	result := service.notifier.Send(ctx, NotificationEvent{
		Type:           SubmissionEventType(normalized.Kind),
		OrganizationID: request.OrganizationID,
		RequestID:      request.ID,
		RequesterName:  requester.FullName,
		RequesterEmail: requester.Email,
		LeaveTypeName:  leaveTypeName,
		StartDate:      request.StartDate.Format(submissionDateLayout),
		EndDate:        request.EndDate.Format(submissionDateLayout),
		Reason:         request.Reason,
		CoverageName:   request.CoverageName,
	})

	return request, result, nil
}

func (service *RequestService) ListOwn(requester *models.Profile) ([]models.LeaveRequest, error) {
	if requester == nil || requester.OrganizationID == nil {
		return nil, ErrNoOrganization
	}
	return service.requests.ListByUser(requester.ID, *requester.OrganizationID)
}
