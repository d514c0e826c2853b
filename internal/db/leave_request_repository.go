package db

import (
	"time"

	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

type LeaveRequestRepository struct {
	database *gorm.DB
}

func NewLeaveRequestRepository(database *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{database: database}
}

func (repo *LeaveRequestRepository) Create(request *models.LeaveRequest) error {
	return repo.database.Create(request).Error
}

func (repo *LeaveRequestRepository) FindByID(requestID string, orgID string) (models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := repo.database.
		Where("id = ? AND organization_id = ?", requestID, orgID).
		First(&request).Error; err != nil {
		return models.LeaveRequest{}, err
	}
	return request, nil
}

func (repo *LeaveRequestRepository) ListByUser(userID string, orgID string) ([]models.LeaveRequest, error) {
	requests := make([]models.LeaveRequest, 0)
	if err := repo.database.
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *LeaveRequestRepository) ListByOrganization(orgID string, status string) ([]models.LeaveRequest, error) {
	query := repo.database.Where("organization_id = ?", orgID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	requests := make([]models.LeaveRequest, 0)
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Decide performs the pending -> approved/denied transition as one
// conditional update. The status precondition makes the transition
// single-shot: a second decision matches zero rows.
func (repo *LeaveRequestRepository) Decide(
	requestID string,
	orgID string,
	newStatus string,
	reviewerID string,
	reviewedAt time.Time,
	adminNotes string,
) (bool, error) {
	updates := map[string]any{
		"status":      newStatus,
		"reviewed_by": reviewerID,
		"reviewed_at": reviewedAt,
	}
	if adminNotes != "" {
		updates["admin_notes"] = adminNotes
	}

	result := repo.database.Model(&models.LeaveRequest{}).
		Where("id = ? AND organization_id = ? AND status = ?", requestID, orgID, models.StatusPending).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
