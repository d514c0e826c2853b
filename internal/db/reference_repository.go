package db

import (
	"github.com/leavedesk/leavedesk/internal/models"
	"gorm.io/gorm"
)

type ReferenceRepository struct {
	database *gorm.DB
}

func NewReferenceRepository(database *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{database: database}
}

func (repo *ReferenceRepository) ListLeaveTypes() ([]models.LeaveType, error) {
	leaveTypes := make([]models.LeaveType, 0)
	if err := repo.database.Order("name ASC").Find(&leaveTypes).Error; err != nil {
		return nil, err
	}
	return leaveTypes, nil
}

func (repo *ReferenceRepository) FindLeaveType(leaveTypeID uint) (models.LeaveType, error) {
	var leaveType models.LeaveType
	if err := repo.database.First(&leaveType, leaveTypeID).Error; err != nil {
		return models.LeaveType{}, err
	}
	return leaveType, nil
}

func (repo *ReferenceRepository) ListPayPeriods(taxYear int) ([]models.PayPeriod, error) {
	query := repo.database.Order("period_number ASC")
	if taxYear > 0 {
		query = query.Where("tax_year = ?", taxYear)
	}

	payPeriods := make([]models.PayPeriod, 0)
	if err := query.Find(&payPeriods).Error; err != nil {
		return nil, err
	}
	return payPeriods, nil
}

func (repo *ReferenceRepository) FindPayPeriod(payPeriodID uint) (models.PayPeriod, error) {
	var payPeriod models.PayPeriod
	if err := repo.database.First(&payPeriod, payPeriodID).Error; err != nil {
		return models.PayPeriod{}, err
	}
	return payPeriod, nil
}
