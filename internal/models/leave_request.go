package models

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

const (
	KindLeave     = "leave"
	KindTimeClock = "time_clock"
	KindOvertime  = "overtime"
)

type LeaveRequest struct {
	ID             string `gorm:"primaryKey;size:36"`
	OrganizationID string `gorm:"size:36;not null;index:idx_requests_org_status"`
	UserID         string `gorm:"size:36;not null;index"`
	Kind           string `gorm:"not null;default:leave"`
	LeaveTypeID    *uint
	PayPeriodID    *uint
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	Reason         string
	CoverageName   string
	CoverageEmail  string
	Status         string `gorm:"not null;default:pending;index:idx_requests_org_status"`
	ReviewedBy     *string
	ReviewedAt     *time.Time
	AdminNotes     string
	CreatedAt      time.Time
}
