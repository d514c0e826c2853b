package models

import "time"

type LeaveType struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex;not null"`
	Color         string `gorm:"not null"`
	SingleDayOnly bool   `gorm:"not null;default:false"`
}

type PayPeriod struct {
	ID           uint      `gorm:"primaryKey"`
	PeriodNumber int       `gorm:"not null"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	TaxYear      int       `gorm:"not null;index"`
}
