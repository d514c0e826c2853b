package models

import "time"

type NotificationRecipient struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID string `gorm:"size:36;not null;index"`
	Email          string `gorm:"not null"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
}
