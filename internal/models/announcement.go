package models

import "time"

type Announcement struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID string `gorm:"size:36;not null;index"`
	Title          string `gorm:"not null"`
	Content        string `gorm:"not null"`
	Pinned         bool   `gorm:"not null;default:false"`
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
