package models

import "time"

type Organization struct {
	ID            string `gorm:"primaryKey;size:36"`
	Name          string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;not null"`
	AdminEmail    string `gorm:"not null"`
	SpreadsheetID string
	Settings      string `gorm:"not null;default:'{}'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
