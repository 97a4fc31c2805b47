package model

import (
	"time"
)

// JobApplication is immutable once created: records are only inserted and
// listed, never updated or deleted.
type JobApplication struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index;not null" json:"userId"`
	JobTitle        string    `gorm:"not null" json:"jobTitle"`
	CompanyName     string    `gorm:"not null" json:"companyName"`
	MatchPercentage *int      `json:"matchPercentage"`
	JobURL          *string   `json:"jobUrl"`
	Description     *string   `gorm:"type:text" json:"description"`
	CustomCvURL     *string   `json:"customCvUrl"`
	CoverLetterURL  *string   `json:"coverLetterUrl"`
	AppliedAt       time.Time `json:"appliedAt"`
}

func (a *JobApplication) TableName() string {
	return "job_applications"
}
