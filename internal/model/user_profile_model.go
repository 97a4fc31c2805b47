package model

import (
	"time"
)

// UserProfile holds a user's resume-derived attributes used as matching
// input. At most one row exists per user id; writes are upserts.
type UserProfile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"uniqueIndex;not null" json:"userId"`
	CvFileURL       *string   `json:"cvFileUrl"`
	LinkedinURL     *string   `json:"linkedinUrl"`
	ParsedSkills    []string  `gorm:"serializer:json;type:jsonb" json:"parsedSkills"`
	ExperienceLevel *string   `json:"experienceLevel"`
	TargetLocation  *string   `json:"targetLocation"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (p *UserProfile) TableName() string {
	return "user_profiles"
}
