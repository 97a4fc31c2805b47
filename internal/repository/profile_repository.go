package repository

import (
	"time"

	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/model"
	"gorm.io/gorm"
)

type ProfileRepositoryInterface interface {
	FindByUserID(userID string) (*model.UserProfile, error)
	Upsert(userID string, patch *dto.ProfileUpdateRequest) (*model.UserProfile, error)
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) FindByUserID(userID string) (*model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert merges the patch over the stored profile, creating it on first
// write. Read-then-write is not atomic: two concurrent updates for one
// user resolve last-write-wins.
func (r *ProfileRepository) Upsert(userID string, patch *dto.ProfileUpdateRequest) (*model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.First(&p, "user_id = ?", userID).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	p.UserID = userID
	ApplyProfilePatch(&p, patch)
	p.UpdatedAt = time.Now()
	if err := r.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ApplyProfilePatch overwrites only the fields the patch sets; nil fields
// retain the prior value.
func ApplyProfilePatch(p *model.UserProfile, patch *dto.ProfileUpdateRequest) {
	if patch.CvFileURL != nil {
		p.CvFileURL = patch.CvFileURL
	}
	if patch.LinkedinURL != nil {
		p.LinkedinURL = patch.LinkedinURL
	}
	if patch.ParsedSkills != nil {
		p.ParsedSkills = patch.ParsedSkills
	}
	if patch.ExperienceLevel != nil {
		p.ExperienceLevel = patch.ExperienceLevel
	}
	if patch.TargetLocation != nil {
		p.TargetLocation = patch.TargetLocation
	}
}
