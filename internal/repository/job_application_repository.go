package repository

import (
	"time"

	"github.com/jobcompass/jobcompass-api/internal/model"
	"gorm.io/gorm"
)

type JobApplicationRepositoryInterface interface {
	Create(app *model.JobApplication) error
	ListByUserID(userID string) ([]model.JobApplication, error)
}

type JobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db}
}

func (r *JobApplicationRepository) Create(app *model.JobApplication) error {
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}
	return r.db.Create(app).Error
}

// ListByUserID returns the user's saved applications, most recent first.
func (r *JobApplicationRepository) ListByUserID(userID string) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.db.Where("user_id = ?", userID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	return apps, err
}
