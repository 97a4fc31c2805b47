package usecase

import (
	"errors"

	"github.com/jobcompass/jobcompass-api/internal/apperror"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/model"
	"github.com/jobcompass/jobcompass-api/internal/repository"
	"gorm.io/gorm"
)

type ProfileUsecase struct {
	profileRepo repository.ProfileRepositoryInterface
}

func NewProfileUsecase(profileRepo repository.ProfileRepositoryInterface) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

func (uc *ProfileUsecase) Get(userID string) (*model.UserProfile, error) {
	profile, err := uc.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperror.NotFoundError{Message: "Profile not found"}
		}
		return nil, &apperror.StoreError{Op: "get profile", Err: err}
	}
	return profile, nil
}

// Update applies a partial patch with upsert semantics: the first write
// creates the profile, later writes overwrite only the fields they set.
func (uc *ProfileUsecase) Update(userID string, patch *dto.ProfileUpdateRequest) (*model.UserProfile, error) {
	profile, err := uc.profileRepo.Upsert(userID, patch)
	if err != nil {
		return nil, &apperror.StoreError{Op: "upsert profile", Err: err}
	}
	return profile, nil
}

// AttachCV records the URL of an uploaded resume artifact on the profile.
func (uc *ProfileUsecase) AttachCV(userID, fileURL string) (*model.UserProfile, error) {
	return uc.Update(userID, &dto.ProfileUpdateRequest{CvFileURL: &fileURL})
}
