package usecase

import (
	"context"
	"errors"

	"github.com/jobcompass/jobcompass-api/internal/apperror"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/model"
	"github.com/jobcompass/jobcompass-api/internal/repository"
	"github.com/jobcompass/jobcompass-api/internal/service"
	"gorm.io/gorm"
)

// JobUsecase sequences the job flow: search, match, generate, save. It is
// stateless across requests; the client drives the flow and every step
// stands on its own. Generate and Save are deliberately independent: there
// is no transactional linkage between them.
type JobUsecase struct {
	profileRepo repository.ProfileRepositoryInterface
	jobRepo     repository.JobApplicationRepositoryInterface
	ai          service.AIServiceInterface
	search      service.SearchServiceInterface
}

func NewJobUsecase(
	profileRepo repository.ProfileRepositoryInterface,
	jobRepo repository.JobApplicationRepositoryInterface,
	ai service.AIServiceInterface,
	search service.SearchServiceInterface,
) *JobUsecase {
	return &JobUsecase{profileRepo: profileRepo, jobRepo: jobRepo, ai: ai, search: search}
}

func (uc *JobUsecase) Search(ctx context.Context, req *dto.JobSearchRequest) ([]dto.JobListing, error) {
	listings, err := uc.search.Search(ctx, req.Query, req.Location)
	if err != nil {
		return nil, &apperror.UpstreamError{Op: "job search", Err: err}
	}
	return listings, nil
}

// Match runs the AI compatibility analysis. The profile must exist before
// the AI collaborator is invoked; results are returned verbatim and never
// cached.
func (uc *JobUsecase) Match(ctx context.Context, userID, jobDescription string) (*dto.MatchResult, error) {
	profile, err := uc.requireProfile(userID)
	if err != nil {
		return nil, err
	}
	result, err := uc.ai.AnalyzeMatch(ctx, profile, jobDescription)
	if err != nil {
		return nil, &apperror.UpstreamError{Op: "match analysis", Err: err}
	}
	return result, nil
}

func (uc *JobUsecase) Generate(ctx context.Context, userID string, req *dto.GenerateRequest) (*dto.Materials, error) {
	profile, err := uc.requireProfile(userID)
	if err != nil {
		return nil, err
	}
	materials, err := uc.ai.GenerateMaterials(ctx, profile, req)
	if err != nil {
		return nil, &apperror.UpstreamError{Op: "material generation", Err: err}
	}
	return materials, nil
}

func (uc *JobUsecase) Save(userID string, req *dto.SaveJobRequest) (*model.JobApplication, error) {
	app := &model.JobApplication{
		UserID:          userID,
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
		MatchPercentage: req.MatchPercentage,
		JobURL:          req.JobURL,
		Description:     req.Description,
		CustomCvURL:     req.CustomCvURL,
		CoverLetterURL:  req.CoverLetterURL,
	}
	if err := uc.jobRepo.Create(app); err != nil {
		return nil, &apperror.StoreError{Op: "save job application", Err: err}
	}
	return app, nil
}

func (uc *JobUsecase) ListSaved(userID string) ([]model.JobApplication, error) {
	apps, err := uc.jobRepo.ListByUserID(userID)
	if err != nil {
		return nil, &apperror.StoreError{Op: "list saved jobs", Err: err}
	}
	if apps == nil {
		apps = []model.JobApplication{}
	}
	return apps, nil
}

func (uc *JobUsecase) requireProfile(userID string) (*model.UserProfile, error) {
	profile, err := uc.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperror.PreconditionError{Message: "Complete your profile first"}
		}
		return nil, &apperror.StoreError{Op: "get profile", Err: err}
	}
	return profile, nil
}
