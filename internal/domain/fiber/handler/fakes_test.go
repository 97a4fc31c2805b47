package handler

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/middleware"
	"github.com/jobcompass/jobcompass-api/internal/model"
	"github.com/jobcompass/jobcompass-api/internal/repository"
	"github.com/jobcompass/jobcompass-api/internal/usecase"
	"gorm.io/gorm"
)

// fakeAuth treats the presented token as the user id, so tests pick their
// identity with the Authorization header.
type fakeAuth struct{}

func (fakeAuth) ResolveUser(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.New("no session")
	}
	return token, nil
}

type fakeProfileRepo struct {
	profiles map[string]*model.UserProfile
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*model.UserProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Upsert(userID string, patch *dto.ProfileUpdateRequest) (*model.UserProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		p = &model.UserProfile{ID: uint(len(r.profiles) + 1), UserID: userID}
		r.profiles[userID] = p
	}
	repository.ApplyProfilePatch(p, patch)
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

type fakeJobRepo struct {
	apps   []model.JobApplication
	nextID uint
}

func (r *fakeJobRepo) Create(app *model.JobApplication) error {
	r.nextID++
	app.ID = r.nextID
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Unix(1_700_000_000, 0).Add(time.Duration(r.nextID) * time.Minute)
	}
	r.apps = append(r.apps, *app)
	return nil
}

func (r *fakeJobRepo) ListByUserID(userID string) ([]model.JobApplication, error) {
	var out []model.JobApplication
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

type fakeAI struct {
	matchCalls int
	failWith   error
}

func (a *fakeAI) AnalyzeMatch(_ context.Context, _ *model.UserProfile, _ string) (*dto.MatchResult, error) {
	a.matchCalls++
	if a.failWith != nil {
		return nil, a.failWith
	}
	return &dto.MatchResult{
		MatchPercentage: 82,
		MatchingSkills:  []string{"Go"},
		MissingSkills:   []string{"Kubernetes"},
		Analysis:        "strong fit",
	}, nil
}

func (a *fakeAI) GenerateMaterials(_ context.Context, _ *model.UserProfile, _ *dto.GenerateRequest) (*dto.Materials, error) {
	if a.failWith != nil {
		return nil, a.failWith
	}
	return &dto.Materials{CustomCv: "# Summary", CoverLetter: "Dear team,"}, nil
}

type fakeSearch struct{}

func (fakeSearch) Search(_ context.Context, query, location string) ([]dto.JobListing, error) {
	return []dto.JobListing{{Title: query, Company: "Acme", Location: location}}, nil
}

type testEnv struct {
	app         *fiber.App
	profileRepo *fakeProfileRepo
	jobRepo     *fakeJobRepo
	ai          *fakeAI
}

func newTestEnv() *testEnv {
	profileRepo := &fakeProfileRepo{profiles: map[string]*model.UserProfile{}}
	jobRepo := &fakeJobRepo{}
	ai := &fakeAI{}

	app := fiber.New()
	api := app.Group("/api", middleware.Auth(fakeAuth{}))
	NewProfileHandler(usecase.NewProfileUsecase(profileRepo)).RegisterRoutes(api)
	NewJobHandler(usecase.NewJobUsecase(profileRepo, jobRepo, ai, fakeSearch{})).RegisterRoutes(api)

	return &testEnv{app: app, profileRepo: profileRepo, jobRepo: jobRepo, ai: ai}
}
