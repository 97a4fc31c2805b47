package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/model"
	"github.com/jobcompass/jobcompass-api/internal/repository"
	"gorm.io/gorm"
)

type fakeProfileRepo struct {
	profiles map[string]*model.UserProfile
	failWith error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*model.UserProfile{}}
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*model.UserProfile, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Upsert(userID string, patch *dto.ProfileUpdateRequest) (*model.UserProfile, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
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
	apps     []model.JobApplication
	nextID   uint
	failWith error
}

func (r *fakeJobRepo) Create(app *model.JobApplication) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	app.ID = r.nextID
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Unix(1_700_000_000, 0).Add(time.Duration(r.nextID) * time.Minute)
	}
	r.apps = append(r.apps, *app)
	return nil
}

func (r *fakeJobRepo) ListByUserID(userID string) ([]model.JobApplication, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []model.JobApplication
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppliedAt.Equal(out[j].AppliedAt) {
			return out[i].AppliedAt.After(out[j].AppliedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type fakeAI struct {
	matchCalls    int
	generateCalls int
	failWith      error
	match         *dto.MatchResult
	materials     *dto.Materials
}

func (a *fakeAI) AnalyzeMatch(ctx context.Context, profile *model.UserProfile, jobDescription string) (*dto.MatchResult, error) {
	a.matchCalls++
	if a.failWith != nil {
		return nil, a.failWith
	}
	if a.match != nil {
		return a.match, nil
	}
	return &dto.MatchResult{MatchPercentage: 75, Analysis: "decent fit"}, nil
}

func (a *fakeAI) GenerateMaterials(ctx context.Context, profile *model.UserProfile, req *dto.GenerateRequest) (*dto.Materials, error) {
	a.generateCalls++
	if a.failWith != nil {
		return nil, a.failWith
	}
	if a.materials != nil {
		return a.materials, nil
	}
	return &dto.Materials{CustomCv: "# CV", CoverLetter: "Dear team,"}, nil
}

type fakeSearch struct {
	listings []dto.JobListing
	failWith error
}

func (s *fakeSearch) Search(ctx context.Context, query, location string) ([]dto.JobListing, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if s.listings != nil {
		return s.listings, nil
	}
	return []dto.JobListing{{Title: fmt.Sprintf("%s role", query), Company: "Acme", Location: location}}, nil
}
