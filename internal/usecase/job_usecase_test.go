package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jobcompass/jobcompass-api/internal/apperror"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobUsecaseWithProfile(t *testing.T) (*JobUsecase, *fakeProfileRepo, *fakeJobRepo, *fakeAI) {
	t.Helper()
	profileRepo := newFakeProfileRepo()
	_, err := profileRepo.Upsert("u1", &dto.ProfileUpdateRequest{ParsedSkills: []string{"Go", "SQL"}})
	require.NoError(t, err)

	jobRepo := &fakeJobRepo{}
	ai := &fakeAI{}
	uc := NewJobUsecase(profileRepo, jobRepo, ai, &fakeSearch{})
	return uc, profileRepo, jobRepo, ai
}

func TestMatchWithoutProfileNeverCallsAI(t *testing.T) {
	ai := &fakeAI{}
	uc := NewJobUsecase(newFakeProfileRepo(), &fakeJobRepo{}, ai, &fakeSearch{})

	_, err := uc.Match(context.Background(), "u1", "some job description")

	var pe *apperror.PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Complete your profile first", pe.Message)
	assert.Zero(t, ai.matchCalls)
}

func TestGenerateWithoutProfileNeverCallsAI(t *testing.T) {
	ai := &fakeAI{}
	uc := NewJobUsecase(newFakeProfileRepo(), &fakeJobRepo{}, ai, &fakeSearch{})

	_, err := uc.Generate(context.Background(), "u1", &dto.GenerateRequest{
		JobDescription: "desc", JobTitle: "Engineer", CompanyName: "Acme",
	})

	var pe *apperror.PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Zero(t, ai.generateCalls)
}

func TestMatchReturnsResultVerbatim(t *testing.T) {
	uc, _, _, ai := newJobUsecaseWithProfile(t)
	ai.match = &dto.MatchResult{
		MatchPercentage: 82,
		MatchingSkills:  []string{"Go"},
		MissingSkills:   []string{"Kubernetes"},
		Analysis:        "strong backend fit",
	}

	result, err := uc.Match(context.Background(), "u1", "desc")

	require.NoError(t, err)
	assert.Equal(t, ai.match, result)
	assert.Equal(t, 1, ai.matchCalls)
}

func TestMatchAIFailureIsUpstream(t *testing.T) {
	uc, _, _, ai := newJobUsecaseWithProfile(t)
	ai.failWith = errors.New("model overloaded")

	_, err := uc.Match(context.Background(), "u1", "desc")

	var ue *apperror.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.ErrorContains(t, ue.Err, "model overloaded")
}

func TestSearchDelegatesToProvider(t *testing.T) {
	search := &fakeSearch{listings: []dto.JobListing{
		{Title: "Backend Engineer", Company: "Acme", Location: "Remote"},
	}}
	uc := NewJobUsecase(newFakeProfileRepo(), &fakeJobRepo{}, &fakeAI{}, search)

	listings, err := uc.Search(context.Background(), &dto.JobSearchRequest{Query: "backend", Location: "Remote"})

	require.NoError(t, err)
	assert.Equal(t, search.listings, listings)
}

func TestSearchProviderFailureIsUpstream(t *testing.T) {
	search := &fakeSearch{failWith: errors.New("provider down")}
	uc := NewJobUsecase(newFakeProfileRepo(), &fakeJobRepo{}, &fakeAI{}, search)

	_, err := uc.Search(context.Background(), &dto.JobSearchRequest{Query: "backend", Location: "Remote"})

	var ue *apperror.UpstreamError
	require.ErrorAs(t, err, &ue)
}

func TestSaveAssignsIncreasingIDs(t *testing.T) {
	uc, _, _, _ := newJobUsecaseWithProfile(t)

	first, err := uc.Save("u1", &dto.SaveJobRequest{JobTitle: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)
	second, err := uc.Save("u1", &dto.SaveJobRequest{JobTitle: "Developer", CompanyName: "Globex"})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.AppliedAt.IsZero())
}

func TestListSavedNewestFirst(t *testing.T) {
	uc, _, _, _ := newJobUsecaseWithProfile(t)

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := uc.Save("u1", &dto.SaveJobRequest{JobTitle: title, CompanyName: "Acme"})
		require.NoError(t, err)
	}
	_, err := uc.Save("other", &dto.SaveJobRequest{JobTitle: "Not mine", CompanyName: "Acme"})
	require.NoError(t, err)

	apps, err := uc.ListSaved("u1")
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "Third", apps[0].JobTitle)
	assert.Equal(t, "Second", apps[1].JobTitle)
	assert.Equal(t, "First", apps[2].JobTitle)
	for i := 0; i < len(apps)-1; i++ {
		assert.False(t, apps[i].AppliedAt.Before(apps[i+1].AppliedAt))
	}
}

func TestSaveScenarioRoundTrip(t *testing.T) {
	uc, _, _, _ := newJobUsecaseWithProfile(t)

	saved, err := uc.Save("u1", &dto.SaveJobRequest{JobTitle: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	apps, err := uc.ListSaved("u1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Engineer", apps[0].JobTitle)
	assert.Equal(t, "Acme", apps[0].CompanyName)
	assert.Equal(t, saved.ID, apps[0].ID)
	assert.False(t, apps[0].AppliedAt.IsZero())
}

func TestSaveStoreFailure(t *testing.T) {
	uc, _, jobRepo, _ := newJobUsecaseWithProfile(t)
	jobRepo.failWith = errors.New("constraint violation")

	_, err := uc.Save("u1", &dto.SaveJobRequest{JobTitle: "Engineer", CompanyName: "Acme"})

	var se *apperror.StoreError
	require.ErrorAs(t, err, &se)
}
