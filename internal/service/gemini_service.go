package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jobcompass/jobcompass-api/internal/config"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/model"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

type AIServiceInterface interface {
	AnalyzeMatch(ctx context.Context, profile *model.UserProfile, jobDescription string) (*dto.MatchResult, error)
	GenerateMaterials(ctx context.Context, profile *model.UserProfile, req *dto.GenerateRequest) (*dto.Materials, error)
}

// GeminiService is the AI collaborator for match analysis and material
// generation. Calls are blocking and made once per request: failures
// surface to the caller with no retry.
type GeminiService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		Client:         client,
		Model:          geminiConfig.Model,
		RequestTimeout: 90 * time.Second,
	}, nil
}

const matchPromptTemplate = `Analyze the fit between this candidate and the job.

Candidate Skills: %s
Candidate Experience: %s

Job Description:
%s

Return JSON: { "matchPercentage": number (0-100), "matchingSkills": string[], "missingSkills": string[], "analysis": string }`

func (s *GeminiService) AnalyzeMatch(ctx context.Context, profile *model.UserProfile, jobDescription string) (*dto.MatchResult, error) {
	prompt := fmt.Sprintf(matchPromptTemplate,
		toJSONArray(profile.ParsedSkills),
		orDefault(profile.ExperienceLevel, "Not specified"),
		jobDescription,
	)

	text, err := s.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseMatchResult(text)
}

const generatePromptTemplate = `Generate a custom CV summary and cover letter for this job application.

Candidate Skills: %s
Candidate Experience: %s

Job: %s at %s
Description: %s

Return JSON: { "customCv": string (markdown), "coverLetter": string (markdown) }`

func (s *GeminiService) GenerateMaterials(ctx context.Context, profile *model.UserProfile, req *dto.GenerateRequest) (*dto.Materials, error) {
	prompt := fmt.Sprintf(generatePromptTemplate,
		toJSONArray(profile.ParsedSkills),
		orDefault(profile.ExperienceLevel, "Not specified"),
		req.JobTitle,
		req.CompanyName,
		req.JobDescription,
	)

	text, err := s.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseMaterials(text)
}

func (s *GeminiService) generateJSON(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
	}

	result, err := s.Client.Models.GenerateContent(
		timeoutCtx,
		s.Model,
		genai.Text(prompt),
		genConfig,
	)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}
	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

// parseMatchResult maps the model's JSON answer onto the result DTO. The
// score is clamped to 0-100 since the model occasionally overshoots.
func parseMatchResult(text string) (*dto.MatchResult, error) {
	text = stripCodeFences(text)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("model did not return valid JSON")
	}
	score := int(gjson.Get(text, "matchPercentage").Int())
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result := &dto.MatchResult{
		MatchPercentage: score,
		MatchingSkills:  stringSlice(gjson.Get(text, "matchingSkills")),
		MissingSkills:   stringSlice(gjson.Get(text, "missingSkills")),
		Analysis:        gjson.Get(text, "analysis").String(),
	}
	return result, nil
}

func parseMaterials(text string) (*dto.Materials, error) {
	text = stripCodeFences(text)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("model did not return valid JSON")
	}
	m := &dto.Materials{
		CustomCv:    gjson.Get(text, "customCv").String(),
		CoverLetter: gjson.Get(text, "coverLetter").String(),
	}
	if m.CustomCv == "" && m.CoverLetter == "" {
		return nil, fmt.Errorf("model returned empty materials")
	}
	return m, nil
}

// stripCodeFences removes a surrounding ```json fence when the model wraps
// its answer despite the JSON response mime type.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func stringSlice(v gjson.Result) []string {
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

func toJSONArray(skills []string) string {
	if skills == nil {
		skills = []string{}
	}
	b, _ := json.Marshal(skills)
	return string(b)
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
