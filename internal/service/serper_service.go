package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jobcompass/jobcompass-api/internal/config"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/tidwall/gjson"
)

type SearchServiceInterface interface {
	Search(ctx context.Context, query, location string) ([]dto.JobListing, error)
}

// SerperService queries the Serper search API for job postings. Without an
// API key it serves a fixed mock list so the rest of the flow stays usable
// in local development.
type SerperService struct {
	client *resty.Client
	apiKey string
}

func NewSerperService() *SerperService {
	serperConfig := config.LoadSerperConfig()
	if serperConfig.APIKey == "" {
		log.Println("SERPER_API_KEY not set, job search will return mock listings")
	}
	return &SerperService{
		client: resty.New().SetBaseURL(serperConfig.BaseURL),
		apiKey: serperConfig.APIKey,
	}
}

func (s *SerperService) Search(ctx context.Context, query, location string) ([]dto.JobListing, error) {
	if s.apiKey == "" {
		return mockListings(location), nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"q": fmt.Sprintf("%s jobs in %s", query, location),
		}).
		Post("/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("serper returned status %d", resp.StatusCode())
	}

	return parseSerperResults(resp.String(), location), nil
}

// parseSerperResults maps organic search hits onto job listings. Serper
// has no dedicated jobs schema, so the company is recovered from the
// "Title - Company" convention or the result's source field.
func parseSerperResults(body, location string) []dto.JobListing {
	results := gjson.Get(body, "organic").Array()
	listings := make([]dto.JobListing, 0, len(results))
	for _, r := range results {
		title := r.Get("title").String()
		if title == "" {
			continue
		}
		company := r.Get("source").String()
		if parts := strings.SplitN(title, " - ", 2); len(parts) == 2 {
			title = strings.TrimSpace(parts[0])
			if company == "" {
				company = strings.TrimSpace(parts[1])
			}
		}
		link := r.Get("link").String()
		if company == "" {
			company = hostOf(link)
		}
		listings = append(listings, dto.JobListing{
			Title:       title,
			Company:     company,
			Location:    location,
			Description: r.Get("snippet").String(),
			URL:         link,
			Date:        r.Get("date").String(),
		})
	}
	return listings
}

func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(u.Host, "www.")
}

func mockListings(location string) []dto.JobListing {
	if location == "" {
		location = "Remote"
	}
	return []dto.JobListing{
		{
			Title:       "Software Engineer",
			Company:     "Tech Corp",
			Location:    location,
			Description: "We are looking for a software engineer with React and Node.js experience.",
			URL:         "https://example.com/job/1",
			Date:        "2 days ago",
		},
		{
			Title:       "Frontend Developer",
			Company:     "Creative Agency",
			Location:    location,
			Description: "Join our team to build beautiful interfaces.",
			URL:         "https://example.com/job/2",
			Date:        "1 day ago",
		},
	}
}
