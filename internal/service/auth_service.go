package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/jobcompass/jobcompass-api/internal/config"
	"github.com/tidwall/gjson"
)

type AuthenticatorInterface interface {
	ResolveUser(ctx context.Context, sessionToken string) (string, error)
}

// AuthService asks the external auth collaborator who owns a session
// token. This app never manages identities itself; it only carries the
// resolved user id through the request.
type AuthService struct {
	client        *resty.Client
	introspectURL string
}

func NewAuthService() *AuthService {
	authConfig := config.LoadAuthConfig()
	return &AuthService{
		client:        resty.New(),
		introspectURL: authConfig.IntrospectURL,
	}
}

func (s *AuthService) ResolveUser(ctx context.Context, sessionToken string) (string, error) {
	if s.introspectURL == "" {
		return "", fmt.Errorf("AUTH_INTROSPECT_URL not set")
	}
	if sessionToken == "" {
		return "", fmt.Errorf("empty session token")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+sessionToken).
		Get(s.introspectURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("auth service returned status %d", resp.StatusCode())
	}

	userID := gjson.Get(resp.String(), "sub").String()
	if userID == "" {
		userID = gjson.Get(resp.String(), "userId").String()
	}
	if userID == "" {
		return "", fmt.Errorf("auth service returned no user id")
	}
	return userID, nil
}
