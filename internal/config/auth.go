package config

import (
	"os"
	"sync"
)

type AuthConfig struct {
	IntrospectURL string
	SessionCookie string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

// LoadAuthConfig reads the session-introspection collaborator settings.
// Identity is owned by an external auth service; this app only verifies
// session tokens against it.
func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		cookie := os.Getenv("AUTH_SESSION_COOKIE")
		if cookie == "" {
			cookie = "session"
		}
		authConfig = &AuthConfig{
			IntrospectURL: os.Getenv("AUTH_INTROSPECT_URL"),
			SessionCookie: cookie,
		}
	})
	return authConfig
}
