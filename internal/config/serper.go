package config

import (
	"os"
	"sync"
)

type SerperConfig struct {
	APIKey  string
	BaseURL string
}

var (
	serperConfig *SerperConfig
	serperOnce   sync.Once
)

// LoadSerperConfig reads the job-search provider settings. An empty APIKey
// means the provider is unconfigured and search falls back to mock listings.
func LoadSerperConfig() *SerperConfig {
	serperOnce.Do(func() {
		baseURL := os.Getenv("SERPER_BASE_URL")
		if baseURL == "" {
			baseURL = "https://google.serper.dev"
		}
		serperConfig = &SerperConfig{
			APIKey:  os.Getenv("SERPER_API_KEY"),
			BaseURL: baseURL,
		}
	})
	return serperConfig
}
