package types

import (
	"testing"
	"time"
)

func TestAppConfigFields(t *testing.T) {
	config := AppConfig{
		Figma: FigmaConfig{
			Token:          "tok",
			APIBaseURL:     "https://api.figma.com",
			RequestTimeout: 30 * time.Second,
			RequestsPerSec: 2,
		},
		Cache:   CacheConfig{MaxEntries: 500, DefaultTTL: 5 * time.Minute},
		Session: SessionConfig{TTL: 24 * time.Hour},
	}

	if config.Figma.APIBaseURL != "https://api.figma.com" {
		t.Errorf("APIBaseURL mismatch: got %q", config.Figma.APIBaseURL)
	}
	if config.Cache.MaxEntries != 500 {
		t.Errorf("MaxEntries mismatch: got %d", config.Cache.MaxEntries)
	}
	if config.Session.TTL != 24*time.Hour {
		t.Errorf("Session TTL mismatch: got %v", config.Session.TTL)
	}
}

func TestMCPErrorFormatting(t *testing.T) {
	err := NewMCPError(CodeNotFound, "component 1:1 not found", map[string]interface{}{
		"componentId": "1:1",
	})
	if err.Error() != "NOT_FOUND: component 1:1 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Details["componentId"] != "1:1" {
		t.Errorf("Details = %v", err.Details)
	}
}
