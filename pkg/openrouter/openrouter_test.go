package openrouter

import (
	"testing"
	"time"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if c := NewClient(Config{}); c != nil {
		t.Fatal("NewClient() without an API key must return nil")
	}
	if c := NewClient(Config{APIKey: "   "}); c != nil {
		t.Fatal("NewClient() with a blank API key must return nil")
	}
}

func TestNewClientWithKey(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{
		APIKey:   "sk-test",
		BaseURL:  "https://openrouter.ai/api/v1/",
		SiteURL:  "https://example.com",
		SiteName: "example",
		Timeout:  10 * time.Second,
	})
	if c == nil {
		t.Fatal("NewClient() with an API key returned nil")
	}
}
