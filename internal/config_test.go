package internal

import (
	"log/slog"
	"testing"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestForumConfig_MissingListingURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Forum.ListingURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing listing_url should fail validation")
	}
}

func TestForumConfig_RelativeURLRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Forum.RawURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Fatal("malformed raw_url should fail validation")
	}
}

func TestForumConfig_ZeroTimeoutRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Forum.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero timeout should fail validation")
	}
}

func TestForumConfig_ZeroConcurrencyRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Forum.Concurrency = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero concurrency should fail validation")
	}
}

func TestExtractConfig_EmptyKeywordsRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Extract.Keywords = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty keyword set should fail validation")
	}
	cfg.Extract.Keywords = []string{""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("blank keyword should fail validation")
	}
}

func TestApplicationConfig_InvalidLevelRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown log level should fail validation")
	}
}

func TestApplicationConfig_LevelParsing(t *testing.T) {
	c := ApplicationConfig{LogLevel: "debug"}
	if got := c.Level(); got != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", got)
	}
	c.LogLevel = "garbage"
	if got := c.Level(); got != slog.LevelInfo {
		t.Errorf("Level() = %v, want info fallback", got)
	}
}
