package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/config"
)

func TestLoadDefaultsUseEnvTMDBKeyAndExpandArchivePath(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(tempHome, "config.toml")
	body := `
[[directors]]
id = 137427
name = "Denis Villeneuve"
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	wantArchive := filepath.Join(tempHome, ".local", "share", "marquee", "archive.db")
	if cfg.Archive.Path != wantArchive {
		t.Fatalf("unexpected archive path: got %q want %q", cfg.Archive.Path, wantArchive)
	}
	if cfg.Email.Enabled {
		t.Fatal("expected email disabled by default")
	}
	if cfg.Filters.ShortRuntimeMinutes != 40 {
		t.Fatalf("unexpected short runtime threshold: %d", cfg.Filters.ShortRuntimeMinutes)
	}
	if len(cfg.Filters.PlaceholderPatterns) == 0 {
		t.Fatal("expected default placeholder patterns")
	}
}

func TestLoadRejectsMissingDirectors(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(tempHome, "config.toml")
	if err := os.WriteFile(configPath, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "directors") {
		t.Fatalf("expected directors validation error, got %v", err)
	}
}

func TestLoadRejectsDuplicateDirectorIDs(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(tempHome, "config.toml")
	body := `
[[directors]]
id = 525
name = "Christopher Nolan"

[[directors]]
id = 525
name = "Christopher Nolan"
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoadRejectsInvalidPlaceholderPattern(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(tempHome, "config.toml")
	body := `
[filters]
placeholder_patterns = ["("]

[[directors]]
id = 1
name = "Someone"
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "invalid pattern") {
		t.Fatalf("expected pattern error, got %v", err)
	}
}

func TestLoadRejectsEmailWithoutRecipients(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(tempHome, "config.toml")
	body := `
[email]
enabled = true
host = "smtp.example.com"
from = "marquee@example.com"

[[directors]]
id = 1
name = "Someone"
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "email.to") {
		t.Fatalf("expected recipient validation error, got %v", err)
	}
}

func TestEmailPasswordFallsBackToEnv(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("MARQUEE_SMTP_PASSWORD", "hunter2")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(tempHome, "config.toml")
	body := `
[email]
enabled = true
host = "smtp.example.com"
from = "marquee@example.com"
to = ["you@example.com"]

[[directors]]
id = 1
name = "Someone"
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Email.Password != "hunter2" {
		t.Fatalf("expected password from env, got %q", cfg.Email.Password)
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	written, err := config.CreateSample(path)
	if err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if written != path {
		t.Fatalf("unexpected written path: %q", written)
	}
	if _, err := config.CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}
