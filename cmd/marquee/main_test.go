package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	archivePath := filepath.Join(base, "archive.db")
	content := strings.Join([]string{
		`[tmdb]`,
		`api_key = "test"`,
		``,
		`[archive]`,
		`path = "` + archivePath + `"`,
		``,
		`[[directors]]`,
		`id = 137427`,
		`name = "Denis Villeneuve"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, err := runCLI(t, []string{"config", "init", "--path", target})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init must refuse to clobber the existing file.
	if _, err := runCLI(t, []string{"config", "init", "--path", target}); err == nil {
		t.Fatal("expected error when config already exists")
	}

	configPath := writeTestConfig(t)
	out, err = runCLI(t, []string{"--config", configPath, "config", "validate"})
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateDoesNotCreateArchiveDirectory(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	archiveDir := filepath.Join(base, "state", "marquee")
	content := strings.Join([]string{
		`[tmdb]`,
		`api_key = "test"`,
		``,
		`[archive]`,
		`path = "` + filepath.Join(archiveDir, "archive.db") + `"`,
		``,
		`[[directors]]`,
		`id = 137427`,
		`name = "Denis Villeneuve"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCLI(t, []string{"--config", configPath, "config", "validate"})
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "does not exist yet")
	requireContains(t, out, "Configuration valid")

	if _, err := os.Stat(archiveDir); !os.IsNotExist(err) {
		t.Fatalf("validate must not create the archive directory: %v", err)
	}
}

func TestConfigShowListsDirectors(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, []string{"--config", configPath, "config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "Denis Villeneuve")
	requireContains(t, out, "137427")
}

func TestArchiveStatsOnEmptyArchive(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, []string{"--config", configPath, "archive", "stats"})
	if err != nil {
		t.Fatalf("archive stats: %v", err)
	}
	requireContains(t, out, "Announced releases: 0")
}

func TestArchiveListOnEmptyArchive(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, []string{"--config", configPath, "archive", "list"})
	if err != nil {
		t.Fatalf("archive list: %v", err)
	}
	requireContains(t, out, "Archive is empty")
}

func TestTestNotifyWithoutChannels(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, []string{"--config", configPath, "test-notify"})
	if err != nil {
		t.Fatalf("test-notify: %v", err)
	}
	requireContains(t, out, "No notification channels configured")
}
