package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeArchive(); err != nil {
		return err
	}
	c.normalizeTMDB()
	c.normalizeFilters()
	c.normalizeEmail()
	c.normalizeNotifications()
	c.normalizeLogging()
	c.normalizeDirectors()
	return nil
}

func (c *Config) normalizeArchive() error {
	if strings.TrimSpace(c.Archive.Path) == "" {
		c.Archive.Path = defaultArchivePath
	}
	var err error
	if c.Archive.Path, err = expandPath(c.Archive.Path); err != nil {
		return fmt.Errorf("archive.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeTMDB() {
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
	if c.TMDB.RequestTimeout <= 0 {
		c.TMDB.RequestTimeout = defaultTMDBRequestTimeout
	}
}

func (c *Config) normalizeFilters() {
	patterns := make([]string, 0, len(c.Filters.PlaceholderPatterns))
	for _, pattern := range c.Filters.PlaceholderPatterns {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	c.Filters.PlaceholderPatterns = patterns
	if c.Filters.ShortRuntimeMinutes < 0 {
		c.Filters.ShortRuntimeMinutes = 0
	}
}

func (c *Config) normalizeEmail() {
	c.Email.Host = strings.TrimSpace(c.Email.Host)
	c.Email.Username = strings.TrimSpace(c.Email.Username)
	c.Email.From = strings.TrimSpace(c.Email.From)
	if c.Email.Password == "" {
		if value, ok := os.LookupEnv("MARQUEE_SMTP_PASSWORD"); ok {
			c.Email.Password = value
		}
	}
	if c.Email.Port <= 0 {
		c.Email.Port = defaultSMTPPort
	}
	recipients := make([]string, 0, len(c.Email.To))
	for _, addr := range c.Email.To {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	c.Email.To = recipients
	if strings.TrimSpace(c.Email.Subject) == "" {
		c.Email.Subject = defaultEmailSubject
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNtfyRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeDirectors() {
	directors := make([]Director, 0, len(c.Directors))
	for _, d := range c.Directors {
		d.Name = strings.TrimSpace(d.Name)
		directors = append(directors, d)
	}
	c.Directors = directors
}
