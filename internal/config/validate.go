package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateFilters(); err != nil {
		return err
	}
	if err := c.validateEmail(); err != nil {
		return err
	}
	if err := c.validateDirectors(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/marquee/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'marquee config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateFilters() error {
	for _, pattern := range c.Filters.PlaceholderPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("filters.placeholder_patterns: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateEmail() error {
	if !c.Email.Enabled {
		return nil
	}
	if c.Email.Host == "" {
		return errors.New("email.host must be set when email.enabled is true")
	}
	if c.Email.From == "" {
		return errors.New("email.from must be set when email.enabled is true")
	}
	if len(c.Email.To) == 0 {
		return errors.New("email.to must list at least one recipient when email.enabled is true")
	}
	return nil
}

func (c *Config) validateDirectors() error {
	if len(c.Directors) == 0 {
		return errors.New("at least one [[directors]] entry is required")
	}
	seen := make(map[int64]struct{}, len(c.Directors))
	for i, d := range c.Directors {
		if d.ID <= 0 {
			return fmt.Errorf("directors[%d].id must be a positive TMDB person id", i)
		}
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("directors[%d].name must be set", i)
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("directors[%d]: duplicate id %d", i, d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	return nil
}
