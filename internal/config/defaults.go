package config

const (
	defaultArchivePath         = "~/.local/share/marquee/archive.db"
	defaultTMDBLanguage        = "en-US"
	defaultTMDBBaseURL         = "https://api.themoviedb.org/3"
	defaultTMDBRequestTimeout  = 15
	defaultShortRuntimeMinutes = 40
	defaultSMTPPort            = 587
	defaultEmailSubject        = "New releases from your directors"
	defaultNtfyRequestTimeout  = 10
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// defaultPlaceholderPatterns match the working-title conventions studios use
// before a project is announced, e.g. "Untitled Villeneuve Project".
var defaultPlaceholderPatterns = []string{
	`(?i)^untitled\b`,
	`(?i)\buntitled\b.*\b(project|film|movie|sequel)\b`,
	`(?i)^(tba|tbd)$`,
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			Language:       defaultTMDBLanguage,
			BaseURL:        defaultTMDBBaseURL,
			RequestTimeout: defaultTMDBRequestTimeout,
		},
		Archive: Archive{
			Path: defaultArchivePath,
		},
		Filters: Filters{
			PlaceholderPatterns: append([]string(nil), defaultPlaceholderPatterns...),
			ShortRuntimeMinutes: defaultShortRuntimeMinutes,
		},
		Email: Email{
			Port:    defaultSMTPPort,
			Subject: defaultEmailSubject,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
