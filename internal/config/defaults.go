package config

const (
	defaultTargetDir            = "~/Downloads"
	defaultLogDir               = "~/.local/share/tidy/logs"
	defaultJournalFile          = "~/.local/share/tidy/actions.jsonl"
	defaultLargeFileThresholdMB = 500
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultMaxLogMB             = 1
	defaultLogBackups           = 3
	defaultLogRetentionDays     = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		// Paths.TargetDir stays empty here; normalize resolves it from the
		// TIDY_TARGET_DIR environment variable before falling back to the
		// built-in default, and pre-seeding would mask both.
		Paths: Paths{
			LogDir:      defaultLogDir,
			JournalFile: defaultJournalFile,
		},
		// Categories and Organize.Ignore stay nil here; normalize fills them
		// in when the config file declares none, so file-provided lists are
		// never merged with defaults during decoding.
		Organize: Organize{
			LargeFileThresholdMB: defaultLargeFileThresholdMB,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			MaxLogMB:      defaultMaxLogMB,
			LogBackups:    defaultLogBackups,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}

func defaultIgnore() []string {
	return []string{".DS_Store", "desktop.ini", "Thumbs.db"}
}

// DefaultCategories returns the stock routing table used when a config file
// declares none. Order matters: the first category containing an extension wins.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic", ".svg", ".bmp"}},
		{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt", ".md", ".csv", ".epub"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mkv", ".mov", ".avi", ".webm", ".m4v"}},
		{Name: "Music", Extensions: []string{".mp3", ".flac", ".wav", ".aac", ".ogg", ".m4a"}},
		{Name: "Archives", Extensions: []string{".zip", ".tar", ".gz", ".bz2", ".xz", ".rar", ".7z"}},
		{Name: "Installers", Extensions: []string{".dmg", ".pkg", ".deb", ".rpm", ".msi", ".exe", ".appimage"}},
		{Name: "Code", Extensions: []string{".go", ".py", ".js", ".ts", ".sh", ".json", ".yaml", ".yml", ".toml"}},
	}
}
