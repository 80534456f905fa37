package constants

const (
	AppName           = "fightlog"
	DefaultConfigPath = "~/.config/fightlog/fightlog.db"
	Version           = "v0.2.0"

	// DateFormat is the standard calendar date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "fightlog-"

	// StreakThreshold is the completion rate a day must reach to count
	// toward the training streak.
	StreakThreshold = 0.8

	// TrendWindow is the number of trailing history entries the evolution
	// analysis averages over.
	TrendWindow = 7

	// Default Settings Values
	DefaultTimezone          = "Local" // use system local timezone by default
	DefaultArchiveOnRollover = false   // preserve the manual-archive behavior unless opted in
)
