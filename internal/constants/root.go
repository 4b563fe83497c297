package constants

// DopamineStatus represents the pass/fail outcome of a dopamine day
type DopamineStatus string

// HabitDifficulty represents the difficulty rating of a hygiene habit
type HabitDifficulty string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "lifetrack"
	DefaultConfigPath = "~/.config/lifetrack/lifetrack.db"
	Version           = "v1.0.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Dopamine Status constants
	StatusPassed DopamineStatus = "passed"
	StatusFailed DopamineStatus = "failed"

	// Habit Difficulty constants
	DifficultyEasy   HabitDifficulty = "easy"
	DifficultyMedium HabitDifficulty = "medium"
	DifficultyHard   HabitDifficulty = "hard"

	DefaultHabitCategory = "personal"

	// HygieneCompletedThreshold is the hygiene percentage at or above which a
	// day counts as hygiene-completed in the daily summary.
	HygieneCompletedThreshold = 50

	// Calendar level thresholds (completion percentage)
	CalendarPassedThreshold  = 75
	CalendarWarningThreshold = 50

	// StreakLookbackDays bounds the backward walk when computing the current
	// streak.
	StreakLookbackDays = 365

	// Mood scale bounds (inclusive)
	MoodScaleMin = 1
	MoodScaleMax = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifetrack-"
	BackupFileSuffix = ".db"

	// Export constants
	ExportFilePrefix = "life_tracker_backup_"
	ExportFileSuffix = ".json"

	// Collection names used in the export document
	CollectionDopamine    = "dopamineEntries"
	CollectionHabits      = "hygieneHabits"
	CollectionMood        = "moodEntries"
	CollectionCompletions = "hygieneCompletions"
	CollectionDaily       = "dailyCompletion"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateHabits
	StateMood
	StateCalendar
	StateConfirmClear
)
