package constants

import "time"

// PermissionState represents the notification permission state machine
type PermissionState string

const (
	AppName          = "clearday"
	Version          = "v0.1.0"
	DefaultStorePath = "~/.config/clearday/store"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys. These form the durable flat key->JSON layout; renaming any
	// of them orphans existing user data.
	KeyUserName        = "userName"
	KeySobrietyDate    = "sobrietyDate"
	KeyStreak          = "sobrietyStreak"
	KeyAchievements    = "achievements"
	KeyPositiveChoices = "positiveChoices"
	KeyLastCheckDate   = "lastCheckDate"
	KeyJournalEntries  = "journalEntries"
	KeyTriggers        = "triggers"
	KeyCustomGoals     = "customGoals"
	KeyMessages        = "personalizedMessages"
	KeyUsedPrompts     = "usedJournalPrompts"
	KeyPersonalization = "personalizationEnabled"
	KeyNotifyState     = "notifyPermission"

	// KeyLegacyAPIKey is the durable-store key older builds used for the
	// assist credential. Any value found there is migrated to the OS keyring
	// at startup and removed.
	KeyLegacyAPIKey = "assistApiKey"

	DefaultKeyringUser = "assist-api-key"

	// WriteDebounce is the window within which writes to the same store key
	// are coalesced into a single durable write.
	WriteDebounce = 500 * time.Millisecond

	// StreakGraceWindow is the maximum gap between check-ins that still
	// counts as consecutive.
	StreakGraceWindow = 48 * time.Hour

	// ReminderDelay is how long after the last interaction the check-in
	// reminder fires.
	ReminderDelay = 8 * time.Hour

	// AssistCooldown is the minimum interval between personalized message
	// generations.
	AssistCooldown = 10 * time.Second

	MinTriggerIntensity = 1
	MaxTriggerIntensity = 9

	// Notify constants
	NotifierLockfileName   = "clearday-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "dev.clearday.tray"

	// Notification permission states
	PermissionNotRequested PermissionState = "not-requested"
	PermissionGranted      PermissionState = "granted"
	PermissionDenied       PermissionState = "denied"

	// Assist upstream (Anthropic-compatible messages endpoint, reached only
	// from the proxy server; the CLI talks to the proxy)
	AssistModel       = "claude-3-haiku-20240307"
	AssistMaxTokens   = 1000
	AssistAPIVersion  = "2023-06-01"
	AssistUpstreamURL = "https://api.anthropic.com/v1/messages"

	// ServerKeyEnv holds the upstream credential on the proxy host. It is
	// never sent to or readable by clients.
	ServerKeyEnv = "CLAUDE_API_KEY"

	DefaultServeAddr = ":3001"
	AssistRoute      = "/api/assist"
)

// UrgeFallbackMessage is returned by the urge-support flow whenever the
// remote call fails, so the user is never left without a response.
const UrgeFallbackMessage = "I'm here with you. This urge is temporary and will pass. Take a few deep breaths and remember why your recovery matters to you."
