package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "contact-assistant"
	AppDescription = "Interactive address book with an upcoming birthdays report."
	AppID          = "com.github.tartampluch.contact-assistant"
	LogFileName    = "app.log"
	SettingsFile   = "config.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1

	// ExitCodeUsage matches the code kong uses for command-line parse errors.
	ExitCodeUsage = 80
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags
// -----------------------------------------------------------------------------

const (
	MsgVersionOutput = "%s version %s (commit %s, built %s)"
	VarVersion       = "version"
	MsgErrorOutput   = "error: %s\n"
)

// -----------------------------------------------------------------------------
// Defaults & Business Rules
// -----------------------------------------------------------------------------

const (
	DefaultLanguage   = "en"
	DefaultWindowDays = 7
	MaxWindowDays     = 366
	MaxSeedContacts   = 1000

	// PhoneDigits is the exact length of a valid phone number.
	PhoneDigits = 10

	// SeedAttemptsFactor bounds the number of fake records tried per requested
	// record, since generated first names may collide.
	SeedAttemptsFactor = 10
)

// SupportedLanguages defines the list of available interface languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Date Formats
// -----------------------------------------------------------------------------

const (
	// DateLayoutInput accepts one or two digit day and month (8.11.2025, 08.11.2025).
	DateLayoutInput = "2.1.2006"

	// DateLayoutDisplay is the canonical DD.MM.YYYY rendering.
	DateLayoutDisplay = "02.01.2006"

	// DateLayoutVCard is the basic ISO 8601 date used in vCard BDAY.
	DateLayoutVCard = "20060102"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Contact Assistant//Birthdays//EN"
	ICalCalName = "Upcoming birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "contact-assistant"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"
	PropRefresh    = "REFRESH-INTERVAL"

	DefaultICalRefresh = 24 * time.Hour

	// UID Generation
	UIDSalt         = "contact-assistant-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%s@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Console
// -----------------------------------------------------------------------------

const (
	PromptPlaceholder = "add <name> <phone>"
	PromptCharLimit   = 256
	HistoryLimit      = 100
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrAppFailed       = "application failed unexpectedly"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrConfigDir       = "could not determine user config dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrSettingsRead    = "failed to read settings file"
	ErrSettingsParse   = "failed to parse settings file"
	ErrSettingsInvalid = "invalid settings"
	ErrLanguage        = "unsupported language"
	ErrWindowRange     = "birthday window must be between 0 and 366 days"
	ErrSeedRange       = "seed count must be between 0 and 1000"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrVCardEncode     = "failed to encode vCard"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrSeed            = "failed to seed address book"
	ErrPrompt          = "prompt terminated with an error"
	ErrUnhandled       = "command failed with an unexpected error"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgSettingsUsed  = "Settings loaded"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgCommandRun    = "Command executed"
	MsgCommandFailed = "Command rejected"
	MsgRecordAdded   = "Record added"
	MsgRecordDeleted = "Record deleted"
	MsgSeeded        = "Address book seeded"
	MsgSeedSkip      = "Skipping fake record"
	MsgUpcoming      = "Upcoming birthdays computed"
	MsgSessionStart  = "Prompt session started"
	MsgSessionEnd    = "Prompt session ended"
	MsgCtxCancel     = "Context cancelled, closing prompt"
	MsgTUIFallback   = "Terminal prompt failed, falling back to plain prompt"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyWindow    = "window_days"
	LogKeyMode      = "mode"
	LogKeyDuration  = "duration_ms"
	LogKeyTotal     = "total"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompBook      = "addressbook"
	CompAssistant = "assistant"
	CompConsole   = "console"
	CompSeed      = "seed"
	CompI18n      = "i18n"
	CompConfig    = "config"
)

// -----------------------------------------------------------------------------
// Session Modes
// -----------------------------------------------------------------------------

const (
	ModeTerminal = "terminal"
	ModePlain    = "plain"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome          = "welcome"
	TKeyHello            = "hello"
	TKeyGoodbye          = "goodbye"
	TKeyExiting          = "exiting"
	TKeyEmptyInput       = "empty_input"
	TKeyInvalidCommand   = "invalid_command"
	TKeyAvailable        = "available_commands"
	TKeyInvalidArgs      = "invalid_arguments"
	TKeyUsage            = "usage"
	TKeyUnexpected       = "unexpected_error"
	TKeyContactAdded     = "contact_added"
	TKeyPhoneAdded       = "phone_added"
	TKeyPhoneExists      = "phone_exists"
	TKeyPhoneUpdated     = "phone_updated"
	TKeyPhoneRemoved     = "phone_removed"
	TKeyNoPhones         = "no_phones"
	TKeyContactDeleted   = "contact_deleted"
	TKeyBookEmpty        = "book_empty"
	TKeyBirthdayAdded    = "birthday_added"
	TKeyBirthdayNotSet   = "birthday_not_set"
	TKeyNoUpcoming       = "no_upcoming"
	TKeyUpcomingHeader   = "upcoming_header"
	TKeyUpcomingLine     = "upcoming_line"
	TKeyColName          = "col_name"
	TKeyColPhones        = "col_phones"
	TKeyColBirthday      = "col_birthday"
	TKeyNotSet           = "not_set"
	TKeyErrInvalidPhone  = "err_invalid_phone"
	TKeyErrInvalidDate   = "err_invalid_date"
	TKeyErrInvalidName   = "err_invalid_name"
	TKeyErrInvalidWindow = "err_invalid_window"
	TKeyErrNoContact     = "err_contact_not_found"
	TKeyErrNoPhone       = "err_phone_not_found"
	TKeyErrDupContact    = "err_contact_exists"
	TKeyErrDupPhone      = "err_phone_exists"
	TKeyHelpHeader       = "help_header"
	TKeyHelpExit         = "help_exit"
	TKeyEventSummary     = "event_summary"
	TKeyEventSummaryZero = "event_summary_birth"
)
