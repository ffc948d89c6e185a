package config

import "time"

// Application settings.
const (
	AppName       = "mutedesk"
	DBFileName    = "mutes.db"
	LogFileName   = "mutedesk.log"
	EnvPrefix     = "MUTEDESK"
	ConfigEnvVar  = "MUTEDESK_CONFIG"
	DefaultAPIURL = "http://localhost:3000"
)

// API routes.
const (
	MutesPath = "/api/mutes"
)

// Timing.
const (
	DefaultAPITimeout = 15 * time.Second
	ToastDuration     = 4 * time.Second
)

// Mute draft constraints.
const (
	MinReasonLength  = 3
	MaxReasonLength  = 255
	MaxCommentLength = 512
	DefaultMuteType  = "MUTE"
	PermanentMinutes = "0"
)

// Display formats.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	PermanentLabel = "Permanent"
)

// ThemeSetting is the settings-table key holding the last applied theme.
const ThemeSetting = "ui_theme"

// MuteOption is one entry of the mute type selector.
type MuteOption struct {
	Name  string
	Value string
}

// MuteOptions lists the communication restrictions the API accepts.
var MuteOptions = []MuteOption{
	{Name: "Mute (voice)", Value: "MUTE"},
	{Name: "Gag (text chat)", Value: "GAG"},
	{Name: "Silence (voice + text)", Value: "SILENCE"},
}

// MuteOptionIndex returns the index of value in MuteOptions or -1.
func MuteOptionIndex(value string) int {
	for i, opt := range MuteOptions {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
