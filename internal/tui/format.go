package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/models"
)

// FormatMinutes renders a mute length in minutes (e.g. "1d 2h", "45m").
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return config.PermanentLabel
	}
	d := time.Duration(minutes) * time.Minute
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := minutes % 60
	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatRemaining describes how long a mute still runs at now.
func FormatRemaining(m models.Mute, now time.Time) string {
	if m.IsPermanent() {
		return config.PermanentLabel
	}
	remaining := m.Ends.Sub(now)
	if remaining <= 0 || !m.IsActive(now) {
		return "expired"
	}
	if remaining < time.Minute {
		return fmt.Sprintf("%ds left", int(remaining.Seconds()))
	}
	return FormatMinutes(int(remaining.Minutes())) + " left"
}

// muteTypeName maps an option value to its selector label.
func muteTypeName(value string) string {
	if idx := config.MuteOptionIndex(value); idx >= 0 {
		return config.MuteOptions[idx].Name
	}
	return value
}
