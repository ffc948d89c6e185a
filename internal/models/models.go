package models

import "time"

// MuteStatus enumerates the lifecycle states the API reports for a mute.
type MuteStatus string

const (
	MuteStatusActive  MuteStatus = "ACTIVE"
	MuteStatusExpired MuteStatus = "EXPIRED"
	MuteStatusUnmuted MuteStatus = "UNMUTED"
)

// Mute is one row of the mute list as served by GET /api/mutes.
type Mute struct {
	ID            int64      `json:"id"`
	PlayerSteamID string     `json:"player_steamid"`
	PlayerName    string     `json:"player_name"`
	AdminSteamID  string     `json:"admin_steamid"`
	AdminName     string     `json:"admin_name"`
	Reason        string     `json:"reason"`
	Duration      int        `json:"duration"` // minutes, 0 = permanent
	Comment       string     `json:"comment"`
	Type          string     `json:"type"`
	Created       time.Time  `json:"created"`
	Ends          *time.Time `json:"ends"` // nil = permanent
	Status        MuteStatus `json:"status"`
}

// IsPermanent reports whether the mute never expires.
func (m Mute) IsPermanent() bool {
	return m.Duration == 0 || m.Ends == nil
}

// IsActive reports whether the mute is still in effect at now.
func (m Mute) IsActive(now time.Time) bool {
	if m.Status != "" && m.Status != MuteStatusActive {
		return false
	}
	if m.IsPermanent() {
		return true
	}
	return now.Before(*m.Ends)
}
