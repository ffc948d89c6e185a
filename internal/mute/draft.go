// Package mute holds the mute draft an operator fills in, its validation
// rules, the end-time preview and the submission state machine that posts
// a draft to the admin API exactly once.
package mute

import "github.com/akyairhashvil/mutedesk/internal/config"

// Field keys, shared by the JSON body and the validation error map.
const (
	FieldPlayerSteamID = "player_steamid"
	FieldReason        = "reason"
	FieldDuration      = "duration"
	FieldComment       = "comment"
	FieldType          = "type"
)

// Fields lists the draft fields in form order.
var Fields = []string{FieldPlayerSteamID, FieldType, FieldReason, FieldDuration, FieldComment}

// Draft is the not-yet-submitted mute request. All values are kept as the
// operator typed them and are sent verbatim. The validate tags mirror the
// limits in internal/config.
type Draft struct {
	PlayerSteamID string `json:"player_steamid" validate:"required,steamid"`
	Reason        string `json:"reason" validate:"trimmin=3,trimmax=255"`
	Duration      string `json:"duration" validate:"required,number,max=9"`
	Comment       string `json:"comment" validate:"max=512"`
	Type          string `json:"type" validate:"required,oneof=MUTE GAG SILENCE"`
}

// NewDraft returns the values the modal opens with.
func NewDraft() Draft {
	return Draft{Type: config.DefaultMuteType}
}

// Get returns the value of the named field.
func (d Draft) Get(field string) string {
	switch field {
	case FieldPlayerSteamID:
		return d.PlayerSteamID
	case FieldReason:
		return d.Reason
	case FieldDuration:
		return d.Duration
	case FieldComment:
		return d.Comment
	case FieldType:
		return d.Type
	}
	return ""
}

// With returns a copy of d with the named field set.
func (d Draft) With(field, value string) Draft {
	switch field {
	case FieldPlayerSteamID:
		d.PlayerSteamID = value
	case FieldReason:
		d.Reason = value
	case FieldDuration:
		d.Duration = value
	case FieldComment:
		d.Comment = value
	case FieldType:
		d.Type = value
	}
	return d
}

// IsPermanent reports whether the draft requests a mute without end.
func (d Draft) IsPermanent() bool {
	return d.Duration == config.PermanentMinutes
}
