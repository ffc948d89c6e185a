package testutil

import (
	"strconv"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/akyairhashvil/mutedesk/internal/util"
)

// DraftBuilder provides fluent API for creating test drafts.
type DraftBuilder struct {
	draft mute.Draft
}

// NewDraft starts from a draft that passes validation.
func NewDraft() *DraftBuilder {
	d := mute.NewDraft()
	d.PlayerSteamID = "76561198000000000"
	d.Reason = "Cheating"
	d.Duration = "60"
	return &DraftBuilder{draft: d}
}

func (b *DraftBuilder) WithPlayer(id string) *DraftBuilder {
	b.draft.PlayerSteamID = id
	return b
}

func (b *DraftBuilder) WithReason(r string) *DraftBuilder {
	b.draft.Reason = r
	return b
}

func (b *DraftBuilder) WithDuration(d string) *DraftBuilder {
	b.draft.Duration = d
	return b
}

func (b *DraftBuilder) WithComment(c string) *DraftBuilder {
	b.draft.Comment = c
	return b
}

func (b *DraftBuilder) WithType(t string) *DraftBuilder {
	b.draft.Type = t
	return b
}

func (b *DraftBuilder) Build() mute.Draft {
	return b.draft
}

// MuteBuilder provides fluent API for creating cached mute records.
type MuteBuilder struct {
	mute models.Mute
}

// NewMute returns an active one-hour mute created at created.
func NewMute(id int64, created time.Time) *MuteBuilder {
	b := &MuteBuilder{
		mute: models.Mute{
			ID:            id,
			PlayerSteamID: "7656119800000000" + strconv.FormatInt(id%10, 10),
			PlayerName:    "player" + strconv.FormatInt(id, 10),
			AdminSteamID:  "76561198111111111",
			AdminName:     "admin",
			Reason:        "Toxicity",
			Type:          "MUTE",
			Created:       created,
			Status:        models.MuteStatusActive,
		},
	}
	return b.WithDuration(60)
}

func (b *MuteBuilder) WithPlayer(steamID, name string) *MuteBuilder {
	b.mute.PlayerSteamID = steamID
	b.mute.PlayerName = name
	return b
}

func (b *MuteBuilder) WithReason(r string) *MuteBuilder {
	b.mute.Reason = r
	return b
}

func (b *MuteBuilder) WithType(t string) *MuteBuilder {
	b.mute.Type = t
	return b
}

func (b *MuteBuilder) WithComment(c string) *MuteBuilder {
	b.mute.Comment = c
	return b
}

// WithDuration sets the length in minutes; zero makes the mute permanent.
func (b *MuteBuilder) WithDuration(minutes int) *MuteBuilder {
	b.mute.Duration = minutes
	if minutes == 0 {
		b.mute.Ends = nil
		return b
	}
	b.mute.Ends = util.Ptr(b.mute.Created.Add(time.Duration(minutes) * time.Minute))
	return b
}

func (b *MuteBuilder) WithStatus(s models.MuteStatus) *MuteBuilder {
	b.mute.Status = s
	return b
}

func (b *MuteBuilder) Build() models.Mute {
	return b.mute
}
