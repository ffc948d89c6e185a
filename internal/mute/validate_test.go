package mute

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/mutedesk/internal/config"
)

func validDraft() Draft {
	return Draft{
		PlayerSteamID: "76561198000000000",
		Reason:        "Cheating",
		Duration:      "60",
		Comment:       "",
		Type:          "MUTE",
	}
}

func TestValidateAcceptsValidDraft(t *testing.T) {
	if errs := Validate(validDraft()); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantField string
	}{
		{"short reason", FieldReason, "ab", FieldReason},
		{"blank reason", FieldReason, "   ", FieldReason},
		{"long reason", FieldReason, strings.Repeat("x", 256), FieldReason},
		{"missing player", FieldPlayerSteamID, "", FieldPlayerSteamID},
		{"garbage player", FieldPlayerSteamID, "not-a-steam-id", FieldPlayerSteamID},
		{"missing duration", FieldDuration, "", FieldDuration},
		{"negative duration", FieldDuration, "-5", FieldDuration},
		{"fractional duration", FieldDuration, "1.5", FieldDuration},
		{"huge duration", FieldDuration, "99999999999", FieldDuration},
		{"unknown type", FieldType, "KICK", FieldType},
		{"empty type", FieldType, "", FieldType},
		{"long comment", FieldComment, strings.Repeat("c", 513), FieldComment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(validDraft().With(tt.field, tt.value))
			if errs == nil {
				t.Fatalf("expected validation errors")
			}
			if errs[tt.wantField] == "" {
				t.Fatalf("expected error on %s, got %v", tt.wantField, errs)
			}
			if len(errs) != 1 {
				t.Fatalf("expected only %s to fail, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	errs := Validate(Draft{})
	for _, f := range []string{FieldPlayerSteamID, FieldReason, FieldDuration, FieldType} {
		if errs[f] == "" {
			t.Fatalf("expected error on %s, got %v", f, errs)
		}
	}
	if _, ok := errs[FieldComment]; ok {
		t.Fatalf("comment is optional")
	}
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		field string
		value string
		want  string
	}{
		{FieldPlayerSteamID, "", "Player is required"},
		{FieldPlayerSteamID, "bob", "Enter a Steam64 ID, SteamID or Steam profile URL"},
		{FieldReason, "ab", "Reason must be at least 3 characters"},
		{FieldReason, strings.Repeat("r", 256), "Reason must be at most 255 characters"},
		{FieldDuration, "", "Duration is required"},
		{FieldDuration, "1h", "Duration must be a whole number of minutes (0 for permanent)"},
		{FieldComment, strings.Repeat("c", 513), "Comment must be at most 512 characters"},
		{FieldType, "KICK", "Select a valid mute type"},
	}
	for _, tt := range tests {
		errs := Validate(validDraft().With(tt.field, tt.value))
		if got := errs[tt.field]; got != tt.want {
			t.Fatalf("%s=%q: got %q, want %q", tt.field, tt.value, got, tt.want)
		}
	}
}

func TestValidationTagsMatchConfig(t *testing.T) {
	for _, opt := range config.MuteOptions {
		if errs := Validate(validDraft().With(FieldType, opt.Value)); errs != nil {
			t.Fatalf("mute option %s rejected: %v", opt.Value, errs)
		}
	}
	atMin := strings.Repeat("r", config.MinReasonLength)
	atMax := strings.Repeat("r", config.MaxReasonLength)
	for _, reason := range []string{atMin, "  " + atMin + "  ", atMax} {
		if errs := Validate(validDraft().With(FieldReason, reason)); errs != nil {
			t.Fatalf("reason of %d runes rejected: %v", len(reason), errs)
		}
	}
	if errs := Validate(validDraft().With(FieldReason, "  "+atMin[1:]+"  ")); errs[FieldReason] == "" {
		t.Fatalf("expected trimmed short reason to fail")
	}
	if errs := Validate(validDraft().With(FieldComment, strings.Repeat("ü", config.MaxCommentLength))); errs != nil {
		t.Fatalf("comment limit should count runes: %v", errs)
	}
	digits := strings.Repeat("9", config.MaxDurationDigits)
	if _, err := ParseMinutes(digits); err != nil {
		t.Fatalf("expected %d digits accepted: %v", config.MaxDurationDigits, err)
	}
	if _, err := ParseMinutes(digits + "9"); err == nil {
		t.Fatalf("expected %d digits rejected", config.MaxDurationDigits+1)
	}
}

func TestIsPlayerIdentifier(t *testing.T) {
	valid := []string{
		"76561198000000000",
		"STEAM_0:1:12345678",
		"STEAM_1:0:1",
		"[U:1:24691357]",
		"https://steamcommunity.com/profiles/76561198000000000",
		"https://steamcommunity.com/profiles/76561198000000000/",
		"steamcommunity.com/id/gaben",
		"http://www.steamcommunity.com/id/some_player-1",
		"  76561198000000000  ",
	}
	for _, s := range valid {
		if !IsPlayerIdentifier(s) {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
	invalid := []string{
		"7656119800000000",
		"12345678901234567",
		"STEAM_9:1:1",
		"[U:2:1]",
		"https://example.com/profiles/76561198000000000",
		"https://steamcommunity.com/groups/admins",
	}
	for _, s := range invalid {
		if IsPlayerIdentifier(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	if n, err := ParseMinutes("0"); err != nil || n != 0 {
		t.Fatalf("ParseMinutes(0) = %d, %v", n, err)
	}
	if n, err := ParseMinutes("1440"); err != nil || n != 1440 {
		t.Fatalf("ParseMinutes(1440) = %d, %v", n, err)
	}
	for _, s := range []string{"", " 5", "5m", "-1", "+3"} {
		if _, err := ParseMinutes(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestDraftDefaultsAndAccessors(t *testing.T) {
	d := NewDraft()
	if d.Type != "MUTE" {
		t.Fatalf("expected default type MUTE, got %q", d.Type)
	}
	if d.PlayerSteamID != "" || d.Reason != "" || d.Duration != "" || d.Comment != "" {
		t.Fatalf("expected empty defaults, got %+v", d)
	}
	for _, f := range Fields {
		if got := d.With(f, "v").Get(f); got != "v" {
			t.Fatalf("With/Get round trip failed for %s: %q", f, got)
		}
	}
	if !d.With(FieldDuration, "0").IsPermanent() {
		t.Fatalf("duration 0 should be permanent")
	}
}
