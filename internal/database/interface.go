package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/models"
)

// MuteRepository defines the mute cache operations.
type MuteRepository interface {
	ReplaceMutes(ctx context.Context, mutes []models.Mute, refreshedAt time.Time) error
	ListMutes(ctx context.Context) ([]models.Mute, error)
	GetMute(ctx context.Context, id int64) (models.Mute, error)
	LastRefresh(ctx context.Context) (time.Time, bool)
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	MuteRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
