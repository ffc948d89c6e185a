package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/models"
)

// Database defines the cache access the TUI requires.
type Database interface {
	ListMutes(ctx context.Context) ([]models.Mute, error)
	GetMute(ctx context.Context, id int64) (models.Mute, error)
	LastRefresh(ctx context.Context) (time.Time, bool)
	SetSetting(ctx context.Context, key, value string) error
}
