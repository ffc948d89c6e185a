package util

import (
	"time"

	"github.com/akyairhashvil/mutedesk/internal/config"
)

// DateTimeString formats t in local time the way the console displays
// timestamps. A zero t formats the current time.
func DateTimeString(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Local().Format(config.DateTimeLayout)
}
