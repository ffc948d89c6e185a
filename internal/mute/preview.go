package mute

import (
	"time"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/util"
)

// InvalidDurationLabel is shown as the end time when the duration field
// cannot be read as minutes.
const InvalidDurationLabel = "Invalid duration"

// PreviewTimes is the read-only start/end line rendered under the form.
type PreviewTimes struct {
	Start     string
	End       string
	Permanent bool
	Valid     bool
}

// EndTime returns start plus duration minutes. An empty duration counts as
// zero minutes; "0" means permanent.
func EndTime(duration string, start time.Time) (end time.Time, permanent bool, err error) {
	if duration == config.PermanentMinutes {
		return time.Time{}, true, nil
	}
	if duration == "" {
		return start, false, nil
	}
	minutes, err := ParseMinutes(duration)
	if err != nil {
		return time.Time{}, false, err
	}
	return start.Add(time.Duration(minutes) * time.Minute), false, nil
}

// Preview computes the start and end labels for a draft duration at now.
func Preview(duration string, now time.Time) PreviewTimes {
	p := PreviewTimes{Start: util.DateTimeString(now)}
	end, permanent, err := EndTime(duration, now)
	switch {
	case err != nil:
		p.End = InvalidDurationLabel
	case permanent:
		p.End, p.Permanent, p.Valid = config.PermanentLabel, true, true
	default:
		p.End, p.Valid = util.DateTimeString(end), true
	}
	return p
}
