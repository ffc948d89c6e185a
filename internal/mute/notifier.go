package mute

import "github.com/sirupsen/logrus"

// Notification texts.
const (
	SuccessMessage = "Successfully muted player!"
	FailurePrefix  = "Failed to create mute!"
)

// FailureMessage is the notification text for a failed submission.
func FailureMessage(f Failure) string {
	return FailurePrefix + "\n" + f.Display()
}

// LogNotifier reports outcomes through the logger. It is used when no
// interactive surface is attached.
type LogNotifier struct {
	Log *logrus.Entry
}

func (n LogNotifier) Success(msg string) {
	n.Log.WithField("notification", "success").Info(msg)
}

func (n LogNotifier) Error(msg string) {
	n.Log.WithField("notification", "error").Warn(msg)
}
