package mute

import "context"

// Creator posts a draft to the admin API.
//
//go:generate mockgen -source=interfaces.go -destination=mock_mute_test.go -package=mute
type Creator interface {
	CreateMute(ctx context.Context, d Draft) error
}

// Refresher re-reads the cached mute list after a change.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Notifier shows transient outcome messages to the operator.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
