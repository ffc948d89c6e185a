package mute

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// State is the submission state of a Submitter.
type State int32

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// ErrSubmitInFlight is returned by Submit while another submission has not
// settled. The attempt is dropped, not queued.
var ErrSubmitInFlight = errors.New("mute submission already in flight")

// Submitter sends drafts one at a time.
type Submitter struct {
	creator   Creator
	refresher Refresher
	notifier  Notifier
	log       *logrus.Entry
	state     atomic.Int32
}

func NewSubmitter(creator Creator, refresher Refresher, notifier Notifier, log *logrus.Entry) *Submitter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Submitter{
		creator:   creator,
		refresher: refresher,
		notifier:  notifier,
		log:       log,
	}
}

// State reports whether a submission is in flight.
func (s *Submitter) State() State {
	return State(s.state.Load())
}

// Busy is shorthand for State() == StateSubmitting.
func (s *Submitter) Busy() bool {
	return s.State() == StateSubmitting
}

// Submit validates d and, if valid and idle, posts it once. On success the
// refresher runs before the success notification. Every failure is
// notified, logged and returned as a Failure; the state returns to idle
// regardless of outcome.
func (s *Submitter) Submit(ctx context.Context, d Draft) error {
	if fields := Validate(d); fields != nil {
		return &ValidationFailure{Fields: fields}
	}
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateSubmitting)) {
		return ErrSubmitInFlight
	}
	defer s.state.Store(int32(StateIdle))

	log := s.log.WithFields(logrus.Fields{
		"event":    "create_mute",
		"player":   d.PlayerSteamID,
		"type":     d.Type,
		"duration": d.Duration,
	})

	if err := s.creator.CreateMute(ctx, d); err != nil {
		failure := Classify(err)
		entry := log.WithError(err).WithField("status", "failure")
		var httpFailure *HTTPFailure
		if errors.As(failure, &httpFailure) {
			entry = entry.WithField("http_status", httpFailure.Status)
		}
		entry.Error("Mute creation failed")
		s.notifier.Error(FailureMessage(failure))
		return failure
	}

	if s.refresher != nil {
		if err := s.refresher.Refresh(ctx); err != nil {
			log.WithError(err).Warn("Mute list refresh failed after create")
		}
	}
	log.WithField("status", "success").Info("Mute created")
	s.notifier.Success(SuccessMessage)
	return nil
}
