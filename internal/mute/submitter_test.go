package mute

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type submitterDeps struct {
	creator   *MockCreator
	refresher *MockRefresher
	notifier  *MockNotifier
	submitter *Submitter
}

func newSubmitterDeps(t *testing.T) submitterDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := submitterDeps{
		creator:   NewMockCreator(ctrl),
		refresher: NewMockRefresher(ctrl),
		notifier:  NewMockNotifier(ctrl),
	}
	d.submitter = NewSubmitter(d.creator, d.refresher, d.notifier, quietLog())
	return d
}

func TestSubmitSuccess(t *testing.T) {
	d := newSubmitterDeps(t)
	draft := validDraft()

	gomock.InOrder(
		d.creator.EXPECT().CreateMute(gomock.Any(), draft).Return(nil).Times(1),
		d.refresher.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1),
		d.notifier.EXPECT().Success(SuccessMessage).Times(1),
	)

	if err := d.submitter.Submit(context.Background(), draft); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if d.submitter.State() != StateIdle {
		t.Fatalf("expected idle after success, got %s", d.submitter.State())
	}
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	d := newSubmitterDeps(t)
	draft := validDraft()
	draft.Reason = "ab"

	err := d.submitter.Submit(context.Background(), draft)
	var vf *ValidationFailure
	if !errors.As(err, &vf) {
		t.Fatalf("expected ValidationFailure, got %v", err)
	}
	if vf.Fields[FieldReason] == "" {
		t.Fatalf("expected reason error, got %v", vf.Fields)
	}
	if d.submitter.Busy() {
		t.Fatalf("validation failure must not leave the submitter busy")
	}
}

func TestSubmitHTTPFailure(t *testing.T) {
	d := newSubmitterDeps(t)
	draft := validDraft()

	d.creator.EXPECT().CreateMute(gomock.Any(), draft).
		Return(&fakeStatusErr{status: 400, body: []byte(`{"message":"Player is already muted"}`)})
	d.refresher.EXPECT().Refresh(gomock.Any()).Times(0)
	d.notifier.EXPECT().Success(gomock.Any()).Times(0)
	d.notifier.EXPECT().Error("Failed to create mute!\nPlayer is already muted").Times(1)

	err := d.submitter.Submit(context.Background(), draft)
	var hf *HTTPFailure
	if !errors.As(err, &hf) || hf.Status != 400 {
		t.Fatalf("expected HTTPFailure 400, got %v", err)
	}
	if d.submitter.State() != StateIdle {
		t.Fatalf("expected idle after failure")
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	d := newSubmitterDeps(t)
	draft := validDraft()

	d.creator.EXPECT().CreateMute(gomock.Any(), draft).Return(errors.New("connection refused"))
	d.notifier.EXPECT().Error(gomock.Any()).Do(func(msg string) {
		if !strings.HasSuffix(msg, "connection refused") {
			t.Errorf("unexpected notification %q", msg)
		}
	})

	err := d.submitter.Submit(context.Background(), draft)
	var uf *UnknownFailure
	if !errors.As(err, &uf) {
		t.Fatalf("expected UnknownFailure, got %v", err)
	}
}

func TestSubmitRefreshErrorStillSucceeds(t *testing.T) {
	d := newSubmitterDeps(t)
	draft := validDraft()

	d.creator.EXPECT().CreateMute(gomock.Any(), draft).Return(nil)
	d.refresher.EXPECT().Refresh(gomock.Any()).Return(errors.New("list offline"))
	d.notifier.EXPECT().Success(SuccessMessage)

	if err := d.submitter.Submit(context.Background(), draft); err != nil {
		t.Fatalf("expected success despite refresh error, got %v", err)
	}
}

func TestSubmitRejectsWhileInFlight(t *testing.T) {
	d := newSubmitterDeps(t)
	draft := validDraft()
	started := make(chan struct{})
	release := make(chan struct{})

	d.creator.EXPECT().CreateMute(gomock.Any(), draft).DoAndReturn(func(ctx context.Context, _ Draft) error {
		close(started)
		<-release
		return nil
	}).Times(1)
	d.refresher.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)
	d.notifier.EXPECT().Success(SuccessMessage).Times(1)

	done := make(chan error, 1)
	go func() { done <- d.submitter.Submit(context.Background(), draft) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatalf("first submission never reached the creator")
	}
	if d.submitter.State() != StateSubmitting {
		t.Fatalf("expected submitting state, got %s", d.submitter.State())
	}
	if err := d.submitter.Submit(context.Background(), draft); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(release)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("first submission failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("first submission did not settle")
	}
	if d.submitter.State() != StateIdle {
		t.Fatalf("expected idle after settle")
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateSubmitting.String() != "submitting" || State(9).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}
