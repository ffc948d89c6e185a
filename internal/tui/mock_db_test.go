package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type MockDB struct {
	mutes       []models.Mute
	listErr     error
	lastRefresh time.Time
	settings    map[string]string
	gets        []int64
}

func (d *MockDB) ListMutes(ctx context.Context) ([]models.Mute, error) {
	return d.mutes, d.listErr
}

func (d *MockDB) GetMute(ctx context.Context, id int64) (models.Mute, error) {
	d.gets = append(d.gets, id)
	for _, m := range d.mutes {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Mute{}, errors.New("not found")
}

func (d *MockDB) LastRefresh(ctx context.Context) (time.Time, bool) {
	return d.lastRefresh, !d.lastRefresh.IsZero()
}

func (d *MockDB) SetSetting(ctx context.Context, key, value string) error {
	if d.settings == nil {
		d.settings = make(map[string]string)
	}
	d.settings[key] = value
	return nil
}

type fakeCreator struct {
	mu     sync.Mutex
	drafts []mute.Draft
	err    error
	block  chan struct{}
	called chan struct{}
}

func (c *fakeCreator) CreateMute(ctx context.Context, d mute.Draft) error {
	c.mu.Lock()
	c.drafts = append(c.drafts, d)
	c.mu.Unlock()
	if c.called != nil {
		c.called <- struct{}{}
	}
	if c.block != nil {
		<-c.block
	}
	return c.err
}

func (c *fakeCreator) Drafts() []mute.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]mute.Draft(nil), c.drafts...)
}

type fakeRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
	db    *MockDB
	after []models.Mute
}

func (r *fakeRefresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.db != nil && r.after != nil {
		r.db.mutes = r.after
		r.db.lastRefresh = fixedNow
	}
	return r.err
}

func (r *fakeRefresher) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	n.successes = append(n.successes, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	n.errors = append(n.errors, msg)
	n.mu.Unlock()
}

type testHarness struct {
	db        *MockDB
	creator   *fakeCreator
	refresher *fakeRefresher
	notifier  *recordingNotifier
}

func setupTestDashboard(t *testing.T) (DashboardModel, *testHarness) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	h := &testHarness{
		db:        &MockDB{},
		creator:   &fakeCreator{},
		notifier:  &recordingNotifier{},
		refresher: &fakeRefresher{},
	}
	h.refresher.db = h.db
	log := logrus.NewEntry(logger)
	m := NewDashboardModel(context.Background(), Deps{
		DB:        h.db,
		Submitter: mute.NewSubmitter(h.creator, h.refresher, h.notifier, log),
		Refresher: h.refresher,
		ReportDir: t.TempDir(),
		Log:       log,
		Now:       func() time.Time { return fixedNow },
	})
	return m, h
}

// runCmd executes cmd and any batched children, returning every message
// produced. Only use it on commands that do not sleep.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func update(t *testing.T, m DashboardModel, msg tea.Msg) (DashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DashboardModel)
	if !ok {
		t.Fatalf("expected DashboardModel, got %T", next)
	}
	return dm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(t *testing.T, m DashboardModel, s string) DashboardModel {
	t.Helper()
	m, _ = update(t, m, keyRunes(s))
	return m
}

// fillForm opens the create modal and types d field by field.
func fillForm(t *testing.T, m DashboardModel, d mute.Draft) DashboardModel {
	t.Helper()
	m, _ = update(t, m, keyRunes("n"))
	form := m.modal.MuteForm()
	if form == nil {
		t.Fatalf("expected mute form to be open")
	}
	for _, field := range mute.Fields {
		if field == mute.FieldType {
			form.SetValue(field, d.Type)
		} else if v := d.Get(field); v != "" {
			m = typeInto(t, m, v)
		}
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
