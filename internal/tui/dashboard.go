package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/akyairhashvil/mutedesk/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the dashboard is wired with.
type Deps struct {
	DB        Database
	Submitter *mute.Submitter
	Refresher mute.Refresher
	ReportDir string
	Log       *logrus.Entry
	Now       func() time.Time
}

type toast struct {
	Text  string
	Error bool
	id    int
}

type DashboardModel struct {
	ctx       context.Context
	db        Database
	submitter *mute.Submitter
	refresher mute.Refresher
	reportDir string
	log       *logrus.Entry
	now       func() time.Time

	mutes       []models.Mute
	cursor      int
	lastRefresh time.Time
	refreshing  bool

	modal    ModalManager
	keys     *HandlerRegistry
	toast    *toast
	toastSeq int

	Message   string
	statusErr bool

	width, height int
}

func NewDashboardModel(ctx context.Context, deps Deps) DashboardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	log := deps.Log
	if log == nil {
		log = util.Component("tui")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	m := DashboardModel{
		ctx:       ctx,
		db:        deps.DB,
		submitter: deps.Submitter,
		refresher: deps.Refresher,
		reportDir: deps.ReportDir,
		log:       log,
		now:       now,
		keys:      defaultKeyRegistry(),
	}
	m.reloadMutes()
	return m
}

// Init loads the cached list immediately and fetches a fresh copy.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

// reloadMutes reads the cached list back from the database.
func (m *DashboardModel) reloadMutes() {
	if m.db == nil {
		return
	}
	mutes, err := m.db.ListMutes(m.ctx)
	if err != nil {
		m.setStatusError("Failed to load mutes: " + err.Error())
		m.log.WithError(err).Error("Failed to load cached mutes")
		return
	}
	m.mutes = mutes
	m.cursor = util.Clamp(m.cursor, 0, max(len(mutes)-1, 0))
	if t, ok := m.db.LastRefresh(m.ctx); ok {
		m.lastRefresh = t
	}
}

// applyTheme switches to name and remembers it for the next start.
func (m *DashboardModel) applyTheme(name string) {
	if !SetTheme(name) {
		m.log.WithField("theme", name).Warn("Unknown theme")
		return
	}
	if m.db == nil {
		return
	}
	if err := m.db.SetSetting(m.ctx, config.ThemeSetting, name); err != nil {
		m.log.WithError(err).Warn("Failed to save theme")
	}
}

// loadMute re-reads one cached row, falling back to fallback when the cache
// no longer has it.
func (m *DashboardModel) loadMute(fallback models.Mute) models.Mute {
	if m.db == nil {
		return fallback
	}
	fresh, err := m.db.GetMute(m.ctx, fallback.ID)
	if err != nil {
		m.log.WithError(err).WithField("mute", fallback.ID).Debug("Showing list row for mute detail")
		return fallback
	}
	return fresh
}

func (m *DashboardModel) setStatusError(msg string) {
	m.Message, m.statusErr = msg, true
}

func (m *DashboardModel) setStatus(msg string) {
	m.Message, m.statusErr = msg, false
}

func (m *DashboardModel) showToast(t toastMsg) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{Text: t.Text, Error: t.Error, id: m.toastSeq}
	return expireToastCmd(m.toastSeq)
}

func (m DashboardModel) selectedMute() (models.Mute, bool) {
	if m.cursor < 0 || m.cursor >= len(m.mutes) {
		return models.Mute{}, false
	}
	return m.mutes[m.cursor], true
}
