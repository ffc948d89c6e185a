package tui

import (
	"time"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/akyairhashvil/mutedesk/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

type TickMsg time.Time

// tickCmd keeps the preview line and remaining times current.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ThemeMsg switches the active theme from outside the update loop.
type ThemeMsg string

type submitResultMsg struct {
	err error
}

type refreshResultMsg struct {
	err error
}

type reportResultMsg struct {
	path string
	err  error
}

func expireToastCmd(id int) tea.Cmd {
	return tea.Tick(config.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// submitCmd runs the submission off the update loop. The request uses the
// program context, so nothing in the modal can cancel it.
func (m DashboardModel) submitCmd(d mute.Draft) tea.Cmd {
	ctx, submitter := m.ctx, m.submitter
	return func() tea.Msg {
		return submitResultMsg{err: submitter.Submit(ctx, d)}
	}
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	if m.refresher == nil {
		return nil
	}
	ctx, refresher := m.ctx, m.refresher
	return func() tea.Msg {
		return refreshResultMsg{err: refresher.Refresh(ctx)}
	}
}

func (m DashboardModel) reportCmd() tea.Cmd {
	mutes, dir, now := m.mutes, m.reportDir, m.now()
	return func() tea.Msg {
		path, err := report.WriteMuteReport(mutes, now, dir)
		return reportResultMsg{path: path, err: err}
	}
}
