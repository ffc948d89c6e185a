package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/akyairhashvil/mutedesk/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func handleQuit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleNewMute(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.modal.Open(&MuteCreateState{Form: NewMuteModal()})
	return m, textinput.Blink, true
}

func handleRefresh(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.refreshing || m.refresher == nil {
		return m, nil, true
	}
	m.refreshing = true
	return m, m.refreshCmd(), true
}

func handleReport(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if len(m.mutes) == 0 {
		m.setStatusError("No mutes to export")
		return m, nil, true
	}
	return m, m.reportCmd(), true
}

func handleOpenDetail(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	selected, ok := m.selectedMute()
	if !ok {
		return m, nil, false
	}
	m.modal.Open(&MuteDetailState{Mute: m.loadMute(selected)})
	return m, nil, true
}

func handleCycleTheme(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.applyTheme(nextThemeName())
	return m, nil, true
}

func handleCursorUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor = util.Clamp(m.cursor-1, 0, max(len(m.mutes)-1, 0))
	return m, nil, true
}

func handleCursorDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor = util.Clamp(m.cursor+1, 0, max(len(m.mutes)-1, 0))
	return m, nil, true
}

func (m DashboardModel) handleModalKey(msg tea.KeyMsg) (DashboardModel, tea.Cmd, bool) {
	switch state := m.modal.Current().(type) {
	case *MuteCreateState:
		return m.handleMuteFormKey(state.Form, msg)
	case *MuteDetailState:
		switch msg.String() {
		case "esc", "enter", "q":
			m.modal.Close()
			return m, nil, true
		case "n":
			form := NewMuteModal()
			form.SetValue(mute.FieldPlayerSteamID, state.Mute.PlayerSteamID)
			form.SetValue(mute.FieldType, state.Mute.Type)
			m.modal.Open(&MuteCreateState{Form: form})
			return m, textinput.Blink, true
		}
	}
	return m, nil, false
}

func (m DashboardModel) handleMuteFormKey(form *MuteModal, msg tea.KeyMsg) (DashboardModel, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		if form.Submitting() {
			return m, nil, true
		}
		m.modal.Close()
		return m, nil, true
	case "enter":
		return m.submitMuteForm(form)
	case "tab", "down":
		form.FocusNext()
		return m, nil, true
	case "shift+tab", "up":
		form.FocusPrev()
		return m, nil, true
	}
	return m, form.HandleKey(msg), true
}

// submitMuteForm validates the whole draft and, when it passes, starts the
// one request. A second enter while busy is dropped.
func (m DashboardModel) submitMuteForm(form *MuteModal) (DashboardModel, tea.Cmd, bool) {
	if form.Submitting() || m.submitter == nil {
		return m, nil, true
	}
	draft := form.Draft()
	if errs := mute.Validate(draft); errs != nil {
		form.SetErrors(errs)
		return m, nil, true
	}
	form.SetErrors(nil)
	return m, tea.Batch(form.SetSubmitting(true), m.submitCmd(draft)), true
}

func (m DashboardModel) handleSubmitResult(msg submitResultMsg) (DashboardModel, tea.Cmd) {
	form := m.modal.MuteForm()
	if form == nil {
		return m, nil
	}
	var validation *mute.ValidationFailure
	switch {
	case msg.err == nil:
		m.modal.Close()
		m.reloadMutes()
	case errors.Is(msg.err, mute.ErrSubmitInFlight):
		// The request that owns the busy state reports separately; release
		// the form so it cannot stay locked.
		m.log.Warn("Submit rejected: another submission is in flight")
		form.SetSubmitting(false)
	case errors.As(msg.err, &validation):
		form.SetSubmitting(false)
		form.SetErrors(validation.Fields)
	default:
		form.SetSubmitting(false)
	}
	return m, nil
}

func (m DashboardModel) handleRefreshResult(msg refreshResultMsg) (DashboardModel, tea.Cmd) {
	m.refreshing = false
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("Refresh failed: %v", msg.err))
		m.log.WithError(msg.err).Warn("Mute list refresh failed")
	}
	m.reloadMutes()
	if state, ok := m.modal.Current().(*MuteDetailState); ok {
		state.Mute = m.loadMute(state.Mute)
	}
	return m, nil
}

func (m DashboardModel) handleReportResult(msg reportResultMsg) (DashboardModel, tea.Cmd) {
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("Report failed: %v", msg.err))
		util.LogError("write mute report", msg.err)
		return m, nil
	}
	m.setStatus("Report saved to " + msg.path)
	return m, nil
}
