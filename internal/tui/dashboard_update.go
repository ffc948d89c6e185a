package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		return m, tickCmd()
	case ThemeMsg:
		m.applyTheme(string(msg))
		return m, nil
	case toastMsg:
		return m, m.showToast(msg)
	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil
	case spinner.TickMsg:
		if form := m.modal.MuteForm(); form != nil {
			return m, form.UpdateSpinner(msg)
		}
		return m, nil
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case refreshResultMsg:
		return m.handleRefreshResult(msg)
	case reportResultMsg:
		return m.handleReportResult(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal.Active() {
			next, cmd, _ := m.handleModalKey(msg)
			return next, cmd
		}
		// Clear transient messages on keypress
		m.Message, m.statusErr = "", false
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}
