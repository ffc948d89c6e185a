package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m DashboardModel) View() string {
	if m.modal.Active() {
		content := m.renderModal()
		if t := m.renderToast(); t != "" {
			content = lipgloss.JoinVertical(lipgloss.Center, content, t)
		}
		if m.width == 0 || m.height == 0 {
			return content
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	sections := []string{m.renderHeader(), m.renderMuteList(), m.renderFooter()}
	if t := m.renderToast(); t != "" {
		sections = append(sections, t)
	}
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) renderHeader() string {
	title := CurrentTheme.Header.Render(strings.ToUpper(config.AppName)) + " " + CurrentTheme.Dim.Render(versionLabel())
	refreshed := "never refreshed"
	if !m.lastRefresh.IsZero() {
		refreshed = "refreshed " + util.DateTimeString(m.lastRefresh)
	}
	if m.refreshing {
		refreshed += " (refreshing...)"
	}
	active := 0
	now := m.now()
	for _, mu := range m.mutes {
		if mu.IsActive(now) {
			active++
		}
	}
	stats := fmt.Sprintf("%d mutes, %d active • %s", len(m.mutes), active, refreshed)
	return title + "\n" + CurrentTheme.Dim.Render(stats)
}

func (m DashboardModel) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

type listColumn struct {
	title string
	width int
	value func(models.Mute) string
}

func (m DashboardModel) listColumns() []listColumn {
	now := m.now()
	cols := []listColumn{
		{"Player", 22, func(mu models.Mute) string {
			if mu.PlayerName != "" {
				return mu.PlayerName
			}
			return mu.PlayerSteamID
		}},
		{"Type", 8, func(mu models.Mute) string { return mu.Type }},
		{"Remaining", 12, func(mu models.Mute) string { return FormatRemaining(mu, now) }},
	}
	if m.compact() {
		return cols
	}
	return append(cols,
		listColumn{"Reason", 24, func(mu models.Mute) string { return mu.Reason }},
		listColumn{"Admin", 16, func(mu models.Mute) string { return mu.AdminName }},
	)
}

func (m DashboardModel) renderMuteList() string {
	if len(m.mutes) == 0 {
		return frames().List.Render(CurrentTheme.Dim.Render("No mutes cached. Press r to refresh or n to create one."))
	}
	cols := m.listColumns()
	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = cell(c.title, c.width)
	}
	b.WriteString(CurrentTheme.Header.Render(strings.Join(header, " ")))

	start, end := visibleWindow(m.cursor, len(m.mutes), config.MaxVisibleMutes)
	now := m.now()
	for i := start; i < end; i++ {
		mu := m.mutes[i]
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = cell(c.value(mu), c.width)
		}
		line := strings.Join(row, " ")
		style := CurrentTheme.Row
		if !mu.IsActive(now) {
			style = CurrentTheme.Expired
		}
		if i == m.cursor {
			line = CurrentTheme.Focused.Render("> " + line)
		} else {
			line = style.Render("  " + line)
		}
		b.WriteString("\n" + line)
	}
	if end-start < len(m.mutes) {
		b.WriteString("\n" + CurrentTheme.Dim.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(m.mutes))))
	}
	return frames().List.Render(b.String())
}

// visibleWindow returns the [start, end) slice of rows that keeps cursor in
// view.
func visibleWindow(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := util.Clamp(cursor-size/2, 0, total-size)
	return start, start + size
}

func cell(s string, width int) string {
	s = ansi.Truncate(strings.ReplaceAll(s, "\n", " "), width, config.TruncationSuffix)
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (m DashboardModel) renderFooter() string {
	footer := CurrentTheme.Dim.Render(m.keys.Help())
	if m.Message != "" {
		style := CurrentTheme.Success
		if m.statusErr {
			style = CurrentTheme.Error
		}
		footer += "\n" + style.Render(m.Message)
	}
	return footer
}

func (m DashboardModel) renderToast() string {
	if m.toast == nil {
		return ""
	}
	style := frames().Toast.BorderForeground(CurrentTheme.Success.GetForeground())
	text := CurrentTheme.Success.Render(m.toast.Text)
	if m.toast.Error {
		style = frames().Toast.BorderForeground(CurrentTheme.Error.GetForeground())
		text = CurrentTheme.Error.Render(m.toast.Text)
	}
	return style.Render(text)
}
