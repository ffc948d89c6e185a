package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/akyairhashvil/mutedesk/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) renderModal() string {
	var body string
	switch state := m.modal.Current().(type) {
	case *MuteCreateState:
		body = m.renderMuteForm(state.Form)
	case *MuteDetailState:
		body = m.renderMuteDetail(state.Mute)
	default:
		return ""
	}
	return frames().Modal.Width(config.ModalWidth).Render(body)
}

func (m DashboardModel) renderMuteForm(form *MuteModal) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Create new mute"))
	b.WriteString("\n\n")

	errs := form.Errors()
	for i, field := range mute.Fields {
		label := fieldLabels[field]
		if field == form.Focused() && !form.Submitting() {
			label = CurrentTheme.Focused.Render("> " + label)
		} else {
			label = CurrentTheme.Dim.Render("  " + label)
		}
		b.WriteString(label + "\n")
		if field == mute.FieldType {
			b.WriteString("  " + renderTypeSelector(form) + "\n")
		} else {
			b.WriteString(CurrentTheme.Input.Render(form.inputs[field].View()) + "\n")
		}
		if hint, ok := fieldHints[field]; ok {
			b.WriteString(CurrentTheme.Dim.Render("  "+hint) + "\n")
		}
		if msg, ok := errs[field]; ok {
			b.WriteString(CurrentTheme.Error.Render("  "+msg) + "\n")
		}
		if i < len(mute.Fields)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderPreview(mute.Preview(form.Draft().Duration, m.now())))
	b.WriteString("\n\n")
	b.WriteString(renderFormButtons(form))
	return b.String()
}

func renderTypeSelector(form *MuteModal) string {
	name := config.MuteOptions[form.typeIndex].Name
	if form.Focused() == mute.FieldType && !form.Submitting() {
		return CurrentTheme.Focused.Render("< " + name + " >")
	}
	return CurrentTheme.Row.Render("  " + name)
}

func renderPreview(p mute.PreviewTimes) string {
	end := lipgloss.NewStyle().Bold(true).Render(p.End)
	switch {
	case p.Permanent:
		end = CurrentTheme.Permanent.Render(p.End)
	case !p.Valid:
		end = CurrentTheme.Error.Render(p.End)
	}
	start := lipgloss.NewStyle().Bold(true).Render("(" + p.Start + ")")
	return fmt.Sprintf("The mute will start now %s\nand will end at %s", start, end)
}

func renderFormButtons(form *MuteModal) string {
	cancel := CurrentTheme.Error.Render("[ Cancel ]")
	submit := CurrentTheme.Highlight.Render("[ Mute player ]")
	if form.Submitting() {
		cancel = CurrentTheme.Dim.Render("[ Cancel ]")
		submit = CurrentTheme.Highlight.Render("[ " + form.spinner.View() + " Mute player ]")
	}
	help := CurrentTheme.Dim.Render("enter submit • esc cancel • tab next field")
	return lipgloss.JoinHorizontal(lipgloss.Top, cancel, "  ", submit) + "\n" + help
}

func (m DashboardModel) renderMuteDetail(mu models.Mute) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(fmt.Sprintf("Mute #%d", mu.ID)))
	b.WriteString("\n\n")
	ends := config.PermanentLabel
	if mu.Ends != nil {
		ends = util.DateTimeString(*mu.Ends)
	}
	rows := [][2]string{
		{"Player", strings.TrimSpace(mu.PlayerName + " " + mu.PlayerSteamID)},
		{"Admin", strings.TrimSpace(mu.AdminName + " " + mu.AdminSteamID)},
		{"Type", muteTypeName(mu.Type)},
		{"Reason", mu.Reason},
		{"Duration", FormatMinutes(mu.Duration)},
		{"Created", util.DateTimeString(mu.Created)},
		{"Ends", ends},
		{"Remaining", FormatRemaining(mu, m.now())},
		{"Status", string(mu.Status)},
	}
	if mu.Comment != "" {
		rows = append(rows, [2]string{"Comment", mu.Comment})
	}
	for _, row := range rows {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("%-10s ", row[0])))
		b.WriteString(CurrentTheme.Row.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render("n mute again • esc close"))
	return b.String()
}
