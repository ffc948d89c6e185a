package tui

import (
	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/akyairhashvil/mutedesk/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var fieldLabels = map[string]string{
	mute.FieldPlayerSteamID: "Player Steam64 / SteamId / Profile URL",
	mute.FieldType:          "Type",
	mute.FieldReason:        "Reason (min 3 characters)",
	mute.FieldDuration:      "Duration in minutes",
	mute.FieldComment:       "Comment (optional)",
}

var fieldHints = map[string]string{
	mute.FieldDuration: "0 for permanent",
}

// MuteModal is the create-mute form. Values live in the text inputs and the
// type selector; errors are only set by a submit attempt.
type MuteModal struct {
	inputs     map[string]*textinput.Model
	typeIndex  int
	focus      int
	errors     mute.FieldErrors
	submitting bool
	spinner    spinner.Model
}

func NewMuteModal() *MuteModal {
	draft := mute.NewDraft()
	mm := &MuteModal{
		inputs:    make(map[string]*textinput.Model),
		typeIndex: util.Clamp(config.MuteOptionIndex(draft.Type), 0, len(config.MuteOptions)-1),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	placeholders := map[string]string{
		mute.FieldPlayerSteamID: "7656XXXXXX",
		mute.FieldReason:        "Cheating / Griefing / Toxicity / etc.",
		mute.FieldDuration:      "for example, 60",
	}
	limits := map[string]int{
		mute.FieldPlayerSteamID: config.MaxSteamIDInputLength,
		mute.FieldReason:        config.MaxReasonLength,
		mute.FieldDuration:      config.MaxDurationDigits,
		mute.FieldComment:       config.MaxCommentLength,
	}
	for _, field := range mute.Fields {
		if field == mute.FieldType {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = placeholders[field]
		ti.CharLimit = limits[field]
		ti.Width = config.InputWidth
		ti.Prompt = ""
		ti.SetValue(draft.Get(field))
		mm.inputs[field] = &ti
	}
	mm.inputs[mute.FieldPlayerSteamID].Focus()
	return mm
}

// Draft returns the values currently entered.
func (mm *MuteModal) Draft() mute.Draft {
	d := mute.NewDraft()
	for field, in := range mm.inputs {
		d = d.With(field, in.Value())
	}
	return d.With(mute.FieldType, config.MuteOptions[mm.typeIndex].Value)
}

func (mm *MuteModal) Focused() string {
	return mute.Fields[mm.focus]
}

func (mm *MuteModal) Errors() mute.FieldErrors {
	return mm.errors
}

func (mm *MuteModal) SetErrors(errs mute.FieldErrors) {
	mm.errors = errs
}

func (mm *MuteModal) Submitting() bool {
	return mm.submitting
}

// SetSubmitting toggles the busy state. Inputs are blurred while a request
// is outstanding so no keystroke reaches them.
func (mm *MuteModal) SetSubmitting(on bool) tea.Cmd {
	mm.submitting = on
	if on {
		for _, in := range mm.inputs {
			in.Blur()
		}
		return mm.spinner.Tick
	}
	mm.setFocus(mm.focus)
	return nil
}

// FocusNext and FocusPrev move focus between fields. Focus is frozen while
// submitting so no input regains its cursor.
func (mm *MuteModal) FocusNext() {
	if mm.submitting {
		return
	}
	mm.setFocus((mm.focus + 1) % len(mute.Fields))
}

func (mm *MuteModal) FocusPrev() {
	if mm.submitting {
		return
	}
	mm.setFocus((mm.focus - 1 + len(mute.Fields)) % len(mute.Fields))
}

func (mm *MuteModal) setFocus(idx int) {
	mm.focus = idx
	for field, in := range mm.inputs {
		if field == mute.Fields[idx] {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// CycleType moves the type selector. The selection wraps and is never empty.
func (mm *MuteModal) CycleType(delta int) {
	n := len(config.MuteOptions)
	mm.typeIndex = ((mm.typeIndex+delta)%n + n) % n
	mm.clearError(mute.FieldType)
}

// HandleKey routes an editing key to the focused field.
func (mm *MuteModal) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if mm.submitting {
		return nil
	}
	field := mm.Focused()
	if field == mute.FieldType {
		switch msg.String() {
		case "left", "h":
			mm.CycleType(-1)
		case "right", "l", " ":
			mm.CycleType(1)
		}
		return nil
	}
	in := mm.inputs[field]
	before := in.Value()
	next, cmd := in.Update(msg)
	*in = next
	if in.Value() != before {
		mm.clearError(field)
	}
	return cmd
}

// UpdateSpinner advances the busy indicator while submitting.
func (mm *MuteModal) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !mm.submitting {
		return nil
	}
	var cmd tea.Cmd
	mm.spinner, cmd = mm.spinner.Update(msg)
	return cmd
}

func (mm *MuteModal) clearError(field string) {
	if mm.errors == nil {
		return
	}
	delete(mm.errors, field)
	if len(mm.errors) == 0 {
		mm.errors = nil
	}
}

// SetValue is used by tests and by prefilling from a selected mute.
func (mm *MuteModal) SetValue(field, value string) {
	if field == mute.FieldType {
		if idx := config.MuteOptionIndex(value); idx >= 0 {
			mm.typeIndex = idx
		}
		return
	}
	if in, ok := mm.inputs[field]; ok {
		in.SetValue(value)
	}
}
