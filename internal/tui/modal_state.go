package tui

import "github.com/akyairhashvil/mutedesk/internal/models"

type ModalType int

const (
	ModalNone ModalType = iota
	ModalMuteCreate
	ModalMuteDetail
)

type ModalState interface {
	Type() ModalType
}

type MuteCreateState struct {
	Form *MuteModal
}

func (s *MuteCreateState) Type() ModalType { return ModalMuteCreate }

type MuteDetailState struct {
	Mute models.Mute
}

func (s *MuteDetailState) Type() ModalType { return ModalMuteDetail }

// ModalManager tracks the single open modal.
type ModalManager struct {
	current ModalState
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) Current() ModalState {
	return m.current
}

func (m *ModalManager) Is(t ModalType) bool {
	if m.current == nil {
		return t == ModalNone
	}
	return m.current.Type() == t
}

func (m *ModalManager) Active() bool {
	return m.current != nil
}

// MuteForm returns the create form when that modal is open.
func (m *ModalManager) MuteForm() *MuteModal {
	if s, ok := m.current.(*MuteCreateState); ok {
		return s.Form
	}
	return nil
}
