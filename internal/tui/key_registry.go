package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Priority    int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// Help renders the described bindings as "key action" pairs. Bindings that
// share a description are merged.
func (r *HandlerRegistry) Help() string {
	var parts []string
	index := make(map[string]int)
	for _, b := range r.bindings {
		if b.Description == "" {
			continue
		}
		if i, ok := index[b.Description]; ok {
			parts[i] = b.Key + "/" + parts[i]
			continue
		}
		index[b.Description] = len(parts)
		parts = append(parts, b.Key+" "+b.Description)
	}
	return strings.Join(parts, " • ")
}

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "n", Handler: handleNewMute, Description: "new mute", Priority: 50})
	r.Register(KeyBinding{Key: "r", Handler: handleRefresh, Description: "refresh", Priority: 40})
	r.Register(KeyBinding{Key: "p", Handler: handleReport, Description: "pdf", Priority: 30})
	r.Register(KeyBinding{Key: "t", Handler: handleCycleTheme, Description: "theme", Priority: 25})
	r.Register(KeyBinding{Key: "enter", Handler: handleOpenDetail, Description: "details", Priority: 20})
	r.Register(KeyBinding{Key: "up", Handler: handleCursorUp, Priority: 10})
	r.Register(KeyBinding{Key: "k", Handler: handleCursorUp, Priority: 10})
	r.Register(KeyBinding{Key: "down", Handler: handleCursorDown, Priority: 10})
	r.Register(KeyBinding{Key: "j", Handler: handleCursorDown, Priority: 10})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: 0})
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 0})
	return r
}
