package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Row       lipgloss.Style
	Expired   lipgloss.Style
	Input     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Permanent lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Expired:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Permanent: lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                            // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Expired:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Permanent: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var (
	CurrentTheme     = Themes["default"]
	currentThemeName = "default"
)

// SetTheme activates the named theme and reports whether it exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme, currentThemeName = t, name
	}
	return ok
}

// nextThemeName returns the theme after the current one in name order.
func nextThemeName() string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if name == currentThemeName {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

type frameStyles struct {
	Modal lipgloss.Style
	Toast lipgloss.Style
	List  lipgloss.Style
}

func frames() frameStyles {
	return frameStyles{
		Modal: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(CurrentTheme.Border).Padding(1, 2),
		Toast: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		List:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(CurrentTheme.Border).Padding(0, 1),
	}
}
