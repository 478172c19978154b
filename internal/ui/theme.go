package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string

	Border        string
	BorderFocus   string
	SelectionBg   string
	SelectionText string
}

var themes = map[string]Theme{
	"ink": {
		Name:          "ink",
		Background:    "#1a1b26",
		Surface:       "#24283b",
		Text:          "#c0caf5",
		Muted:         "#565f89",
		Faint:         "#3b4261",
		Accent:        "#7aa2f7",
		Success:       "#9ece6a",
		Warning:       "#e0af68",
		Danger:        "#f7768e",
		Border:        "#3b4261",
		BorderFocus:   "#7aa2f7",
		SelectionBg:   "#364a82",
		SelectionText: "#c0caf5",
	},
	"paper": {
		Name:          "paper",
		Background:    "#fafafa",
		Surface:       "#eeeeee",
		Text:          "#383a42",
		Muted:         "#a0a1a7",
		Faint:         "#d0d0d0",
		Accent:        "#4078f2",
		Success:       "#50a14f",
		Warning:       "#c18401",
		Danger:        "#e45649",
		Border:        "#d0d0d0",
		BorderFocus:   "#4078f2",
		SelectionBg:   "#d0d8f0",
		SelectionText: "#383a42",
	},
}

// ThemeByName returns the named theme, falling back to "ink".
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["ink"]
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Faint     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
	Selected  lipgloss.Style
	Box       lipgloss.Style
	FocusBox  lipgloss.Style
	Label     lipgloss.Style
	Price     lipgloss.Style
	OldPrice  lipgloss.Style
	Badge     lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	ToastOK   lipgloss.Style
	ToastErr  lipgloss.Style
	ModalBox  lipgloss.Style
	MenuItem  lipgloss.Style
	MenuFocus lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		FocusBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Width(14),
		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		OldPrice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Strikethrough(true),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Background)).
			Padding(0, 1),
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		ToastOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		ToastErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),
		MenuItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),
		MenuFocus: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 2),
	}
}
