package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading       *lipgloss.Style
	Header        *lipgloss.Style
	RowTitle      *lipgloss.Style
	RowTitleFocus *lipgloss.Style
	RowPending    *lipgloss.Style
	RowEmpty      *lipgloss.Style
	Tile          *lipgloss.Style
	SelectedTile  *lipgloss.Style
	TileTitle     *lipgloss.Style
	TileImage     *lipgloss.Style
	Placeholder   *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style
	Modal         *lipgloss.Style
	ModalTitle    *lipgloss.Style
	ModalImage    *lipgloss.Style
	ModalMeta     *lipgloss.Style
	ModalHint     *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	RowTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	RowTitleFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	RowPending: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	RowEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Tile: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("249")).
			Padding(0, 1),
	),
	SelectedTile: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("33")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1),
	),
	TileTitle: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	TileImage: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Modal: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 2),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	ModalImage: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ModalMeta: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	ModalHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
