package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/swipecell/internal/model"
)

var (
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	errorColor   = lipgloss.Color("160")
	leftColor    = lipgloss.Color("33")
	defaultColor = lipgloss.Color("240")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	flashStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	senderStyle   = lipgloss.NewStyle()
	unreadStyle   = lipgloss.NewStyle().Bold(true)
	previewStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedColor = lipgloss.Color("237")

	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
)

// buttonStyleFor colors a strip button the way the graphical strip does
func buttonStyleFor(action *model.Action, o model.Orientation) lipgloss.Style {
	switch {
	case action.Style == model.ActionStyleDestructive:
		return buttonStyle.Background(errorColor)
	case o == model.OrientationLeft:
		return buttonStyle.Background(leftColor)
	default:
		return buttonStyle.Background(defaultColor)
	}
}
