package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorTeal      = lipgloss.Color("#2A9D8F")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTeal).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(2)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	recentStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ███╗   ███╗███████╗██████╗ ██╗     ██╗████████╗
  ████╗ ████║██╔════╝██╔══██╗██║     ██║╚══██╔══╝
  ██╔████╔██║█████╗  ██║  ██║██║     ██║   ██║
  ██║╚██╔╝██║██╔══╝  ██║  ██║██║     ██║   ██║
  ██║ ╚═╝ ██║███████╗██████╔╝███████╗██║   ██║
  ╚═╝     ╚═╝╚══════╝╚═════╝ ╚══════╝╚═╝   ╚═╝
`
