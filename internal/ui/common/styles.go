// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	LeaderIcon  = "🏆"
	BidderIcon  = "★"
	CheckedBox  = "[x]"
	EmptyBox    = "[ ]"
	CursorIcon  = "▸"
	ScoresIcon  = "📊"
	NameColumns = 16
)

// Lipgloss Styles
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	SectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	ActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true).Padding(0, 1)
	ChoiceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	PartnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	RivalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("204")).Bold(true).Padding(0, 1)
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
