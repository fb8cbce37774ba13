package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/kali-teeri/internal/ui/common"
	"github.com/palemoky/kali-teeri/internal/ui/model"
)

// SetupView renders the player entry screen.
func SetupView(f *model.SetupForm, width int) string {
	var sb strings.Builder

	title := common.TitleStyle("🃏 Kali Teeri Scorecard")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var rows strings.Builder
	rows.WriteString(common.SectionStyle.Render("PLAYERS") + "\n")
	for i, in := range f.Inputs() {
		cursor := " "
		if i == f.Focus() {
			cursor = common.CursorIcon
		}
		fmt.Fprintf(&rows, "%s %d. %s", cursor, i+1, in.View())
		if i < f.Rows()-1 {
			rows.WriteString("\n")
		}
	}
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.BoxStyle.Render(rows.String())))
	sb.WriteString("\n")

	if err := f.Err(); err != nil {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.ErrorStyle.Render(err.Error())))
		sb.WriteString("\n")
	}

	hints := []string{"↑/↓ move", "ctrl+n add player"}
	if f.CanRemove() {
		hints = append(hints, "ctrl+d remove player")
	}
	hints = append(hints, "enter start game", "esc quit")
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.MutedStyle.Render(strings.Join(hints, " · "))))

	return sb.String()
}
