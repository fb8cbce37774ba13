package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/kali-teeri/internal/score"
	"github.com/palemoky/kali-teeri/internal/ui/common"
)

// EndGameView renders the final standings.
func EndGameView(players []score.Player, roundsPlayed, width int) string {
	var sb strings.Builder

	title := common.TitleStyle("Results")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	if len(players) > 0 {
		leader := players[0]
		callout := fmt.Sprintf("%s %s wins with %d points", common.LeaderIcon, leader.Name, leader.Score)
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.ActiveStyle.Render(callout)))
		sb.WriteString("\n\n")
	}

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.SectionStyle.Render("FINAL STANDINGS")))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderScoresTable(players)))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.MutedStyle.Render(common.Plural(roundsPlayed, "round")+" played")))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.MutedStyle.Render("n play again · esc back · q quit")))

	return sb.String()
}
