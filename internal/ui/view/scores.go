// Package view renders the scorecard screens.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/kali-teeri/internal/score"
	"github.com/palemoky/kali-teeri/internal/ui/common"
)

const tableWidth = 32

// RenderScoresTable renders ranked standings; rank is the 1-based position
// in players, which is expected to be sorted already.
func RenderScoresTable(players []score.Player) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-5s %-*s %8s\n", "Rank", common.NameColumns, "Player", "Score")
	sb.WriteString(strings.Repeat("─", tableWidth) + "\n")

	if len(players) == 0 {
		sb.WriteString(common.MutedStyle.Render("No players yet"))
		return common.BoxStyle.Render(sb.String())
	}

	for i, p := range players {
		line := fmt.Sprintf("%-5s %-*s %8d", fmt.Sprintf("%d.", i+1), common.NameColumns, common.TruncateName(p.Name, common.NameColumns), p.Score)
		if i == 0 && p.Score > 0 {
			line = common.ActiveStyle.Render(line)
		}
		sb.WriteString(line)
		if i < len(players)-1 {
			sb.WriteString("\n")
		}
	}

	return common.BoxStyle.Render(sb.String())
}

// ScoresView renders the standings overlay shown during a game.
func ScoresView(players []score.Player, round, width int) string {
	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("%s Scores after %s", common.ScoresIcon, common.Plural(round-1, "round")))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderScoresTable(players)))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.MutedStyle.Render("Press S or ESC to close")))

	return sb.String()
}
