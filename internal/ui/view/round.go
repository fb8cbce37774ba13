package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/kali-teeri/internal/score"
	"github.com/palemoky/kali-teeri/internal/ui/common"
	"github.com/palemoky/kali-teeri/internal/ui/model"
)

// RoundView renders the round entry form.
func RoundView(f *model.RoundForm, round, width int) string {
	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("Round %d", round))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	sections := []string{
		renderSection(f, model.SectionBidder, renderBidder(f)),
		renderSection(f, model.SectionBid, renderBid(f)),
		renderSection(f, model.SectionPartners, renderPartners(f)),
		renderSection(f, model.SectionWinners, renderWinners(f)),
	}
	form := common.BoxStyle.Render(strings.Join(sections, "\n\n"))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
	sb.WriteString("\n")

	if err := f.Err(); err != nil {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.ErrorStyle.Render(err.Error())))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.MutedStyle.Render(roundHints(f, round))))

	return sb.String()
}

func roundHints(f *model.RoundForm, round int) string {
	hints := []string{"↑/↓ section", "←/→ change"}
	if f.Section() == model.SectionPartners {
		hints = append(hints, "space toggle")
	}
	hints = append(hints, "enter next round", "r reset", "s scores")
	if round > 1 && f.CanEndGame() {
		hints = append(hints, "e end game")
	}
	return strings.Join(hints, " · ")
}

func renderSection(f *model.RoundForm, s model.RoundSection, body string) string {
	header := common.SectionStyle.Render(strings.ToUpper(s.String()))
	if f.Section() == s {
		header = common.ActiveStyle.Render(common.CursorIcon + " " + strings.ToUpper(s.String()))
	}
	return header + "\n" + body
}

func renderBidder(f *model.RoundForm) string {
	choices := make([]string, 0, len(f.Players()))
	for _, p := range f.Players() {
		name := common.TruncateName(p.Name, common.NameColumns)
		if p.ID == f.Bidder() {
			choices = append(choices, common.SelectedStyle.Render(name))
		} else {
			choices = append(choices, common.ChoiceStyle.Render(name))
		}
	}
	return strings.Join(choices, " ")
}

func renderBid(f *model.RoundForm) string {
	minus, plus := "[-]", "[+]"
	if f.AtMinBid() {
		minus = common.MutedStyle.Render(minus)
	}
	if f.AtMaxBid() {
		plus = common.MutedStyle.Render(plus)
	}
	return fmt.Sprintf("%s  %s  %s  %s", minus, common.ActiveStyle.Render(fmt.Sprintf("%d", f.Bid())), plus,
		common.MutedStyle.Render(fmt.Sprintf("step %d", f.Policy().Step)))
}

func renderPartners(f *model.RoundForm) string {
	var sb strings.Builder

	counter := fmt.Sprintf("%d/%d", f.PartnerCount(), f.RequiredPartners())
	if f.PartnersValid() {
		counter = common.PartnerStyle.Render(counter)
	} else {
		counter = common.ActiveStyle.Render(counter)
	}
	sb.WriteString(counter + "\n")

	for i, p := range f.Players() {
		cursor := " "
		if f.Section() == model.SectionPartners && i == f.Cursor() {
			cursor = common.CursorIcon
		}
		box := common.EmptyBox
		if f.IsPartner(p.ID) {
			box = common.PartnerStyle.Render(common.CheckedBox)
		}
		line := fmt.Sprintf("%s %s %s", cursor, box, common.TruncateName(p.Name, common.NameColumns))
		if p.ID == f.Bidder() {
			line += " " + common.ActiveStyle.Render(common.BidderIcon+" BIDDER")
		}
		sb.WriteString(line)
		if i < len(f.Players())-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderWinners(f *model.RoundForm) string {
	partners := common.ChoiceStyle.Render("Partners")
	rivals := common.ChoiceStyle.Render("Non-partners")
	if f.Winners() == score.WinnersPartners {
		partners = common.SelectedStyle.Render("Partners")
	} else {
		rivals = common.RivalStyle.Render("Non-partners")
	}
	return partners + " " + rivals
}
