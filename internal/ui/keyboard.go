package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/kali-teeri/internal/ui/model"
)

// handleKey dispatches a key press to the handler of the current screen.
func (m *ScorecardModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch m.phase {
	case model.PhaseSetup:
		return m.handleSetupKey(msg)
	case model.PhaseRound:
		if !m.ensureGame() {
			return nil
		}
		if m.showScores {
			return m.handleScoresKey(msg)
		}
		return m.handleRoundKey(msg)
	case model.PhaseEndGame:
		return m.handleEndGameKey(msg)
	}
	return nil
}

func (m *ScorecardModel) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return tea.Quit
	case "up", "shift+tab":
		return m.setup.MoveFocus(-1)
	case "down", "tab":
		return m.setup.MoveFocus(1)
	case "ctrl+n":
		return m.setup.AddRow()
	case "ctrl+d":
		m.setup.RemoveRow()
		return nil
	case "enter":
		return m.startGame()
	default:
		return m.setup.Update(msg)
	}
}

func (m *ScorecardModel) handleRoundKey(msg tea.KeyMsg) tea.Cmd {
	f := m.round

	switch msg.String() {
	case "up", "shift+tab":
		f.MoveSection(-1)
	case "down", "tab":
		f.MoveSection(1)
	case "left", "h", "-":
		m.adjustSection(-1)
	case "right", "l", "+":
		m.adjustSection(1)
	case " ", "space", "x":
		if f.Section() == model.SectionPartners {
			f.ToggleCursorPartner()
		}
	case "enter":
		m.submitRound()
	case "r":
		f.Reset()
	case "s":
		m.showScores = true
	case "e":
		m.endGame()
	}
	return nil
}

// adjustSection applies a left/right press to the focused round section.
func (m *ScorecardModel) adjustSection(delta int) {
	f := m.round
	switch f.Section() {
	case model.SectionBidder:
		f.CycleBidder(delta)
	case model.SectionBid:
		f.StepBid(delta)
	case model.SectionPartners:
		f.MoveCursor(delta)
	case model.SectionWinners:
		f.ToggleWinners()
	}
}

func (m *ScorecardModel) handleScoresKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "s", "esc":
		m.showScores = false
	}
	return nil
}

func (m *ScorecardModel) handleEndGameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "n", "enter":
		return m.newGame()
	case "esc":
		if m.ensureGame() {
			m.phase = model.PhaseRound
		}
	case "q":
		return tea.Quit
	}
	return nil
}
