// Package ui provides the terminal front end of the scorecard.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/palemoky/kali-teeri/internal/config"
	"github.com/palemoky/kali-teeri/internal/session"
	"github.com/palemoky/kali-teeri/internal/ui/common"
	"github.com/palemoky/kali-teeri/internal/ui/model"
	"github.com/palemoky/kali-teeri/internal/ui/view"
)

// ScorecardModel is the bubbletea program driving one scorecard session.
type ScorecardModel struct {
	session *session.Session
	game    config.GameConfig
	log     *zap.SugaredLogger

	phase      model.GamePhase
	setup      *model.SetupForm
	round      *model.RoundForm
	showScores bool

	width  int
	height int
}

// NewScorecardModel creates the program model. It starts on the setup
// screen, or on the round screen if s already holds a game.
func NewScorecardModel(s *session.Session, game config.GameConfig, log *zap.SugaredLogger) *ScorecardModel {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m := &ScorecardModel{
		session: s,
		game:    game,
		log:     log,
		setup:   model.NewSetupForm(game.InitialPlayers, game.MinPlayers),
	}
	if gs, ok := s.State(); ok {
		m.round = model.NewRoundForm(gs.Players, m.bidPolicy())
		m.phase = model.PhaseRound
	}
	return m
}

func (m *ScorecardModel) bidPolicy() model.BidPolicy {
	return model.BidPolicy{
		Default: m.game.DefaultBid,
		Step:    m.game.BidStep,
		Min:     m.game.MinBid,
		Max:     m.game.MaxBid,
	}
}

func (m *ScorecardModel) Phase() model.GamePhase  { return m.phase }
func (m *ScorecardModel) ShowingScores() bool     { return m.showScores }
func (m *ScorecardModel) Setup() *model.SetupForm { return m.setup }
func (m *ScorecardModel) Round() *model.RoundForm { return m.round }

func (m *ScorecardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ScorecardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.phase == model.PhaseSetup {
		return m, m.setup.Update(msg)
	}
	return m, nil
}

func (m *ScorecardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.phase {
	case model.PhaseSetup:
		content = view.SetupView(m.setup, m.width)
	case model.PhaseRound:
		gs, _ := m.session.State()
		if m.showScores {
			content = view.ScoresView(m.session.SortedPlayers(), gs.CurrentRound, m.width)
		} else {
			content = view.RoundView(m.round, gs.CurrentRound, m.width)
		}
	case model.PhaseEndGame:
		content = view.EndGameView(m.session.SortedPlayers(), m.session.RoundsPlayed(), m.width)
	}

	return common.DocStyle.Render(content)
}

// startGame begins a game with the names entered on the setup screen.
func (m *ScorecardModel) startGame() tea.Cmd {
	names, err := m.setup.Names()
	if err != nil {
		m.log.Debugw("setup rejected", "error", err)
		return nil
	}

	m.session.InitGame(names)
	gs, _ := m.session.State()
	m.round = model.NewRoundForm(gs.Players, m.bidPolicy())
	m.showScores = false
	m.phase = model.PhaseRound
	return nil
}

// submitRound validates the round form and records it.
func (m *ScorecardModel) submitRound() {
	round, err := m.round.Submit()
	if err != nil {
		m.log.Debugw("round rejected", "game_id", m.session.ID(), "error", err)
		return
	}
	m.session.AddRound(round)
	m.round.Reset()
}

// endGame moves to the results screen once at least one round is recorded.
func (m *ScorecardModel) endGame() {
	if m.session.RoundsPlayed() == 0 || !m.round.CanEndGame() {
		return
	}
	m.showScores = false
	m.phase = model.PhaseEndGame
}

// newGame discards the session and returns to setup.
func (m *ScorecardModel) newGame() tea.Cmd {
	m.session.ResetGame()
	m.round = nil
	m.showScores = false
	m.setup = model.NewSetupForm(m.game.InitialPlayers, m.game.MinPlayers)
	m.phase = model.PhaseSetup
	return textinput.Blink
}

// ensureGame sends the user back to setup if the session lost its game.
func (m *ScorecardModel) ensureGame() bool {
	if m.session.Phase() == session.PhaseInProgress && m.round != nil {
		return true
	}
	m.round = nil
	m.showScores = false
	m.phase = model.PhaseSetup
	return false
}
