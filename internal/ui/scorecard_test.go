package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/kali-teeri/internal/config"
	"github.com/palemoky/kali-teeri/internal/score"
	"github.com/palemoky/kali-teeri/internal/session"
	"github.com/palemoky/kali-teeri/internal/ui/model"
)

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(m *ScorecardModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func newTestModel(t *testing.T) (*ScorecardModel, *session.Session) {
	t.Helper()
	s := session.New(nil)
	m := NewScorecardModel(s, config.Default().Game, nil)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, s
}

// startFourPlayerGame types four names and submits the setup form.
func startFourPlayerGame(t *testing.T, m *ScorecardModel) {
	t.Helper()
	for i, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		if i > 0 {
			send(m, key(tea.KeyDown))
		}
		send(m, runes(name))
	}
	send(m, key(tea.KeyEnter))
	require.Equal(t, model.PhaseRound, m.Phase())
}

func TestNewScorecardModel_StartsOnSetup(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	assert.Equal(t, model.PhaseSetup, m.Phase())
	assert.Equal(t, 4, m.Setup().Rows())
	assert.Nil(t, m.Round())
	assert.Contains(t, m.View(), "Kali Teeri Scorecard")
}

func TestView_LoadingBeforeSize(t *testing.T) {
	t.Parallel()

	m := NewScorecardModel(session.New(nil), config.Default().Game, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestSetup_RejectsTooFewNames(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	send(m, runes("Alice"), key(tea.KeyDown), runes("Bob"), key(tea.KeyEnter))

	assert.Equal(t, model.PhaseSetup, m.Phase())
	assert.Equal(t, session.PhaseNoGame, s.Phase())
	assert.Contains(t, m.View(), "enter at least 3 player names")
}

func TestSetup_AddRemoveRows(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, key(tea.KeyCtrlN))
	assert.Equal(t, 5, m.Setup().Rows())

	send(m, key(tea.KeyCtrlD), key(tea.KeyCtrlD))
	assert.Equal(t, 3, m.Setup().Rows())
}

func TestSetup_EscQuits(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	cmd := send(m, key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRound_StartGame(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	startFourPlayerGame(t, m)

	gs, ok := s.State()
	require.True(t, ok)
	assert.Equal(t, "Alice", gs.Players[0].Name)
	assert.Equal(t, "Dave", gs.Players[3].Name)
	assert.Contains(t, m.View(), "Round 1")
}

func TestRound_SubmitScoresRound(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	startFourPlayerGame(t, m)

	// bidder Alice, partner Bob, bid 160, partners win
	send(m,
		key(tea.KeyDown), key(tea.KeyDown),
		key(tea.KeyRight), key(tea.KeySpace),
		key(tea.KeyEnter),
	)

	gs, _ := s.State()
	assert.Len(t, gs.Rounds, 1)
	assert.Equal(t, 2, gs.CurrentRound)
	assert.Equal(t, 320, gs.Players[0].Score)
	assert.Equal(t, 160, gs.Players[1].Score)
	assert.True(t, m.Round().Pristine(), "form resets after a round")
	assert.Contains(t, m.View(), "Round 2")
}

func TestRound_InvalidRoundNotRecorded(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	startFourPlayerGame(t, m)

	send(m, key(tea.KeyEnter))

	assert.Zero(t, s.RoundsPlayed())
	assert.Contains(t, m.View(), "select exactly 2 partners")
}

func TestRound_NonPartnersWin(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	startFourPlayerGame(t, m)

	// bidder Bob, bid 165, partner Carol, non-partners win
	send(m,
		key(tea.KeyRight),
		key(tea.KeyDown), key(tea.KeyRight),
		key(tea.KeyDown), key(tea.KeyRight), key(tea.KeyRight), runes("x"),
		key(tea.KeyDown), key(tea.KeyLeft),
		key(tea.KeyEnter),
	)

	gs, _ := s.State()
	require.Len(t, gs.Rounds, 1)
	assert.Equal(t, score.Round{
		BidderID: "player-2",
		Bid:      165,
		Partners: []score.PlayerID{"player-2", "player-3"},
		Winners:  score.WinnersNonPartners,
	}, gs.Rounds[0])
	assert.Equal(t, []int{165, 0, 0, 165}, []int{gs.Players[0].Score, gs.Players[1].Score, gs.Players[2].Score, gs.Players[3].Score})
}

func TestRound_ResetDiscardsEntry(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	startFourPlayerGame(t, m)

	// bid 165, partners Alice, Bob and Carol
	send(m,
		key(tea.KeyDown), key(tea.KeyRight),
		key(tea.KeyDown), key(tea.KeyRight), key(tea.KeySpace),
		key(tea.KeyRight), key(tea.KeySpace),
	)
	require.Equal(t, 165, m.Round().Bid())
	require.False(t, m.Round().Pristine())

	send(m, runes("r"))

	f := m.Round()
	assert.True(t, f.Pristine())
	assert.Equal(t, 160, f.Bid())
	assert.Equal(t, score.PlayerID("player-1"), f.Bidder())
	assert.Equal(t, 1, f.PartnerCount())
	assert.Equal(t, model.SectionBidder, f.Section())
	assert.Equal(t, model.PhaseRound, m.Phase())

	gs, _ := s.State()
	assert.Empty(t, gs.Rounds, "reset records nothing")
}

func TestRound_ResetAllowsEndGame(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	startFourPlayerGame(t, m)

	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyRight), key(tea.KeySpace), key(tea.KeyEnter))

	// three partners in a four-player game
	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyRight), key(tea.KeySpace), key(tea.KeyRight), key(tea.KeySpace))
	send(m, runes("e"))
	require.Equal(t, model.PhaseRound, m.Phase())

	send(m, runes("r"), runes("e"))
	assert.Equal(t, model.PhaseEndGame, m.Phase())
}

func TestRound_ScoresOverlay(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	startFourPlayerGame(t, m)

	send(m, runes("s"))
	assert.True(t, m.ShowingScores())
	assert.Contains(t, m.View(), "Scores after 0 rounds")

	send(m, key(tea.KeyEsc))
	assert.False(t, m.ShowingScores())
}

func TestRound_EndGameNeedsARound(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	startFourPlayerGame(t, m)

	send(m, runes("e"))
	assert.Equal(t, model.PhaseRound, m.Phase())

	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyRight), key(tea.KeySpace), key(tea.KeyEnter))
	send(m, runes("e"))

	assert.Equal(t, model.PhaseEndGame, m.Phase())
	view := m.View()
	assert.Contains(t, view, "Alice wins with 320 points")
	assert.Contains(t, view, "1 round played")
}

func TestEndGame_PlayAgain(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	startFourPlayerGame(t, m)
	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyRight), key(tea.KeySpace), key(tea.KeyEnter), runes("e"))
	require.Equal(t, model.PhaseEndGame, m.Phase())

	send(m, runes("n"))

	assert.Equal(t, model.PhaseSetup, m.Phase())
	assert.Equal(t, session.PhaseNoGame, s.Phase())
	assert.Empty(t, s.SortedPlayers())
	assert.Empty(t, m.Setup().Inputs()[0].Value())
}

func TestEndGame_BackToRound(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	startFourPlayerGame(t, m)
	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyRight), key(tea.KeySpace), key(tea.KeyEnter), runes("e"))

	send(m, key(tea.KeyEsc))
	assert.Equal(t, model.PhaseRound, m.Phase())
}

func TestRound_SessionResetElsewhere(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	startFourPlayerGame(t, m)

	s.ResetGame()
	send(m, key(tea.KeyEnter))

	assert.Equal(t, model.PhaseSetup, m.Phase())
	assert.Nil(t, m.Round())
}

func TestNewScorecardModel_ResumesExistingGame(t *testing.T) {
	t.Parallel()

	s := session.New(nil)
	s.InitGame([]string{"Alice", "Bob", "Carol"})
	m := NewScorecardModel(s, config.Default().Game, nil)

	assert.Equal(t, model.PhaseRound, m.Phase())
	require.NotNil(t, m.Round())
	assert.Len(t, m.Round().Players(), 3)
}

func TestCtrlCQuits(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	cmd := send(m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
