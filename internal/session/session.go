// Package session holds the single in-memory scorecard of the game being
// played and the transitions that change it.
package session

import (
	"cmp"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/palemoky/kali-teeri/internal/score"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNoGame Phase = iota
	PhaseInProgress
)

func (p Phase) String() string {
	if p == PhaseInProgress {
		return "in_progress"
	}
	return "no_game"
}

// Session owns the roster and round history of at most one game.
// Every transition is applied under a lock, so readers never see players
// updated without the matching round and counter.
type Session struct {
	mu    sync.RWMutex
	id    string
	state *score.GameState
	log   *zap.SugaredLogger
}

// New returns a session with no game in progress. log may be nil.
func New(log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{log: log}
}

// Dispatch applies a to the session.
func (s *Session) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevPhase := s.phaseLocked()
	s.state = Reduce(s.state, a)

	switch {
	case a.Kind == ActionInit:
		s.id = uuid.NewString()
		s.log.Infow("game started", "game_id", s.id, "players", len(s.state.Players))
	case a.Kind == ActionReset && prevPhase == PhaseInProgress:
		s.log.Infow("game reset", "game_id", s.id)
		s.id = ""
	case a.Kind == ActionAddRound && s.state != nil:
		s.log.Debugw("round added",
			"game_id", s.id,
			"round", len(s.state.Rounds),
			"bidder", a.Round.BidderID,
			"bid", a.Round.Bid,
			"winners", a.Round.Winners.String(),
		)
	case a.Kind == ActionAddRound:
		s.log.Debugw("round ignored, no game in progress")
	}
}

// InitGame starts a new game, replacing any game in progress.
func (s *Session) InitGame(names []string) {
	s.Dispatch(InitAction(names))
}

// AddRound scores round and appends it to the history. It does nothing when
// no game is in progress.
func (s *Session) AddRound(round score.Round) {
	s.Dispatch(AddRoundAction(round))
}

// ResetGame discards the current game, if any.
func (s *Session) ResetGame() {
	s.Dispatch(ResetAction())
}

// SortedPlayers returns a copy of the roster ranked by score, highest first.
// Tied players keep their roster order. It is empty when no game is in
// progress.
func (s *Session) SortedPlayers() []score.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return []score.Player{}
	}
	players := slices.Clone(s.state.Players)
	slices.SortStableFunc(players, func(a, b score.Player) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return players
}

// State returns a snapshot of the current game and whether one exists.
func (s *Session) State() (score.GameState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return score.GameState{}, false
	}
	return s.state.Clone(), true
}

// Phase reports whether a game is in progress.
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phaseLocked()
}

// ID identifies the game in progress in logs; it is empty when there is none.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// RoundsPlayed is the number of rounds recorded in the current game.
func (s *Session) RoundsPlayed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return 0
	}
	return len(s.state.Rounds)
}

func (s *Session) phaseLocked() Phase {
	if s.state == nil {
		return PhaseNoGame
	}
	return PhaseInProgress
}
