package session

import (
	"slices"

	"github.com/palemoky/kali-teeri/internal/score"
)

// ActionKind enumerates the session transitions.
type ActionKind int

const (
	ActionInit ActionKind = iota
	ActionAddRound
	ActionReset
)

func (k ActionKind) String() string {
	switch k {
	case ActionInit:
		return "init"
	case ActionAddRound:
		return "add_round"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Action is one transition request.
type Action struct {
	Kind  ActionKind
	Names []string    // ActionInit
	Round score.Round // ActionAddRound
}

// InitAction starts a new game with the given player names.
func InitAction(names []string) Action {
	return Action{Kind: ActionInit, Names: names}
}

// AddRoundAction records one round.
func AddRoundAction(round score.Round) Action {
	return Action{Kind: ActionAddRound, Round: round}
}

// ResetAction discards the current game.
func ResetAction() Action {
	return Action{Kind: ActionReset}
}

// Reduce returns the state that follows prev after a. A nil state means no
// game is in progress. prev is never modified; the returned state shares no
// slices with it or with a.
func Reduce(prev *score.GameState, a Action) *score.GameState {
	switch a.Kind {
	case ActionInit:
		gs := score.NewGameState(slices.Clone(a.Names))
		return &gs
	case ActionAddRound:
		if prev == nil {
			return nil
		}
		round := a.Round
		round.Partners = slices.Clone(round.Partners)

		next := prev.Clone()
		next.Players = score.CalculateScores(*prev, round)
		next.Rounds = append(next.Rounds, round)
		next.CurrentRound = prev.CurrentRound + 1
		return &next
	case ActionReset:
		return nil
	default:
		return prev
	}
}
