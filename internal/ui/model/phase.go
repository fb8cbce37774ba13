// Package model holds the scorecard form state driven by the terminal UI.
package model

// GamePhase is the screen currently shown.
type GamePhase int

const (
	PhaseSetup GamePhase = iota
	PhaseRound
	PhaseEndGame
)

func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRound:
		return "round"
	case PhaseEndGame:
		return "end_game"
	default:
		return "unknown"
	}
}
