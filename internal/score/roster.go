package score

import "fmt"

const playerIDPrefix = "player-"

// NewPlayerID returns the id of the player at 1-based position n.
func NewPlayerID(n int) PlayerID {
	return PlayerID(fmt.Sprintf("%s%d", playerIDPrefix, n))
}

// CreatePlayers builds a fresh roster from names, keeping their order.
// Names are taken as-is; trimming and uniqueness are left to the caller.
func CreatePlayers(names []string) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{
			ID:   NewPlayerID(i + 1),
			Name: name,
		}
	}
	return players
}

// NewGameState returns the state of a game that has not played any round yet.
func NewGameState(names []string) GameState {
	return GameState{
		Players:      CreatePlayers(names),
		Rounds:       []Round{},
		CurrentRound: 1,
	}
}
