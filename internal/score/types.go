// Package score holds the Kali Teeri scorecard model: the player roster,
// rounds, and the payout rule that turns a round into score increases.
package score

import (
	"fmt"
	"slices"
)

// PlayerID identifies a player within one game, e.g. "player-1".
type PlayerID string

// Player is one row of the scorecard.
type Player struct {
	ID    PlayerID `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Score int      `json:"score" yaml:"score"`
}

// Winners tells which side took the round.
type Winners int

const (
	WinnersPartners    Winners = iota // bidder's team won
	WinnersNonPartners                // opposing players won
)

var winnersNames = map[Winners]string{
	WinnersPartners:    "partners",
	WinnersNonPartners: "non-partners",
}

func (w Winners) String() string {
	if s, ok := winnersNames[w]; ok {
		return s
	}
	return fmt.Sprintf("Winners(%d)", int(w))
}

// Valid reports whether w is one of the two defined sides.
func (w Winners) Valid() bool {
	_, ok := winnersNames[w]
	return ok
}

// ParseWinners parses "partners" or "non-partners".
func ParseWinners(s string) (Winners, error) {
	for w, name := range winnersNames {
		if name == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown winners %q", s)
}

func (w Winners) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("invalid winners %d", int(w))
	}
	return []byte(w.String()), nil
}

func (w *Winners) UnmarshalText(text []byte) error {
	parsed, err := ParseWinners(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Round is one scored hand. Partners includes the bidder by convention.
type Round struct {
	BidderID PlayerID   `json:"bidder_id" yaml:"bidder_id"`
	Bid      int        `json:"bid" yaml:"bid"`
	Partners []PlayerID `json:"partners" yaml:"partners"`
	Winners  Winners    `json:"winners" yaml:"winners"`
}

// IsPartner reports whether id is on the bidder's declared team.
func (r Round) IsPartner(id PlayerID) bool {
	return slices.Contains(r.Partners, id)
}

// GameState is the accumulated scorecard of one game.
// CurrentRound is always len(Rounds)+1.
type GameState struct {
	Players      []Player `json:"players" yaml:"players"`
	Rounds       []Round  `json:"rounds" yaml:"rounds"`
	CurrentRound int      `json:"current_round" yaml:"current_round"`
}

// Clone returns a deep copy that shares no slices with gs.
func (gs GameState) Clone() GameState {
	rounds := make([]Round, len(gs.Rounds))
	for i, r := range gs.Rounds {
		r.Partners = slices.Clone(r.Partners)
		rounds[i] = r
	}
	return GameState{
		Players:      slices.Clone(gs.Players),
		Rounds:       rounds,
		CurrentRound: gs.CurrentRound,
	}
}
