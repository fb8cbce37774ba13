package model

import (
	"github.com/palemoky/kali-teeri/internal/score"
)

// RoundSection is the part of the round form that has the cursor.
type RoundSection int

const (
	SectionBidder RoundSection = iota
	SectionBid
	SectionPartners
	SectionWinners
	sectionCount
)

func (s RoundSection) String() string {
	switch s {
	case SectionBidder:
		return "Highest Bidder"
	case SectionBid:
		return "Bid Amount"
	case SectionPartners:
		return "Partners"
	case SectionWinners:
		return "Who Won?"
	default:
		return ""
	}
}

// BidPolicy configures the bid stepper.
type BidPolicy struct {
	Default int
	Step    int
	Min     int
	Max     int
}

// RoundForm holds the round being entered. The bidder is always one of
// the partners.
type RoundForm struct {
	players []score.Player
	policy  BidPolicy

	bidder   score.PlayerID
	bid      int
	partners map[score.PlayerID]bool
	winners  score.Winners

	section RoundSection
	cursor  int // partner under the cursor, index into players
	err     error
}

// NewRoundForm creates a form for the given roster, at its default values.
func NewRoundForm(players []score.Player, policy BidPolicy) *RoundForm {
	f := &RoundForm{players: players, policy: policy}
	f.Reset()
	return f
}

// Reset returns the form to its defaults: first player bidding alone at the
// default bid, partners winning.
func (f *RoundForm) Reset() {
	f.bid = f.policy.Default
	f.winners = score.WinnersPartners
	f.section = SectionBidder
	f.cursor = 0
	f.err = nil
	f.SetBidder(f.defaultBidder())
}

func (f *RoundForm) defaultBidder() score.PlayerID {
	if len(f.players) == 0 {
		return ""
	}
	return f.players[0].ID
}

func (f *RoundForm) Players() []score.Player { return f.players }
func (f *RoundForm) Bidder() score.PlayerID  { return f.bidder }
func (f *RoundForm) Bid() int                { return f.bid }
func (f *RoundForm) Winners() score.Winners  { return f.winners }
func (f *RoundForm) Section() RoundSection   { return f.section }
func (f *RoundForm) Cursor() int             { return f.cursor }
func (f *RoundForm) Err() error              { return f.err }
func (f *RoundForm) Policy() BidPolicy       { return f.policy }

// IsPartner reports whether id is currently checked as a partner.
func (f *RoundForm) IsPartner(id score.PlayerID) bool { return f.partners[id] }

// PartnerCount is the number of checked partners, bidder included.
func (f *RoundForm) PartnerCount() int { return len(f.partners) }

// RequiredPartners is the team size this table needs.
func (f *RoundForm) RequiredPartners() int { return score.RequiredPartners(len(f.players)) }

// PartnersValid reports whether exactly the required number of partners is checked.
func (f *RoundForm) PartnersValid() bool { return f.PartnerCount() == f.RequiredPartners() }

// SetBidder makes id the bidder and resets the partners to just the bidder.
func (f *RoundForm) SetBidder(id score.PlayerID) {
	f.bidder = id
	f.partners = make(map[score.PlayerID]bool)
	if id != "" {
		f.partners[id] = true
	}
	f.err = nil
}

// CycleBidder moves the bidder delta places through the roster.
func (f *RoundForm) CycleBidder(delta int) {
	n := len(f.players)
	if n == 0 {
		return
	}
	idx := 0
	for i, p := range f.players {
		if p.ID == f.bidder {
			idx = i
			break
		}
	}
	f.SetBidder(f.players[((idx+delta)%n+n)%n].ID)
}

// StepBid moves the bid by steps increments, clamped to the policy range.
func (f *RoundForm) StepBid(steps int) {
	f.bid = min(max(f.bid+steps*f.policy.Step, f.policy.Min), f.policy.Max)
	f.err = nil
}

func (f *RoundForm) AtMinBid() bool { return f.bid <= f.policy.Min }
func (f *RoundForm) AtMaxBid() bool { return f.bid >= f.policy.Max }

// TogglePartner checks or unchecks id. The bidder cannot be unchecked.
func (f *RoundForm) TogglePartner(id score.PlayerID) {
	if id == f.bidder {
		return
	}
	if f.partners[id] {
		delete(f.partners, id)
	} else {
		f.partners[id] = true
	}
}

// ToggleCursorPartner toggles the partner under the cursor.
func (f *RoundForm) ToggleCursorPartner() {
	if f.cursor < len(f.players) {
		f.TogglePartner(f.players[f.cursor].ID)
	}
}

// MoveCursor moves the partner cursor delta places, wrapping around.
func (f *RoundForm) MoveCursor(delta int) {
	if n := len(f.players); n > 0 {
		f.cursor = ((f.cursor+delta)%n + n) % n
	}
}

func (f *RoundForm) SetWinners(w score.Winners) { f.winners = w }

// ToggleWinners flips between partners and non-partners.
func (f *RoundForm) ToggleWinners() {
	if f.winners == score.WinnersPartners {
		f.winners = score.WinnersNonPartners
	} else {
		f.winners = score.WinnersPartners
	}
}

// MoveSection moves the form cursor delta sections, wrapping around.
func (f *RoundForm) MoveSection(delta int) {
	n := int(sectionCount)
	f.section = RoundSection(((int(f.section)+delta)%n + n) % n)
}

// Pristine reports whether the form is still at its defaults.
func (f *RoundForm) Pristine() bool {
	return f.bidder == f.defaultBidder() &&
		f.bid == f.policy.Default &&
		f.PartnerCount() == 1 && f.partners[f.bidder] &&
		f.winners == score.WinnersPartners
}

// CanEndGame reports whether the game may be ended from this form: it is
// untouched, or its partner selection is complete.
func (f *RoundForm) CanEndGame() bool {
	return f.Pristine() || f.PartnersValid()
}

// Round returns the round as entered, partners in roster order.
func (f *RoundForm) Round() score.Round {
	partners := make([]score.PlayerID, 0, len(f.partners))
	for _, p := range f.players {
		if f.partners[p.ID] {
			partners = append(partners, p.ID)
		}
	}
	return score.Round{
		BidderID: f.bidder,
		Bid:      f.bid,
		Partners: partners,
		Winners:  f.winners,
	}
}

// Submit validates the round. On success the form is left untouched so the
// caller can record the round and then Reset.
func (f *RoundForm) Submit() (score.Round, error) {
	round := f.Round()
	if err := score.ValidateRound(f.players, round); err != nil {
		f.err = err
		return score.Round{}, err
	}
	f.err = nil
	return round, nil
}
