package score

// Payout returns how much player id gains from round.
//
// Partners win: the bidder gets twice the bid, every other partner gets the
// bid, non-partners get nothing. Non-partners win: every player outside
// Partners gets the bid, partners (bidder included) get nothing.
//
// The bidder bonus depends only on BidderID, so a bidder missing from
// Partners still doubles when the partners win.
func Payout(round Round, id PlayerID) int {
	switch round.Winners {
	case WinnersPartners:
		if id == round.BidderID {
			return 2 * round.Bid
		}
		if round.IsPartner(id) {
			return round.Bid
		}
		return 0
	case WinnersNonPartners:
		if round.IsPartner(id) {
			return 0
		}
		return round.Bid
	default:
		return 0
	}
}

// CalculateScores applies round to the roster in state and returns the
// updated roster in the same order. Neither argument is modified and the
// round is not validated; unknown ids simply gain nothing.
func CalculateScores(state GameState, round Round) []Player {
	updated := make([]Player, len(state.Players))
	for i, p := range state.Players {
		p.Score += Payout(round, p.ID)
		updated[i] = p
	}
	return updated
}
