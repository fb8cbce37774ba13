package score

import "github.com/palemoky/kali-teeri/internal/apperrors"

// RequiredPartners is the size of the bidder's team, bidder included,
// for a table of n players.
func RequiredPartners(n int) int {
	return n / 2
}

// ValidateRound checks a round against the roster before it is recorded.
// CalculateScores never calls it; callers that take user input should.
func ValidateRound(players []Player, round Round) error {
	known := make(map[PlayerID]struct{}, len(players))
	for _, p := range players {
		known[p.ID] = struct{}{}
	}

	if _, ok := known[round.BidderID]; !ok {
		return apperrors.ErrUnknownBidder
	}
	if round.Bid <= 0 {
		return apperrors.ErrInvalidBid
	}
	if !round.Winners.Valid() {
		return apperrors.ErrInvalidWinners
	}

	seen := make(map[PlayerID]struct{}, len(round.Partners))
	for _, id := range round.Partners {
		if _, ok := known[id]; !ok {
			return apperrors.ErrUnknownPartner.Withf("partner %s is not in this game", id)
		}
		if _, dup := seen[id]; dup {
			return apperrors.ErrDuplicatePartner.Withf("partner %s listed more than once", id)
		}
		seen[id] = struct{}{}
	}
	if _, ok := seen[round.BidderID]; !ok {
		return apperrors.ErrBidderNotPartner
	}

	if want := RequiredPartners(len(players)); len(round.Partners) != want {
		return apperrors.ErrPartnerCount.Withf("select exactly %d %s (including the bidder)", want, pluralPartners(want))
	}
	return nil
}

func pluralPartners(n int) string {
	if n == 1 {
		return "partner"
	}
	return "partners"
}
