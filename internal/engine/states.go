package engine

import (
	"fmt"
	"time"

	"gem-auction/internal/auctionerrors"
	"gem-auction/internal/models"
)

// Legal state transitions of the auction lifecycle. EXPIRED_NO_WINNER is kept
// for symmetry even though entry to ACTIVE requires a bid; a listing with no
// bids simply stays AWAITING_FIRST_BID with no countdown running.
var transitions = map[models.AuctionState][]models.AuctionState{
	models.StateAwaitingFirstBid: {models.StateActive},
	models.StateActive: {
		models.StateExpiredNoWinner,
		models.StateExpiredWithWinner,
		models.StateSold,
	},
}

// CanTransition reports whether from -> to is a legal transition.
func CanTransition(from, to models.AuctionState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Activate moves a listing out of AWAITING_FIRST_BID on its first accepted
// bid, freezing the countdown end timestamp at now + duration.
func Activate(l *models.Listing, now time.Time, duration time.Duration) error {
	if !CanTransition(l.State, models.StateActive) {
		return fmt.Errorf("engine: activate listing %s from state %s: %w", l.ListingID, l.State, auctionerrors.ErrAuctionClosed)
	}
	end := now.Add(duration)
	l.State = models.StateActive
	l.BiddingEndTime = &end
	return nil
}

// MarkSold applies the external explicit-acceptance transition. The seller's
// acceptance flow itself lives outside the engine; the state machine only
// admits the transition.
func MarkSold(l *models.Listing) error {
	if !CanTransition(l.State, models.StateSold) {
		return fmt.Errorf("engine: mark listing %s sold from state %s: %w", l.ListingID, l.State, auctionerrors.ErrAuctionClosed)
	}
	l.State = models.StateSold
	return nil
}
