package engine

import (
	"time"

	"gem-auction/internal/ledger"
	"gem-auction/internal/models"
)

// Resolve finalizes an ACTIVE auction whose countdown has elapsed as of
// asOf: the listing transitions to its terminal expired state and the ledger
// assigns WON/LOST statuses. The returned bool is false when nothing changed:
// the listing is already terminal, has no countdown running, or is not yet
// due. Calling Resolve on an already-resolved listing is a no-op, never an
// error, so a scheduled sweep and an on-demand check can race safely.
func Resolve(l *models.Listing, led *ledger.Ledger, asOf time.Time) (models.Resolution, bool) {
	if l.State != models.StateActive {
		return models.Resolution{}, false
	}
	if l.BiddingEndTime == nil || asOf.Before(*l.BiddingEndTime) {
		return models.Resolution{}, false
	}

	winner, ok := led.Finalize()
	if !ok {
		// Unreachable through normal flow: ACTIVE implies at least one bid.
		l.State = models.StateExpiredNoWinner
		return models.Resolution{ListingID: l.ListingID, ResolvedAt: asOf}, true
	}

	l.State = models.StateExpiredWithWinner
	return models.Resolution{
		ListingID:     l.ListingID,
		WinnerID:      winner.BidderID,
		WinningAmount: winner.Amount,
		ResolvedAt:    asOf,
	}, true
}
