package auction

import (
	"fmt"
	"time"

	"gem-auction/internal/auctionerrors"
	"gem-auction/internal/clock"
	"gem-auction/internal/countdown"
	"gem-auction/internal/engine"
	"gem-auction/internal/ledger"
	"gem-auction/internal/models"
	"gem-auction/internal/repository"
	"gem-auction/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Config carries the engine parameters. Both are application-level inputs,
// not decided by the engine itself.
type Config struct {
	// AuctionDuration is the countdown length frozen when the first bid is
	// accepted.
	AuctionDuration time.Duration
	// MinIncrementPercent is the percentage a new bid must exceed the
	// baseline by.
	MinIncrementPercent float64
}

// AuctionService implements the bidding engine operations over an
// AuctionStore. All per-listing mutations run inside the store's
// single-writer transaction for that listing.
type AuctionService struct {
	store repository.AuctionStore
	clk   clock.Clock
	cfg   Config
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(store repository.AuctionStore, clk clock.Clock, cfg Config) *AuctionService {
	return &AuctionService{
		store: store,
		clk:   clk,
		cfg:   cfg,
	}
}

// PlaceBid validates and records a bid on a listing. Validation, ledger
// append, highest-pointer update, and the first-bid activation happen
// atomically; a rejected bid commits nothing.
func (s *AuctionService) PlaceBid(listingID, bidderID string, amount float64) (models.BidReceipt, error) {
	if listingID == "" || bidderID == "" {
		return models.BidReceipt{}, fmt.Errorf("service: %w - missing listingID or bidderID", auctionerrors.ErrInvalidBid)
	}

	now := s.clk.Now()
	var receipt models.BidReceipt

	err := s.store.UpdateListing(listingID, func(l *models.Listing, led *ledger.Ledger) error {
		if err := engine.ValidateBid(*l, bidderID, amount, now, s.cfg.MinIncrementPercent); err != nil {
			return err
		}
		if l.State == models.StateAwaitingFirstBid {
			if err := engine.Activate(l, now, s.cfg.AuctionDuration); err != nil {
				return err
			}
		}

		bid := led.Append(models.Bid{
			BidID:     utils.GenerateID(),
			ListingID: listingID,
			BidderID:  bidderID,
			Amount:    amount,
			PlacedAt:  now,
		})

		amt := amount
		bidder := bidderID
		l.CurrentHighestBid = &amt
		l.CurrentHighestBidderID = &bidder
		l.TotalBids++

		receipt = models.BidReceipt{
			Bid:              bid,
			NewHighest:       amount,
			RemainingSeconds: countdown.Project(*l.BiddingEndTime, now).RemainingSeconds,
		}
		return nil
	})
	if err != nil {
		return models.BidReceipt{}, fmt.Errorf("service: place bid on listing %s by bidder %s: %w", listingID, bidderID, err)
	}

	return receipt, nil
}

// GetCountdown projects the remaining time of a listing's countdown as of
// now. A zero now means the service clock. The projection never triggers
// resolution; callers observing IsExpired invoke ResolveIfExpired
// separately.
func (s *AuctionService) GetCountdown(listingID string, now time.Time) (models.CountdownStatus, error) {
	if listingID == "" {
		return models.CountdownStatus{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidBid)
	}
	if now.IsZero() {
		now = s.clk.Now()
	}

	var status models.CountdownStatus
	err := s.store.ViewListing(listingID, func(l models.Listing, _ *ledger.Ledger) error {
		status = models.CountdownStatus{ListingID: l.ListingID}
		if l.BiddingEndTime == nil {
			// No countdown runs until the first bid; bidding is open.
			status.BiddingActive = l.State == models.StateAwaitingFirstBid
			return nil
		}
		b := countdown.Project(*l.BiddingEndTime, now)
		end := *l.BiddingEndTime
		status.RemainingSeconds = b.RemainingSeconds
		status.BiddingActive = l.State == models.StateActive && !b.IsExpired
		status.IsExpired = b.IsExpired
		status.BiddingEndTime = &end
		status.Days, status.Hours, status.Minutes, status.Seconds = b.Days, b.Hours, b.Minutes, b.Seconds
		return nil
	})
	if err != nil {
		return models.CountdownStatus{}, fmt.Errorf("service: get countdown for listing %s: %w", listingID, err)
	}

	return status, nil
}

// GetBidStats returns the bid summary for a listing.
func (s *AuctionService) GetBidStats(listingID string) (models.BidStats, error) {
	if listingID == "" {
		return models.BidStats{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidBid)
	}

	var stats models.BidStats
	err := s.store.ViewListing(listingID, func(l models.Listing, _ *ledger.Ledger) error {
		stats = models.BidStats{
			ListingID:       l.ListingID,
			TotalBids:       l.TotalBids,
			HighestBid:      l.CurrentHighestBid,
			HighestBidderID: l.CurrentHighestBidderID,
		}
		return nil
	})
	if err != nil {
		return models.BidStats{}, fmt.Errorf("service: get bid stats for listing %s: %w", listingID, err)
	}

	return stats, nil
}

// ListRecentBids returns one page of a listing's bid records, most recent
// first. Pages are 1-based; size defaults to 20 and is capped at 100.
func (s *AuctionService) ListRecentBids(listingID string, page, size int) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidBid)
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	var bids []models.Bid
	err := s.store.ViewListing(listingID, func(_ models.Listing, led *ledger.Ledger) error {
		bids = led.Recent(page, size)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: list recent bids for listing %s: %w", listingID, err)
	}

	return bids, nil
}

// ResolveIfExpired finalizes a single listing if its countdown has elapsed.
// The returned bool is false (Unchanged) when the listing is already
// terminal or not yet due; that is never an error, since a scheduled sweep
// and a client-observed expiry may race to resolve the same listing.
func (s *AuctionService) ResolveIfExpired(listingID string) (models.Resolution, bool, error) {
	return s.resolveAt(listingID, s.clk.Now())
}

func (s *AuctionService) resolveAt(listingID string, asOf time.Time) (models.Resolution, bool, error) {
	if listingID == "" {
		return models.Resolution{}, false, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidBid)
	}

	var res models.Resolution
	var resolved bool
	err := s.store.UpdateListing(listingID, func(l *models.Listing, led *ledger.Ledger) error {
		res, resolved = engine.Resolve(l, led, asOf)
		return nil
	})
	if err != nil {
		return models.Resolution{}, false, fmt.Errorf("service: resolve listing %s: %w", listingID, err)
	}

	if resolved {
		utils.Info("auction resolved", map[string]any{
			"listing_id":        res.ListingID,
			"winner_id":         res.WinnerID,
			"winning_amount":    res.WinningAmount,
			"remaining_seconds": res.RemainingSeconds,
		})
	}
	return res, resolved, nil
}

// ResolveAllExpired finalizes every ACTIVE listing whose countdown end time
// has passed as of asOf. A zero asOf means the service clock. Listings
// already resolved by a racing caller are skipped. Resolutions committed
// before a store failure are returned alongside the error; the call is safe
// to retry.
func (s *AuctionService) ResolveAllExpired(asOf time.Time) ([]models.Resolution, error) {
	if asOf.IsZero() {
		asOf = s.clk.Now()
	}

	ids, err := s.store.ExpiredListingIDs(asOf)
	if err != nil {
		return nil, fmt.Errorf("service: scan expired listings: %w", err)
	}

	resolutions := make([]models.Resolution, 0, len(ids))
	for _, id := range ids {
		res, resolved, err := s.resolveAt(id, asOf)
		if err != nil {
			return resolutions, err
		}
		if resolved {
			resolutions = append(resolutions, res)
		}
	}
	return resolutions, nil
}

// ReduceCountdown shifts an ACTIVE listing's deadline earlier by byMinutes.
// Testing-only operation; it runs under the same per-listing transaction as
// ordinary bids and never moves the deadline before the most recent accepted
// bid. The new deadline is returned.
func (s *AuctionService) ReduceCountdown(listingID string, byMinutes int) (time.Time, error) {
	if listingID == "" || byMinutes <= 0 {
		return time.Time{}, fmt.Errorf("service: %w - listing ID and a positive minute count are required", auctionerrors.ErrInvalidBid)
	}

	var newEnd time.Time
	err := s.store.UpdateListing(listingID, func(l *models.Listing, led *ledger.Ledger) error {
		if l.State.Terminal() {
			return fmt.Errorf("listing %s is %s: %w", l.ListingID, l.State, auctionerrors.ErrAuctionClosed)
		}
		if l.State != models.StateActive || l.BiddingEndTime == nil {
			return fmt.Errorf("listing %s has no countdown running: %w", l.ListingID, auctionerrors.ErrInvalidBid)
		}

		shifted := l.BiddingEndTime.Add(-time.Duration(byMinutes) * time.Minute)
		// An accepted bid must never postdate its auction's deadline.
		if last, ok := led.LastPlacedAt(); ok && shifted.Before(last) {
			shifted = last
		}
		l.BiddingEndTime = &shifted
		newEnd = shifted
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("service: reduce countdown for listing %s: %w", listingID, err)
	}

	utils.Info("countdown reduced", map[string]any{
		"listing_id":       listingID,
		"by_minutes":       byMinutes,
		"bidding_end_time": newEnd,
	})
	return newEnd, nil
}
