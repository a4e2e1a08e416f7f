package engine

import (
	"fmt"
	"math"
	"time"

	"gem-auction/internal/auctionerrors"
	"gem-auction/internal/models"

	"github.com/shopspring/decimal"
)

// currencyPrecision is the decimal-place precision of monetary comparisons.
const currencyPrecision int32 = 2

// BidTooLowError carries the minimum acceptable amount alongside the
// sentinel, so the caller can tell the bidder what to resubmit.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("%v: minimum acceptable bid is %.2f", auctionerrors.ErrBidTooLow, e.Minimum)
}

func (e *BidTooLowError) Unwrap() error { return auctionerrors.ErrBidTooLow }

// MinimumAcceptable returns the smallest amount the next bid may carry:
// the baseline (current highest bid, or starting price if none) raised by
// incrementPercent, at currency precision.
func MinimumAcceptable(l models.Listing, incrementPercent float64) float64 {
	baseline := l.StartingPrice
	if l.TotalBids > 0 && l.CurrentHighestBid != nil {
		baseline = *l.CurrentHighestBid
	}
	rate := decimal.NewFromInt(1).Add(decimal.NewFromFloat(incrementPercent).Div(decimal.NewFromInt(100)))
	min := decimal.NewFromFloat(baseline).Mul(rate).Round(currencyPrecision)
	f, _ := min.Float64()
	return f
}

// ValidateBid applies the admission rules against a listing read under its
// lock. Order matters: terminal state, then the lazy expiry check, then the
// minimum-increment rule.
func ValidateBid(l models.Listing, bidderID string, amount float64, now time.Time, incrementPercent float64) error {
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return fmt.Errorf("engine: amount %v: %w", amount, auctionerrors.ErrInvalidAmount)
	}
	if l.SellerID != "" && bidderID == l.SellerID {
		return fmt.Errorf("engine: bidder %s owns listing %s: %w", bidderID, l.ListingID, auctionerrors.ErrSellerCannotBid)
	}
	if l.State.Terminal() {
		return fmt.Errorf("engine: listing %s is %s: %w", l.ListingID, l.State, auctionerrors.ErrAuctionClosed)
	}
	// Lazy expiry check: the resolver may not have run yet, but no bid may
	// be admitted once the deadline has passed.
	if l.State == models.StateActive && l.BiddingEndTime != nil && !now.Before(*l.BiddingEndTime) {
		return fmt.Errorf("engine: listing %s deadline passed: %w", l.ListingID, auctionerrors.ErrAuctionExpired)
	}
	min := MinimumAcceptable(l, incrementPercent)
	if decimal.NewFromFloat(amount).Round(currencyPrecision).LessThan(decimal.NewFromFloat(min)) {
		return fmt.Errorf("engine: listing %s: %w", l.ListingID, &BidTooLowError{Minimum: min})
	}
	return nil
}
