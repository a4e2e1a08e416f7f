package auctionerrors

import "errors"

// Bid validation errors. These are terminal for the bid attempt and are
// returned to the caller as-is; retrying with the same amount would fail
// identically.
var (
	ErrAuctionClosed   = errors.New("auction closed")
	ErrAuctionExpired  = errors.New("auction expired")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrInvalidAmount   = errors.New("invalid bid amount")
	ErrSellerCannotBid = errors.New("seller cannot bid on own listing")
	ErrInvalidBid      = errors.New("invalid bid request")
)

// Infrastructure and caller errors. ErrStoreUnavailable is transient and
// safe to retry with the same inputs; no partial state is ever committed.
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrStoreUnavailable = errors.New("auction store unavailable")
)
