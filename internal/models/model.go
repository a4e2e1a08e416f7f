package models

import "time"

// AuctionState is the lifecycle state of a listing's auction.
type AuctionState string

const (
	// StateAwaitingFirstBid is the initial state; no countdown runs until a
	// bid is accepted.
	StateAwaitingFirstBid AuctionState = "AWAITING_FIRST_BID"
	// StateActive means bidding is open and the countdown end time is frozen.
	StateActive AuctionState = "ACTIVE"
	// StateExpiredNoWinner is terminal: the countdown elapsed with no bid on
	// record.
	StateExpiredNoWinner AuctionState = "EXPIRED_NO_WINNER"
	// StateExpiredWithWinner is terminal: the countdown elapsed and the
	// highest bidder won.
	StateExpiredWithWinner AuctionState = "EXPIRED_WITH_WINNER"
	// StateSold is terminal: the seller explicitly accepted a bid before
	// expiry.
	StateSold AuctionState = "SOLD"
)

// Terminal reports whether no further transition can occur from s.
func (s AuctionState) Terminal() bool {
	switch s {
	case StateExpiredNoWinner, StateExpiredWithWinner, StateSold:
		return true
	}
	return false
}

// BidStatus is the lifecycle status of an accepted bid record.
type BidStatus string

const (
	BidActive BidStatus = "ACTIVE" // currently the highest bid
	BidOutbid BidStatus = "OUTBID" // superseded by a later higher bid
	BidWon    BidStatus = "WON"    // highest at resolution
	BidLost   BidStatus = "LOST"   // not highest at resolution
)

// Listing is the auction record of one gemstone listing.
// BiddingEndTime is set when the first bid is accepted and never moves again
// (except through the privileged test-only countdown reduction).
// CurrentHighestBid and CurrentHighestBidderID are nil until the first
// accepted bid.
type Listing struct {
	ListingID              string       `json:"listing_id"`
	SellerID               string       `json:"seller_id"`
	Title                  string       `json:"title"`
	StartingPrice          float64      `json:"starting_price"`
	State                  AuctionState `json:"state"`
	BiddingEndTime         *time.Time   `json:"bidding_end_time,omitempty"`
	CurrentHighestBid      *float64     `json:"current_highest_bid,omitempty"`
	CurrentHighestBidderID *string      `json:"current_highest_bidder_id,omitempty"`
	TotalBids              int          `json:"total_bids"`
}

// Bid is one accepted bid on a listing. Sequence is assigned by the ledger
// and reflects acceptance order within the listing.
type Bid struct {
	BidID     string    `json:"bid_id"`
	Sequence  int64     `json:"sequence"`
	ListingID string    `json:"listing_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	PlacedAt  time.Time `json:"placed_at"`
	Status    BidStatus `json:"status"`
}

// BidReceipt is returned to the caller when a bid is accepted.
type BidReceipt struct {
	Bid              Bid     `json:"bid"`
	NewHighest       float64 `json:"new_highest"`
	RemainingSeconds int64   `json:"remaining_seconds"`
}

// BidStats is the per-listing bid summary exposed to the dashboards.
type BidStats struct {
	ListingID       string   `json:"listing_id"`
	TotalBids       int      `json:"total_bids"`
	HighestBid      *float64 `json:"highest_bid,omitempty"`
	HighestBidderID *string  `json:"highest_bidder_id,omitempty"`
}

// CountdownStatus is the countdown view of one listing. BiddingEndTime is
// nil while the auction is awaiting its first bid.
type CountdownStatus struct {
	ListingID        string     `json:"listing_id"`
	RemainingSeconds int64      `json:"remaining_seconds"`
	BiddingActive    bool       `json:"bidding_active"`
	IsExpired        bool       `json:"is_expired"`
	BiddingEndTime   *time.Time `json:"bidding_end_time,omitempty"`
	Days             int64      `json:"days"`
	Hours            int64      `json:"hours"`
	Minutes          int64      `json:"minutes"`
	Seconds          int64      `json:"seconds"`
}

// Resolution describes the outcome of finalizing an expired auction.
// RemainingSeconds is zero by the time an auction resolves.
type Resolution struct {
	ListingID        string    `json:"listing_id"`
	WinnerID         string    `json:"winner_id,omitempty"`
	WinningAmount    float64   `json:"winning_amount,omitempty"`
	ResolvedAt       time.Time `json:"resolved_at"`
	RemainingSeconds int64     `json:"remaining_seconds"`
}
