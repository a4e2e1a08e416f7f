package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ListingID string  `json:"listing_id" binding:"required"`
	BidderID  string  `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type PlaceBidResponse struct {
	Accepted         bool    `json:"accepted"`
	BidID            string  `json:"bid_id"`
	ListingID        string  `json:"listing_id"`
	BidderID         string  `json:"bidder_id"`
	NewHighest       float64 `json:"new_highest"`
	RemainingSeconds int64   `json:"remaining_seconds"`
	PlacedAt         string  `json:"placed_at"`
}

type BidSummary struct {
	BidID    string  `json:"bid_id"`
	Sequence int64   `json:"sequence"`
	BidderID string  `json:"bidder_id"`
	Amount   float64 `json:"amount"`
	PlacedAt string  `json:"placed_at"`
	Status   string  `json:"status"`
}

type ResolveExpiredRequest struct {
	AsOf string `json:"as_of"` // RFC3339; empty means now
}

type ReduceCountdownRequest struct {
	ByMinutes int `json:"by_minutes" binding:"required,gt=0"`
}
