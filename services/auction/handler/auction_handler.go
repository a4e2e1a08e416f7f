package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gem-auction/internal/engine"
	model "gem-auction/internal/models"
	"gem-auction/services/auction/helpers"
	"gem-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	PlaceBid(listingID, bidderID string, amount float64) (model.BidReceipt, error)
	GetCountdown(listingID string, now time.Time) (model.CountdownStatus, error)
	GetBidStats(listingID string) (model.BidStats, error)
	ListRecentBids(listingID string, page, size int) ([]model.Bid, error)
	ResolveIfExpired(listingID string) (model.Resolution, bool, error)
	ResolveAllExpired(asOf time.Time) ([]model.Resolution, error)
	ReduceCountdown(listingID string, byMinutes int) (time.Time, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	receipt, err := h.service.PlaceBid(req.ListingID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)

		var tooLow *engine.BidTooLowError
		var minimum *float64
		if errors.As(err, &tooLow) {
			minimum = &tooLow.Minimum
		}
		helpers.RejectBid(c, status, err, message, minimum)

		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"listing_id": req.ListingID,
			"bidder_id":  req.BidderID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Accepted:         true,
		BidID:            receipt.Bid.BidID,
		ListingID:        receipt.Bid.ListingID,
		BidderID:         receipt.Bid.BidderID,
		NewHighest:       receipt.NewHighest,
		RemainingSeconds: receipt.RemainingSeconds,
		PlacedAt:         receipt.Bid.PlacedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"bid_id":      receipt.Bid.BidID,
		"listing_id":  receipt.Bid.ListingID,
		"bidder_id":   receipt.Bid.BidderID,
		"new_highest": receipt.NewHighest,
	})
}

// GetCountdownHandler handles GET /listings/:listing_id/countdown
func (h *AuctionHandler) GetCountdownHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var now time.Time
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid now parameter: %w", err), "invalid now parameter")
			return
		}
		now = parsed
	}

	status, err := h.service.GetCountdown(listingID, now)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetCountdownHandler: error projecting countdown", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, status, "countdown retrieved successfully")
}

// GetBidStatsHandler handles GET /listings/:listing_id/stats
func (h *AuctionHandler) GetBidStatsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	stats, err := h.service.GetBidStats(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidStatsHandler: error retrieving stats", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "bid stats retrieved successfully")
}

// ListRecentBidsHandler handles GET /listings/:listing_id/bids
func (h *AuctionHandler) ListRecentBidsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	bids, err := h.service.ListRecentBids(listingID, page, size)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListRecentBidsHandler: error retrieving bids", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	summaries := make([]helpers.BidSummary, 0, len(bids))
	for _, b := range bids {
		summaries = append(summaries, helpers.BidSummary{
			BidID:    b.BidID,
			Sequence: b.Sequence,
			BidderID: b.BidderID,
			Amount:   b.Amount,
			PlacedAt: b.PlacedAt.UTC().Format(time.RFC3339),
			Status:   string(b.Status),
		})
	}

	utils.JSONResponse(c, http.StatusOK, summaries, "bids retrieved successfully")
	helpers.LogSuccess("ListRecentBidsHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(summaries),
	})
}

// ResolveListingHandler handles POST /listings/:listing_id/resolve, the
// on-demand expiry check triggered when a client observes the countdown
// reach zero.
func (h *AuctionHandler) ResolveListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	res, resolved, err := h.service.ResolveIfExpired(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResolveListingHandler: resolution error", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	if !resolved {
		utils.JSONResponse(c, http.StatusOK, gin.H{"resolved": false}, "listing unchanged")
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"resolved": true, "resolution": res}, "listing resolved")
	helpers.LogSuccess("ResolveListingHandler", "listing resolved", map[string]any{
		"listing_id": res.ListingID,
		"winner_id":  res.WinnerID,
	})
}

// ResolveExpiredHandler handles POST /resolutions, the bulk sweep entry
// point.
func (h *AuctionHandler) ResolveExpiredHandler(c *gin.Context) {
	// An empty body means "as of now"
	var req helpers.ResolveExpiredRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "ResolveExpiredHandler", err)
			return
		}
	}

	var asOf time.Time
	if req.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, req.AsOf)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid as_of: %w", err), "invalid as_of")
			return
		}
		asOf = parsed
	}

	resolutions, err := h.service.ResolveAllExpired(asOf)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ResolveExpiredHandler: sweep failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resolutions, "expired auctions resolved")
	helpers.LogSuccess("ResolveExpiredHandler", "expired auctions resolved", map[string]any{
		"count": len(resolutions),
	})
}

// ReduceCountdownHandler handles POST /listings/:listing_id/reduce-countdown.
// Testing-only operation; it goes through the same per-listing transaction
// as ordinary bids.
func (h *AuctionHandler) ReduceCountdownHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.ReduceCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReduceCountdownHandler", err)
		return
	}

	newEnd, err := h.service.ReduceCountdown(listingID, req.ByMinutes)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ReduceCountdownHandler: reduction rejected", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"listing_id":       listingID,
		"bidding_end_time": newEnd.UTC().Format(time.RFC3339),
	}, "countdown reduced")
	helpers.LogSuccess("ReduceCountdownHandler", "countdown reduced", map[string]any{
		"listing_id": listingID,
		"by_minutes": req.ByMinutes,
	})
}
