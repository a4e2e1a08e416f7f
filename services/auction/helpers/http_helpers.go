package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"gem-auction/internal/auctionerrors"
	"gem-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction closed"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return http.StatusConflict, "auction expired"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid bid amount"
	case errors.Is(err, auctionerrors.ErrSellerCannotBid):
		return http.StatusForbidden, "seller cannot bid on own listing"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "auction store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RejectBid sends a structured bid rejection. minimumAcceptable is included
// when known so the UI can prompt the bidder with a valid resubmission
// amount.
func RejectBid(c *gin.Context, status int, err error, message string, minimumAcceptable *float64) {
	body := gin.H{
		"status":   status,
		"message":  message,
		"error":    err.Error(),
		"accepted": false,
	}
	if minimumAcceptable != nil {
		body["minimum_acceptable"] = *minimumAcceptable
	}
	c.JSON(status, body)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
