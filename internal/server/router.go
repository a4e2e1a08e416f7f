package server

import (
	auction "gem-auction/internal/auctionService"
	handler "gem-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the bidding engine
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("/:listing_id/countdown", auctionHandler.GetCountdownHandler)
		listings.GET("/:listing_id/stats", auctionHandler.GetBidStatsHandler)
		listings.GET("/:listing_id/bids", auctionHandler.ListRecentBidsHandler)
		listings.POST("/:listing_id/resolve", auctionHandler.ResolveListingHandler)
		listings.POST("/:listing_id/reduce-countdown", auctionHandler.ReduceCountdownHandler)
	}

	resolutions := router.Group("/resolutions")
	{
		resolutions.POST("", auctionHandler.ResolveExpiredHandler)
	}

	return router
}
