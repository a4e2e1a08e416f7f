package main

import (
	"context"
	"fmt"
	"os"

	auction "gem-auction/internal/auctionService"
	"gem-auction/internal/clock"
	model "gem-auction/internal/models"
	"gem-auction/internal/repository"
	"gem-auction/internal/server"
	"gem-auction/internal/sweeper"
	"gem-auction/pkg/config"
)

func main() {

	cfg := config.Load()

	store := repository.NewMemoryStore()

	prepopulateListings(store)

	auctionSvc := auction.NewAuctionService(store, clock.System(), auction.Config{
		AuctionDuration:     cfg.AuctionDuration,
		MinIncrementPercent: cfg.MinIncrementPercent,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.New(auctionSvc, clock.System(), cfg.SweepInterval).Run(ctx)

	router := server.SetupRouter(auctionSvc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Starting auction engine on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateListings adds sample gemstone listings to the in-memory store
func prepopulateListings(store *repository.MemoryStore) {
	listings := []model.Listing{
		{ListingID: "gem1", SellerID: "seller1", Title: "Ceylon Sapphire 3.2ct", StartingPrice: 10000, State: model.StateAwaitingFirstBid},
		{ListingID: "gem2", SellerID: "seller1", Title: "Burmese Ruby 2.1ct", StartingPrice: 18500, State: model.StateAwaitingFirstBid},
		{ListingID: "gem3", SellerID: "seller2", Title: "Colombian Emerald 4.0ct", StartingPrice: 7200, State: model.StateAwaitingFirstBid},
	}

	for _, l := range listings {
		if err := store.CreateListing(l); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed listing %s: %v\n", l.ListingID, err)
		}
	}
}
