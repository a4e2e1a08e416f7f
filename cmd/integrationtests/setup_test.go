package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "gem-auction/internal/auctionService"
	"gem-auction/internal/clock"
	model "gem-auction/internal/models"
	"gem-auction/internal/repository"
	"gem-auction/internal/server"

	"github.com/gin-gonic/gin"
)

const testDuration = 72 * time.Hour

// SetupTestRouter initializes the router over an in-memory store with the
// given clock, seeded with listings.
func SetupTestRouter(clk clock.Clock, listings ...model.Listing) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()

	for _, l := range listings {
		if err := store.CreateListing(l); err != nil {
			panic(err)
		}
	}

	service := auction.NewAuctionService(store, clk, auction.Config{
		AuctionDuration:     testDuration,
		MinIncrementPercent: 2,
	})
	return server.SetupRouter(service)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// sampleListing returns a listing ready for seeding
func sampleListing(listingID string, startingPrice float64) model.Listing {
	return model.Listing{
		ListingID:     listingID,
		SellerID:      "seller1",
		Title:         "Ceylon Sapphire 3.2ct",
		StartingPrice: startingPrice,
		State:         model.StateAwaitingFirstBid,
	}
}
