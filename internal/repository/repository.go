package repository

import (
	"fmt"
	"sync"
	"time"

	"gem-auction/internal/auctionerrors"
	"gem-auction/internal/ledger"
	"gem-auction/internal/models"
)

// AuctionStore is the storage contract for listing auction records and their
// bid ledgers. Implementations serialize all reads and writes per listing;
// different listings never contend on a shared lock.
type AuctionStore interface {
	CreateListing(l models.Listing) error
	ViewListing(listingID string, view func(l models.Listing, led *ledger.Ledger) error) error
	UpdateListing(listingID string, update func(l *models.Listing, led *ledger.Ledger) error) error
	ExpiredListingIDs(asOf time.Time) ([]string, error)
}

// listingEntry is one listing's record plus its ledger, guarded by its own
// mutex so concurrent bids and a racing expiry sweep on the same listing are
// serialized while other listings proceed independently.
type listingEntry struct {
	mu      sync.Mutex
	listing models.Listing
	ledger  *ledger.Ledger
}

// MemoryStore is a concurrency-safe in-memory implementation of
// AuctionStore. The top-level lock guards only the entry map; per-listing
// state is guarded by each entry's lock.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*listingEntry
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*listingEntry)}
}

// CreateListing registers a listing's auction record. New listings start in
// AWAITING_FIRST_BID unless a state is already set.
func (s *MemoryStore) CreateListing(l models.Listing) error {
	if l.ListingID == "" {
		return fmt.Errorf("create listing: empty listing ID: %w", auctionerrors.ErrListingNotFound)
	}
	if l.State == "" {
		l.State = models.StateAwaitingFirstBid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[l.ListingID]; ok {
		return fmt.Errorf("create listing %s: already exists", l.ListingID)
	}
	s.entries[l.ListingID] = &listingEntry{listing: l, ledger: ledger.New()}
	return nil
}

func (s *MemoryStore) entry(listingID string) (*listingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[listingID]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return e, nil
}

// ViewListing runs view with a consistent read of the listing record and a
// private copy of its ledger, under the listing's lock.
func (s *MemoryStore) ViewListing(listingID string, view func(l models.Listing, led *ledger.Ledger) error) error {
	e, err := s.entry(listingID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return view(e.listing, e.ledger.Clone())
}

// UpdateListing runs update as a single-writer transaction on the listing.
// The callback mutates copies; they replace the stored record only when it
// returns nil, so a failed update leaves no partial state behind.
func (s *MemoryStore) UpdateListing(listingID string, update func(l *models.Listing, led *ledger.Ledger) error) error {
	e, err := s.entry(listingID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	l := e.listing
	led := e.ledger.Clone()
	if err := update(&l, led); err != nil {
		return err
	}
	e.listing = l
	e.ledger = led
	return nil
}

// ExpiredListingIDs returns the IDs of every ACTIVE listing whose countdown
// end time has passed as of asOf. Each entry is checked under its own lock.
func (s *MemoryStore) ExpiredListingIDs(asOf time.Time) ([]string, error) {
	s.mu.RLock()
	candidates := make([]*listingEntry, 0, len(s.entries))
	for _, e := range s.entries {
		candidates = append(candidates, e)
	}
	s.mu.RUnlock()

	var ids []string
	for _, e := range candidates {
		e.mu.Lock()
		if e.listing.State == models.StateActive && e.listing.BiddingEndTime != nil && !asOf.Before(*e.listing.BiddingEndTime) {
			ids = append(ids, e.listing.ListingID)
		}
		e.mu.Unlock()
	}
	return ids, nil
}
