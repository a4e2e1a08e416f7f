package ledger

import (
	"time"

	"gem-auction/internal/models"
)

// Ledger is the append-only record of accepted bids for one listing. Bid
// records are created and their statuses mutated only here. The ledger does
// no locking of its own; callers serialize access per listing.
type Ledger struct {
	bids    []models.Bid
	nextSeq int64
}

// New returns an empty ledger whose first bid gets sequence 1.
func New() *Ledger {
	return &Ledger{nextSeq: 1}
}

// Append admits an already-validated bid: the previous highest record (if
// any) is marked OUTBID, the new record gets the next sequence number and
// status ACTIVE. The stored record is returned.
func (l *Ledger) Append(bid models.Bid) models.Bid {
	if n := len(l.bids); n > 0 && l.bids[n-1].Status == models.BidActive {
		l.bids[n-1].Status = models.BidOutbid
	}
	bid.Sequence = l.nextSeq
	bid.Status = models.BidActive
	l.nextSeq++
	l.bids = append(l.bids, bid)
	return bid
}

// Len returns the number of accepted bids.
func (l *Ledger) Len() int { return len(l.bids) }

// Highest returns the current highest bid record, which is always the most
// recently appended one.
func (l *Ledger) Highest() (models.Bid, bool) {
	if len(l.bids) == 0 {
		return models.Bid{}, false
	}
	return l.bids[len(l.bids)-1], true
}

// LastPlacedAt returns the acceptance time of the most recent bid.
func (l *Ledger) LastPlacedAt() (time.Time, bool) {
	if len(l.bids) == 0 {
		return time.Time{}, false
	}
	return l.bids[len(l.bids)-1].PlacedAt, true
}

// Finalize assigns terminal statuses at auction resolution: the current
// highest record becomes WON, every other record becomes LOST. The winning
// record is returned; ok is false when the ledger is empty.
func (l *Ledger) Finalize() (models.Bid, bool) {
	if len(l.bids) == 0 {
		return models.Bid{}, false
	}
	for i := range l.bids[:len(l.bids)-1] {
		l.bids[i].Status = models.BidLost
	}
	l.bids[len(l.bids)-1].Status = models.BidWon
	return l.bids[len(l.bids)-1], true
}

// Recent returns one page of bid records, most recent first. Pages are
// 1-based; an out-of-range page yields an empty slice.
func (l *Ledger) Recent(page, size int) []models.Bid {
	if page < 1 || size < 1 {
		return []models.Bid{}
	}
	start := (page - 1) * size
	if start >= len(l.bids) {
		return []models.Bid{}
	}
	end := start + size
	if end > len(l.bids) {
		end = len(l.bids)
	}
	out := make([]models.Bid, 0, end-start)
	for i := len(l.bids) - 1 - start; i >= len(l.bids)-end; i-- {
		out = append(out, l.bids[i])
	}
	return out
}

// All returns a copy of every bid record in acceptance order.
func (l *Ledger) All() []models.Bid {
	return append([]models.Bid(nil), l.bids...)
}

// Clone returns an independent copy of the ledger, used for copy-on-write
// commits in the store.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{bids: append([]models.Bid(nil), l.bids...), nextSeq: l.nextSeq}
}
