package countdown

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// Breakdown is the display decomposition of the time left on an auction.
type Breakdown struct {
	RemainingSeconds int64
	Days             int64
	Hours            int64
	Minutes          int64
	Seconds          int64
	IsExpired        bool
}

// Project derives the remaining-time breakdown from the canonical end
// timestamp. Negative remainders clamp to zero. Project is pure and safe to
// call at arbitrary frequency; it never triggers resolution.
func Project(biddingEndTime, now time.Time) Breakdown {
	remaining := int64(biddingEndTime.Sub(now) / time.Second)
	if remaining <= 0 {
		return Breakdown{IsExpired: true}
	}
	return Breakdown{
		RemainingSeconds: remaining,
		Days:             remaining / secondsPerDay,
		Hours:            (remaining % secondsPerDay) / secondsPerHour,
		Minutes:          (remaining % secondsPerHour) / secondsPerMinute,
		Seconds:          remaining % secondsPerMinute,
	}
}
